//go:build generate

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	iyaml "github.com/invopop/yaml"

	"github.com/theopenlane/utils/envparse"

	"github.com/theopenlane/iocscope/config"
)

const (
	// tagName is the struct tag used for field naming
	tagName = "koanf"
	// skipper is the tag value that excludes a field
	skipper = "-"
	// defaultTag is the struct tag carrying default values
	defaultTag = "default"
	// sensitiveTag marks fields whose values must not be written out
	sensitiveTag = "sensitive"
	// varPrefix is the environment variable prefix, without the trailing underscore
	varPrefix = "IOCSCOPE"
	// modulePath is the import path comments are resolved against
	modulePath = "github.com/theopenlane/iocscope/"
	// ownerReadWrite is the file permission for generated files
	ownerReadWrite = 0600
)

// target is one generated artifact
type target struct {
	path   string
	render func(cfg *config.Config) ([]byte, error)
}

// main renders the config schema, example YAML and example env file from config.Config
func main() {
	cfg := config.Default()

	comments, err := goComments("./config")
	if err != nil {
		panic(err)
	}

	targets := []target{
		{path: "./jsonschema/iocscope.config.json", render: schemaRenderer(comments)},
		{path: "./config/config.example.yaml", render: renderYAML},
		{path: "./config/.env.example", render: renderEnv},
	}

	for _, t := range targets {
		data, err := t.render(cfg)
		if err != nil {
			panic(fmt.Errorf("rendering %s: %w", t.path, err))
		}

		if err := os.WriteFile(t.path, data, ownerReadWrite); err != nil {
			panic(fmt.Errorf("writing %s: %w", t.path, err))
		}

		fmt.Printf("wrote %s\n", t.path)
	}
}

// goComments collects doc comments for the given packages to use as schema descriptions
func goComments(packages ...string) (map[string]string, error) {
	r := &jsonschema.Reflector{}

	for _, pkg := range packages {
		if err := r.AddGoComments(modulePath, pkg); err != nil {
			return nil, fmt.Errorf("adding go comments for %s: %w", pkg, err)
		}
	}

	if r.CommentMap == nil {
		return map[string]string{}, nil
	}

	return r.CommentMap, nil
}

// schemaRenderer returns a renderer producing the JSON schema of the config
func schemaRenderer(comments map[string]string) func(*config.Config) ([]byte, error) {
	return func(cfg *config.Config) ([]byte, error) {
		r := jsonschema.Reflector{
			ExpandedStruct:             true,
			RequiredFromJSONSchemaTags: true,
			FieldNameTag:               tagName,
			CommentMap:                 comments,
		}

		return json.MarshalIndent(r.Reflect(cfg), "", "  ")
	}
}

// renderYAML produces an example config with every default filled in
func renderYAML(cfg *config.Config) ([]byte, error) {
	return iyaml.Marshal(toYAMLValue(reflect.ValueOf(cfg)))
}

// toYAMLValue walks v keyed by koanf tags, writing durations as strings and
// blanking sensitive fields
func toYAMLValue(v reflect.Value) any {
	v = reflect.Indirect(v)

	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		return time.Duration(v.Int()).String()
	}

	if v.Kind() != reflect.Struct {
		return v.Interface()
	}

	out := map[string]any{}

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)

		key := field.Tag.Get(tagName)
		if !field.IsExported() || key == "" || key == skipper {
			continue
		}

		if field.Tag.Get(sensitiveTag) == "true" {
			out[key] = ""
			continue
		}

		out[key] = toYAMLValue(v.Field(i))
	}

	return out
}

// renderEnv produces an example env file listing every variable with its default
func renderEnv(cfg *config.Config) ([]byte, error) {
	cp := envparse.Config{
		FieldTagName: tagName,
		Skipper:      skipper,
	}

	vars, err := cp.GatherEnvInfo(varPrefix, cfg)
	if err != nil {
		return nil, fmt.Errorf("gathering environment info: %w", err)
	}

	var b strings.Builder

	for _, v := range vars {
		if v.Tags.Get(sensitiveTag) == "true" {
			fmt.Fprintf(&b, "# %s is sensitive and should be set securely\n%s=\"\"\n", v.Key, v.Key)
			continue
		}

		fmt.Fprintf(&b, "%s=\"%s\"\n", v.Key, v.Tags.Get(defaultTag))
	}

	return []byte(b.String()), nil
}
