package cmd

import (
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/sources"
)

// sourcesCmd lists the registered lookup sources
var sourcesCmd = &cobra.Command{
	Use:   "sources [type]",
	Short: "list the lookup sources registered for each indicator type",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName := ""
		if len(args) == 1 {
			typeName = args[0]
		}

		return runSources(cmd.OutOrStdout(), typeName, k.Bool("json"))
	},
}

// sourceGroup is the source table of one type
type sourceGroup struct {
	Type    ioc.Type             `json:"type"`
	Sources []sources.Descriptor `json:"sources"`
}

// init registers the sources command and its flags on the root command
func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.Flags().Bool("json", false, "output the source tables as JSON")
}

// runSources writes the source tables for typeName, or for every type when empty
func runSources(w io.Writer, typeName string, asJSON bool) error {
	types := ioc.Types()

	if typeName != "" {
		t, err := ioc.ParseType(typeName)
		if err != nil {
			return err
		}

		types = []ioc.Type{t}
	}

	groups := lo.Map(types, func(t ioc.Type, _ int) sourceGroup {
		return sourceGroup{Type: t, Sources: sources.For(t)}
	})

	if asJSON {
		return writeJSON(w, groups)
	}

	renderSources(w, groups)

	return nil
}
