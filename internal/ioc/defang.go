package ioc

import (
	"regexp"
	"strings"
)

var (
	defangHTTPSRegex = regexp.MustCompile(`[hH][tT][tT][pP][sS]`)
	defangHTTPRegex  = regexp.MustCompile(`[hH][tT][tT][pP]`)
)

// Defang rewrites value so it cannot be clicked or resolved when pasted into a
// report. Dots become [.] and every http(s) becomes hxxp(s); emails also get
// [@]. Hashes and free text are returned unchanged.
func Defang(value string, t Type) string {
	if t == TypeHash || t == TypeText {
		return value
	}

	defanged := strings.ReplaceAll(value, ".", "[.]")
	defanged = defangHTTPSRegex.ReplaceAllLiteralString(defanged, "hxxps")
	defanged = defangHTTPRegex.ReplaceAllLiteralString(defanged, "hxxp")

	if t == TypeEmail {
		defanged = strings.ReplaceAll(defanged, "@", "[@]")
	}

	return defanged
}
