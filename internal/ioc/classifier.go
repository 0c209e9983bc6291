package ioc

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog/log"
)

// domainMatchTimeout bounds a single domain pattern evaluation
const domainMatchTimeout = 250 * time.Millisecond

var (
	// ASCII-only case folding; (?i) would also accept U+017F as s
	urlRegex    = regexp.MustCompile(`^[hH][tT][tT][pP][sS]?://[^\n\r\x{2028}\x{2029}]`)
	ipv4Regex   = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	sha256Regex = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
	sha1Regex   = regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	md5Regex    = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)

	// labels may not start or end with a hyphen; RE2 has no lookbehind so this one runs on regexp2
	domainRegex = newDomainRegex()
)

// hashPatterns is checked longest digest first so a 64 character input is never reported as a shorter hash
var hashPatterns = []struct {
	algorithm HashAlgorithm
	pattern   *regexp.Regexp
}{
	{HashSHA256, sha256Regex},
	{HashSHA1, sha1Regex},
	{HashMD5, md5Regex},
}

func newDomainRegex() *regexp2.Regexp {
	re := regexp2.MustCompile(`^(?!-)(?:[a-zA-Z0-9-]{1,63}(?<!-)\.)+[a-zA-Z]{2,}$`, regexp2.None)
	re.MatchTimeout = domainMatchTimeout

	return re
}

// Classify detects the indicator type of input and returns its defanged rendering.
// It never fails: anything that matches no specific pattern is reported as TypeText.
func Classify(input string) Result {
	trimmed := Trim(input)

	if trimmed == "" {
		return Result{Type: TypeText, Value: trimmed, Defanged: trimmed}
	}

	switch {
	case urlRegex.MatchString(trimmed):
		return newResult(TypeURL, trimmed)
	case ipv4Regex.MatchString(trimmed):
		return newResult(TypeIP, trimmed)
	case emailRegex.MatchString(trimmed):
		return newResult(TypeEmail, trimmed)
	}

	for _, hp := range hashPatterns {
		if hp.pattern.MatchString(trimmed) {
			return Result{
				Type:     TypeHash,
				Value:    trimmed,
				Defanged: trimmed,
				HashType: hp.algorithm,
			}
		}
	}

	if isDomain(trimmed) {
		return newResult(TypeDomain, trimmed)
	}

	return Result{Type: TypeText, Value: trimmed, Defanged: trimmed}
}

// newResult builds a result whose defanged form is derived from the value
func newResult(t Type, value string) Result {
	return Result{
		Type:     t,
		Value:    value,
		Defanged: Defang(value, t),
	}
}

// isDomain evaluates the domain pattern, treating a match timeout as no match
func isDomain(value string) bool {
	ok, err := domainRegex.MatchString(value)
	if err != nil {
		log.Debug().Err(err).Int("input_length", len(value)).Msg("domain pattern evaluation aborted")

		return false
	}

	return ok
}

// Trim strips leading and trailing whitespace, including the byte order mark,
// exactly as Classify does before matching
func Trim(input string) string {
	return strings.TrimFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
