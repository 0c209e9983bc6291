package ioc

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// ExtractDomainFromURL returns the hostname of raw as a WHATWG URL parser (and
// so a browser) reports it: lower-cased, IPv4 forms normalized, tabs and
// newlines dropped, backslashes treated as path separators. When raw does not
// parse or has no host it is returned unchanged.
func ExtractDomainFromURL(raw string) string {
	parsed, err := whatwg.Parse(raw)
	if err != nil {
		return raw
	}

	host := parsed.Hostname()
	if host == "" {
		return raw
	}

	return strings.ToLower(host)
}

// ExtractRootDomain returns the last two labels of hostname. It does not consult
// the public suffix list, so mail.example.co.uk yields co.uk; use ParseHost when
// the registrable domain is needed.
func ExtractRootDomain(hostname string) string {
	parts := strings.Split(hostname, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}

	return hostname
}
