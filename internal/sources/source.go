// Package sources holds the static registry of outbound lookup services for each
// indicator type and the URL templating used to build deep-links into them.
package sources

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/theopenlane/iocscope/internal/ioc"
)

// Placeholder is replaced by the (derived, encoded) indicator value in a template
const Placeholder = "{value}"

// Encoding controls how the value is escaped before it is embedded in a template
type Encoding int

const (
	// Raw embeds the value as-is, for path segments that expect a literal
	Raw Encoding = iota
	// Component applies encodeURIComponent escaping, for query values and fragments
	Component
)

// Descriptor is a single lookup service entry
type Descriptor struct {
	// Name identifies the service; unique within a type's table
	Name string `json:"name"`
	// Category is a free-text grouping label
	Category string `json:"category"`
	// Template is the target URL with Placeholder where the value goes.
	// A template without Placeholder is a static reference link.
	Template string `json:"-"`
	// Encoding is applied to the value after Derive
	Encoding Encoding `json:"-"`
	// Derive optionally transforms the value before encoding, e.g. hashing it or extracting its host
	Derive func(value string) string `json:"-"`
}

// URL builds the deep-link for value
func (d Descriptor) URL(value string) string {
	if d.Static() {
		return d.Template
	}

	if d.Derive != nil {
		value = d.Derive(value)
	}

	if d.Encoding == Component {
		value = EncodeComponent(value)
	}

	return strings.ReplaceAll(d.Template, Placeholder, value)
}

// Static reports whether the descriptor ignores the value and always links to the same page
func (d Descriptor) Static() bool {
	return !strings.Contains(d.Template, Placeholder)
}

// SHA256Hex returns the lower-case hex SHA-256 digest of s
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// Host derives the hostname of a URL value
func Host(value string) string {
	return ioc.ExtractDomainFromURL(value)
}

// RootHost derives the last two labels of a URL value's hostname
func RootHost(value string) string {
	return ioc.ExtractRootDomain(ioc.ExtractDomainFromURL(value))
}

// EncodeComponent escapes s the way encodeURIComponent does in a browser:
// letters, digits and -_.!~*'() are kept, every other byte of the UTF-8
// encoding is percent-encoded.
func EncodeComponent(s string) string {
	const upperhex = "0123456789ABCDEF"

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
