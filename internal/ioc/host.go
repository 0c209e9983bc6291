package ioc

import (
	"fmt"
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
	"golang.org/x/net/publicsuffix"
)

// HostInfo is the public-suffix aware breakdown of the host behind an indicator
type HostInfo struct {
	// Domain is the full lower-cased hostname
	Domain string `json:"domain"`
	// Registered is the effective TLD plus one label, e.g. example.co.uk
	Registered string `json:"registered"`
	// Subdomain is everything left of Registered
	Subdomain string `json:"subdomain,omitempty"`
	// TLD is the public suffix, e.g. co.uk
	TLD string `json:"tld"`
	// SLD is the label directly left of the public suffix
	SLD string `json:"sld"`
}

// ParseHost extracts host information from a domain, email address or URL.
// Unlike ExtractRootDomain it consults the public suffix list.
func ParseHost(input string) (*HostInfo, error) {
	input = strings.ToLower(Trim(input))

	if strings.Contains(input, "@") && !strings.Contains(input, "://") {
		parts := strings.Split(input, "@")
		if len(parts) != 2 {
			return nil, ErrInvalidEmailFormat
		}

		input = parts[1]
	}

	if strings.Contains(input, "://") {
		u, err := whatwg.Parse(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidURLFormat, err)
		}

		input = u.Hostname()
	} else if idx := strings.LastIndex(input, ":"); idx != -1 {
		input = input[:idx]
	}

	input = strings.TrimSuffix(input, ".")

	if input == "" || !strings.Contains(input, ".") || strings.HasPrefix(input, ".") {
		return nil, ErrInvalidDomainFormat
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDomainFormat, err)
	}

	tld, _ := publicsuffix.PublicSuffix(input)

	info := &HostInfo{
		Domain:     input,
		Registered: etld1,
		TLD:        tld,
		SLD:        strings.TrimSuffix(etld1, "."+tld),
	}

	if etld1 != input {
		info.Subdomain = strings.TrimSuffix(input, "."+etld1)
	}

	return info, nil
}
