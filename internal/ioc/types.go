package ioc

import (
	"fmt"
	"strings"
)

// Type is the kind of indicator detected for an input string
type Type string

const (
	// TypeDomain is a bare hostname such as example.com
	TypeDomain Type = "domain"
	// TypeIP is a dotted IPv4 address
	TypeIP Type = "ip"
	// TypeURL is an http or https URL
	TypeURL Type = "url"
	// TypeEmail is an email address
	TypeEmail Type = "email"
	// TypeHash is an MD5, SHA-1 or SHA-256 hex digest
	TypeHash Type = "hash"
	// TypeText is anything that matched none of the other patterns
	TypeText Type = "text"
)

// HashAlgorithm identifies the digest family of a hash indicator
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "md5"
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA256 HashAlgorithm = "sha256"
)

// Result is the outcome of classifying a single input
type Result struct {
	// Type is the detected indicator type
	Type Type `json:"type"`
	// Value is the trimmed input with its original casing
	Value string `json:"value"`
	// Defanged is the safe-to-paste rendering of Value
	Defanged string `json:"defanged"`
	// HashType is set only when Type is TypeHash
	HashType HashAlgorithm `json:"hash_type,omitempty"`
}

// Label returns the short display label for the result, e.g. "SHA256" for hashes
func (r Result) Label() string {
	if r.Type == TypeHash && r.HashType != "" {
		return strings.ToUpper(string(r.HashType))
	}

	if r.Type == TypeIP {
		return "IPv4"
	}

	return strings.ToUpper(string(r.Type))
}

// Types returns every indicator type in precedence-independent display order
func Types() []Type {
	return []Type{TypeDomain, TypeIP, TypeURL, TypeEmail, TypeHash, TypeText}
}

// ParseType converts a string into a recognized indicator type
func ParseType(value string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "domain":
		return TypeDomain, nil
	case "ip":
		return TypeIP, nil
	case "url":
		return TypeURL, nil
	case "email":
		return TypeEmail, nil
	case "hash":
		return TypeHash, nil
	case "text":
		return TypeText, nil
	case "":
		return "", ErrEmptyType
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, value)
	}
}
