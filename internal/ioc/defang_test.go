package ioc

import (
	"testing"
)

func TestDefang(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		iocType  Type
		expected string
	}{
		{"domain", "example.com", TypeDomain, "example[.]com"},
		{"ip", "1.2.3.4", TypeIP, "1[.]2[.]3[.]4"},
		{"http url", "http://example.com/a.php", TypeURL, "hxxp://example[.]com/a[.]php"},
		{"https url", "https://example.com", TypeURL, "hxxps://example[.]com"},
		{"mixed case scheme", "HtTpS://example.com", TypeURL, "hxxps://example[.]com"},
		{"scheme repeated in query", "https://a.io/?next=http://b.io", TypeURL, "hxxps://a[.]io/?next=hxxp://b[.]io"},
		{"http inside a label", "http-proxy.example.com", TypeDomain, "hxxp-proxy[.]example[.]com"},
		{"https inside a label", "mhttpsx.com", TypeDomain, "mhxxpsx[.]com"},
		{"email", "a.b@c.com", TypeEmail, "a[.]b[@]c[.]com"},
		{"at sign kept outside email", "http://u@a.io", TypeURL, "hxxp://u@a[.]io"},
		{"hash unchanged", testSHA1, TypeHash, testSHA1},
		{"text unchanged", "visit http://a.io", TypeText, "visit http://a.io"},
		{"empty", "", TypeDomain, ""},
		{"long s is not an s", "http\u017f.example.com", TypeDomain, "hxxp\u017f[.]example[.]com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Defang(tc.value, tc.iocType)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
