package lookup

import (
	"strings"
	"time"
)

// DefaultStagger is the delay between consecutive links when opening them all at once
const DefaultStagger = 100 * time.Millisecond

// Option configures the Planner
type Option func(*Planner)

// WithStagger sets the delay between consecutive links in the open-all schedule
func WithStagger(d time.Duration) Option {
	return func(p *Planner) {
		if d >= 0 {
			p.stagger = d
		}
	}
}

// WithCategories restricts planned links to the given categories, compared case-insensitively
func WithCategories(categories ...string) Option {
	return func(p *Planner) {
		for _, c := range categories {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" {
				continue
			}

			if p.categories == nil {
				p.categories = map[string]struct{}{}
			}

			p.categories[c] = struct{}{}
		}
	}
}

// WithHostInfo controls whether reports for host-bearing indicators carry public suffix details
func WithHostInfo(enabled bool) Option {
	return func(p *Planner) {
		p.hostInfo = enabled
	}
}
