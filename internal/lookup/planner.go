// Package lookup turns a raw input into a classified indicator plus the ordered,
// resolved deep-links for it.
package lookup

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/sources"
)

// Link is a resolved lookup URL for one source
type Link struct {
	// Index is the position of the source in its table, starting at zero
	Index int `json:"index"`
	// Name is the source display name
	Name string `json:"name"`
	// Category is the source grouping label
	Category string `json:"category"`
	// URL is the deep-link for the indicator, empty when it could not be built
	URL string `json:"url"`
	// Static is true when the link does not depend on the indicator
	Static bool `json:"static"`
	// OpenAfter is the delay before opening this link in an open-all batch
	OpenAfter time.Duration `json:"open_after"`
}

// Report is the full lookup result for one input
type Report struct {
	// Indicator is the classification of the input
	Indicator ioc.Result `json:"indicator"`
	// Host carries public suffix details for domain, url and email indicators
	Host *ioc.HostInfo `json:"host,omitempty"`
	// Links are the resolved sources in registry order
	Links []Link `json:"links"`
}

// Planner classifies inputs and resolves their lookup links
type Planner struct {
	stagger    time.Duration
	categories map[string]struct{}
	hostInfo   bool
}

// New creates a Planner
func New(opts ...Option) *Planner {
	p := &Planner{
		stagger:  DefaultStagger,
		hostInfo: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// With returns a copy of the planner with additional options applied
func (p *Planner) With(opts ...Option) *Planner {
	clone := &Planner{
		stagger:  p.stagger,
		hostInfo: p.hostInfo,
	}

	if p.categories != nil {
		clone.categories = make(map[string]struct{}, len(p.categories))
		for k := range p.categories {
			clone.categories[k] = struct{}{}
		}
	}

	for _, opt := range opts {
		opt(clone)
	}

	return clone
}

// Plan classifies input and resolves every applicable lookup link
func (p *Planner) Plan(input string) Report {
	result := ioc.Classify(input)

	report := Report{
		Indicator: result,
		Links:     p.Resolve(result),
	}

	if p.hostInfo && hasHost(result.Type) {
		if info, err := ioc.ParseHost(result.Value); err == nil {
			report.Host = info
		} else {
			log.Debug().Err(err).Str("type", string(result.Type)).Msg("host details unavailable")
		}
	}

	return report
}

// Resolve builds the links for an existing classification. Sources outside the
// configured categories are skipped; the remaining links keep registry order and
// are scheduled by their position in the filtered list.
func (p *Planner) Resolve(result ioc.Result) []Link {
	descriptors := sources.For(result.Type)

	indexed := lo.Map(descriptors, func(d sources.Descriptor, i int) lo.Tuple2[int, sources.Descriptor] {
		return lo.T2(i, d)
	})

	if len(p.categories) > 0 {
		indexed = lo.Filter(indexed, func(item lo.Tuple2[int, sources.Descriptor], _ int) bool {
			_, ok := p.categories[strings.ToLower(item.B.Category)]
			return ok
		})
	}

	return lo.Map(indexed, func(item lo.Tuple2[int, sources.Descriptor], pos int) Link {
		return Link{
			Index:     item.A,
			Name:      item.B.Name,
			Category:  item.B.Category,
			URL:       buildURL(item.B, result.Value),
			Static:    item.B.Static(),
			OpenAfter: time.Duration(pos) * p.stagger,
		}
	})
}

// buildURL resolves one source, degrading to an empty URL instead of aborting the batch
func buildURL(d sources.Descriptor, value string) (built string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("source", d.Name).Str("panic", fmt.Sprint(r)).Msg("failed to build lookup url")

			built = ""
		}
	}()

	return d.URL(value)
}

func hasHost(t ioc.Type) bool {
	return t == ioc.TypeDomain || t == ioc.TypeURL || t == ioc.TypeEmail
}
