package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/theopenlane/iocscope/internal/lookup"
	"github.com/theopenlane/iocscope/internal/sources"
)

// CLI output formatters
var (
	headerColor = color.New(color.FgBlue, color.Bold)
	typeColor   = color.New(color.FgCyan, color.Bold)
	staticColor = color.New(color.FgYellow)
)

// tableWidth is the rule width printed around tables
const tableWidth = 100

// writeJSON writes data as indented JSON
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

// renderReport prints a lookup report as a header followed by a link table
func renderReport(w io.Writer, report lookup.Report) {
	ind := report.Indicator

	typeColor.Fprintf(w, "%s\n", ind.Label())
	fmt.Fprintf(w, "%-10s %s\n", "value:", ind.Value)
	fmt.Fprintf(w, "%-10s %s\n", "defanged:", ind.Defanged)

	if report.Host != nil {
		fmt.Fprintf(w, "%-10s %s\n", "domain:", report.Host.Registered)
	}

	fmt.Fprintln(w)

	if len(report.Links) == 0 {
		fmt.Fprintln(w, "no lookup sources match")
		return
	}

	headerColor.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "%-4s %-22s %-18s %s\n", "#", "Source", "Category", "URL")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, link := range report.Links {
		line := fmt.Sprintf("%-4d %-22s %-18s %s", link.Index+1, link.Name, link.Category, link.URL)

		if link.Static {
			staticColor.Fprintln(w, line)
			continue
		}

		fmt.Fprintln(w, line)
	}

	headerColor.Fprintln(w, strings.Repeat("=", tableWidth))
}

// renderSources prints descriptor tables grouped by type
func renderSources(w io.Writer, groups []sourceGroup) {
	for _, g := range groups {
		typeColor.Fprintf(w, "%s (%d)\n", g.Type, len(g.Sources))

		lo.ForEach(g.Sources, func(d sources.Descriptor, i int) {
			suffix := ""
			if d.Static() {
				suffix = " [static]"
			}

			fmt.Fprintf(w, "  %2d. %-22s %s%s\n", i+1, d.Name, d.Category, suffix)
		})

		fmt.Fprintln(w)
	}
}
