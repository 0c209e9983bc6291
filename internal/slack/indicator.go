package slack

import (
	"fmt"
	"strings"

	"github.com/theopenlane/iocscope/internal/lookup"
)

// noteTruncateLimit is the maximum length of an analyst note in a shared message
const noteTruncateLimit = 2000

// BuildIndicatorMessage formats a lookup report for sharing. Only the defanged
// form of the indicator is included; at most maxLinks lookup links are listed,
// maxLinks <= 0 lists none.
func BuildIndicatorMessage(report lookup.Report, note string, maxLinks int) Message {
	ind := report.Indicator
	header := fmt.Sprintf("%s indicator shared", ind.Label())

	blocks := []Block{
		{
			Type: "header",
			Text: &TextObject{Type: "plain_text", Text: header},
		},
		{
			Type: "section",
			Fields: []TextObject{
				{Type: "mrkdwn", Text: fmt.Sprintf("*Indicator:*\n`%s`", escape(ind.Defanged))},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Type:*\n%s", ind.Label())},
			},
		},
	}

	if report.Host != nil && report.Host.Registered != "" {
		blocks[1].Fields = append(blocks[1].Fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Registered domain:*\n`%s`", escape(strings.ReplaceAll(report.Host.Registered, ".", "[.]"))),
		})
	}

	if note = strings.TrimSpace(note); note != "" {
		blocks = append(blocks, Block{
			Type: "section",
			Text: &TextObject{Type: "mrkdwn", Text: escape(truncateText(note, noteTruncateLimit))},
		})
	}

	if maxLinks > 0 && len(report.Links) > 0 {
		links := report.Links
		if len(links) > maxLinks {
			links = links[:maxLinks]
		}

		lines := make([]string, 0, len(links))
		for _, l := range links {
			if l.URL == "" {
				continue
			}

			lines = append(lines, fmt.Sprintf("• <%s|%s> _%s_", linkTarget(l.URL), escape(l.Name), escape(l.Category)))
		}

		if len(lines) > 0 {
			blocks = append(blocks, Block{
				Type: "section",
				Text: &TextObject{Type: "mrkdwn", Text: "*Lookups:*\n" + strings.Join(lines, "\n")},
			})
		}

		if remaining := len(report.Links) - len(links); remaining > 0 {
			blocks = append(blocks, Block{
				Type:     "context",
				Elements: []TextObject{{Type: "mrkdwn", Text: fmt.Sprintf("%d more lookup sources available", remaining)}},
			})
		}
	}

	return Message{
		Text:   fmt.Sprintf("%s: %s", header, escape(ind.Defanged)),
		Blocks: blocks,
	}
}

// escape replaces the characters Slack treats as control sequences in mrkdwn
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	return r.Replace(s)
}

// linkTarget makes url safe inside a <url|label> link: the delimiters are
// percent-encoded so the value cannot close the link or open a new sequence
func linkTarget(url string) string {
	r := strings.NewReplacer("<", "%3C", ">", "%3E", "|", "%7C")

	return escape(r.Replace(url))
}

// truncateText truncates text to maxLen runes, adding an ellipsis if truncated
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	return string(runes[:maxLen-3]) + "..."
}
