package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theopenlane/iocscope/internal/lookup"
)

func TestBuildIndicatorMessage_DefangedOnly(t *testing.T) {
	report := lookup.New().Plan("https://evil.example.com/login")

	msg := BuildIndicatorMessage(report, "seen in phishing mail", 3)

	raw := strings.Join(collectText(msg), "\n")

	assert.Contains(t, msg.Text, "hxxps://evil[.]example[.]com/login")
	assert.Contains(t, raw, "`hxxps://evil[.]example[.]com/login`")
	assert.Contains(t, raw, "`example[.]com`")
	assert.Contains(t, raw, "seen in phishing mail")
	assert.Contains(t, raw, "<https://www.virustotal.com/gui/url/")
	assert.Contains(t, raw, "16 more lookup sources available")
	assert.NotContains(t, msg.Text, "https://evil.example.com")
}

func TestBuildIndicatorMessage_NoLinks(t *testing.T) {
	report := lookup.New().Plan("0733351879b2fa9bd05c7ca3061529c0")

	msg := BuildIndicatorMessage(report, "", 0)

	require.Len(t, msg.Blocks, 2)
	assert.Equal(t, "header", msg.Blocks[0].Type)
	assert.Equal(t, "MD5 indicator shared", msg.Blocks[0].Text.Text)
	assert.Len(t, msg.Blocks[1].Fields, 2)
}

func TestBuildIndicatorMessage_EscapesNote(t *testing.T) {
	report := lookup.New().Plan("1.1.1.1")

	msg := BuildIndicatorMessage(report, "<!channel> & friends", 0)

	require.Len(t, msg.Blocks, 3)
	assert.Equal(t, "&lt;!channel&gt; &amp; friends", msg.Blocks[2].Text.Text)
}

func TestBuildIndicatorMessage_AllLinksFit(t *testing.T) {
	report := lookup.New().Plan("test@example.com")

	msg := BuildIndicatorMessage(report, "", 10)

	for _, b := range msg.Blocks {
		assert.NotEqual(t, "context", b.Type)
	}
}

func TestBuildIndicatorMessage_LinkTargetsCannotBreakOut(t *testing.T) {
	report := lookup.New().Plan("http://x.com/><!channel>")

	msg := BuildIndicatorMessage(report, "", 5)

	raw := strings.Join(collectText(msg), "\n")

	assert.NotContains(t, raw, "<!channel>")
	assert.NotContains(t, msg.Text, "<!channel>")
	assert.Contains(t, raw, "<https://otx.alienvault.com/indicator/url/http://x.com/%3E%3C!channel%3E|AlienVault OTX>")
}

func TestLinkTarget(t *testing.T) {
	testCases := map[string]string{
		"https://a.io/x":          "https://a.io/x",
		"https://a.io/?q=1&r=2":   "https://a.io/?q=1&amp;r=2",
		"https://a.io/|<b>":       "https://a.io/%7C%3Cb%3E",
		"https://a.io/><!here>|x": "https://a.io/%3E%3C!here%3E%7Cx",
	}

	for in, want := range testCases {
		assert.Equal(t, want, linkTarget(in), in)
	}
}

func TestBuildIndicatorMessage_NoteTruncatedByRune(t *testing.T) {
	report := lookup.New().Plan("1.1.1.1")

	msg := BuildIndicatorMessage(report, strings.Repeat("é", noteTruncateLimit+1), 0)

	require.Len(t, msg.Blocks, 3)
	note := msg.Blocks[2].Text.Text
	assert.True(t, utf8.ValidString(note))
	assert.Equal(t, noteTruncateLimit, utf8.RuneCountInString(note))
	assert.True(t, strings.HasSuffix(note, "..."))

	msg = BuildIndicatorMessage(report, strings.Repeat("é", noteTruncateLimit), 0)
	assert.Equal(t, strings.Repeat("é", noteTruncateLimit), msg.Blocks[2].Text.Text)
}

func TestBuildIndicatorMessage_NoteEntitiesNotSplit(t *testing.T) {
	report := lookup.New().Plan("1.1.1.1")

	msg := BuildIndicatorMessage(report, strings.Repeat("&", noteTruncateLimit+5), 0)

	note := msg.Blocks[2].Text.Text
	assert.Equal(t, strings.Repeat("&amp;", noteTruncateLimit-3)+"...", note)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "abcdefg...", truncateText("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncateText(strings.Repeat("é", 12), 10))
}

func collectText(msg Message) []string {
	var out []string

	for _, b := range msg.Blocks {
		if b.Text != nil {
			out = append(out, b.Text.Text)
		}

		for _, f := range b.Fields {
			out = append(out, f.Text)
		}

		for _, e := range b.Elements {
			out = append(out, e.Text)
		}
	}

	return out
}
