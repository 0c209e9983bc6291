package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theopenlane/iocscope/config"
	"github.com/theopenlane/iocscope/internal/ioc"
	"github.com/theopenlane/iocscope/internal/lookup"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func TestRunClassifyTable(t *testing.T) {
	var buf bytes.Buffer

	err := runClassify(&buf, "phisher@evil.net", classifyOptions{Stagger: lookup.DefaultStagger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "phisher[@]evil[.]net")
	assert.Contains(t, out, "Have I Been Pwned")
	assert.Contains(t, out, "https://haveibeenpwned.com/unifiedsearch/phisher@evil.net")
}

func TestRunClassifyJSON(t *testing.T) {
	var buf bytes.Buffer

	err := runClassify(&buf, "44d88612fea8a8f36de82e1278abb02f", classifyOptions{
		JSON:       true,
		Categories: []string{"Sandbox"},
		Stagger:    250 * time.Millisecond,
	})
	require.NoError(t, err)

	var report lookup.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, ioc.TypeHash, report.Indicator.Type)
	assert.Equal(t, ioc.HashMD5, report.Indicator.HashType)
	require.NotEmpty(t, report.Links)

	for i, link := range report.Links {
		assert.Equal(t, "Sandbox", link.Category)
		assert.Equal(t, time.Duration(i)*250*time.Millisecond, link.OpenAfter)
	}
}

func TestRunClassifyNoMatchingCategory(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, runClassify(&buf, "example.com", classifyOptions{Categories: []string{"nope"}}))
	assert.Contains(t, buf.String(), "no lookup sources match")
}

func TestRunSources(t *testing.T) {
	t.Run("single type", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, runSources(&buf, "email", false))
		assert.Contains(t, buf.String(), "email (4)")
		assert.Contains(t, buf.String(), "IntelBase")
		assert.Contains(t, buf.String(), "[static]")
	})

	t.Run("all types as json", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, runSources(&buf, "", true))

		var groups []sourceGroup
		require.NoError(t, json.Unmarshal(buf.Bytes(), &groups))
		require.Len(t, groups, len(ioc.Types()))
		assert.Equal(t, ioc.TypeDomain, groups[0].Type)
		assert.Len(t, groups[0].Sources, 19)
	})

	t.Run("unknown type", func(t *testing.T) {
		err := runSources(&bytes.Buffer{}, "asn", false)
		assert.ErrorIs(t, err, ioc.ErrUnsupportedType)
	})
}

func TestSetupSlackUnconfigured(t *testing.T) {
	cfg := configWithWebhook("")

	assert.Nil(t, setupSlack(cfg))
}

func TestSetupSlackConfigured(t *testing.T) {
	cfg := configWithWebhook("https://hooks.slack.com/services/T000/B000/XXXX")

	assert.NotNil(t, setupSlack(cfg))
}

func configWithWebhook(url string) *config.Config {
	cfg := config.Default()
	cfg.Slack.WebhookURL = url

	return cfg
}

func TestConfigureOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	configureOutput(true, false, true)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.True(t, color.NoColor)

	configureOutput(false, false, false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
