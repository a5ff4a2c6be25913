package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzjever/chimpgate/internal/core"
)

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		api     API
		version string
		want    int
	}{
		{MailChimp, "1.1", 50},
		{MailChimp, "1.2", 79},
		{MailChimp, "1.3", 94},
		{MailChimp, "2.0", 104},
		{Export, "1.0", 2},
		{STS, "1.0", 10},
		{Mandrill, "1.0", 48},
		{Partner, "1.3", 4},
	}
	for _, tt := range tests {
		c, err := Get(tt.api, tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.Len(), "%s %s", tt.api, tt.version)
	}
}

func TestMethodNamesAreUnique(t *testing.T) {
	for _, api := range APIs() {
		for _, v := range Versions(api) {
			c, err := Get(api, v)
			require.NoError(t, err)
			seen := map[string]bool{}
			for _, e := range c.Endpoints() {
				assert.False(t, seen[e.Method], "%s %s duplicates %s", api, v, e.Method)
				seen[e.Method] = true
			}
		}
	}
}

func TestGetDefaultsAndUnsupported(t *testing.T) {
	c, err := Get(MailChimp, "")
	require.NoError(t, err)
	assert.Equal(t, "1.3", c.Version())

	_, err = Get(MailChimp, "0.1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnsupportedVersion))
	assert.Contains(t, err.Error(), "version 0.1 of the MailChimp API is currently not supported")

	_, err = Get(Mandrill, "0.1")
	assert.Contains(t, err.Error(), "version 0.1 of the Mandrill API")
}

func TestLookupAndFilter(t *testing.T) {
	c, err := Get(MailChimp, "1.3")
	require.NoError(t, err)

	e, err := c.Lookup("folderAdd")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "type"}, e.Params)

	filtered := e.Filter(map[string]any{"name": "foldername", "type": "autoresponder", "superflous": "superflous"})
	assert.Equal(t, map[string]any{"name": "foldername", "type": "autoresponder"}, filtered)

	_, err = c.Lookup("folderExplode")
	assert.True(t, errors.Is(err, core.ErrUnknownMethod))
}

func TestResolveSectionMethod(t *testing.T) {
	c, err := Get(MailChimp, "2.0")
	require.NoError(t, err)

	e, err := c.Resolve("lists", "batch_subscribe")
	require.NoError(t, err)
	assert.Equal(t, "lists/batch-subscribe", e.Method)

	e, err = c.Resolve("helper", "ping")
	require.NoError(t, err)
	assert.Equal(t, "helper/ping", e.Method)

	_, err = c.Resolve("", "ping")
	assert.True(t, errors.Is(err, core.ErrUnknownMethod))

	m, err := Get(Mandrill, "")
	require.NoError(t, err)
	e, err = m.Resolve("messages", "send-template")
	require.NoError(t, err)
	assert.True(t, e.Accepts("template_name"))
}

func TestParseAPI(t *testing.T) {
	a, err := ParseAPI(" Mandrill ")
	require.NoError(t, err)
	assert.Equal(t, Mandrill, a)

	_, err = ParseAPI("campaignmonitor")
	assert.Error(t, err)
}

func TestVersionsSorted(t *testing.T) {
	assert.Equal(t, []string{"1.1", "1.2", "1.3", "2.0"}, Versions(MailChimp))
}
