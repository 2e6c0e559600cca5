package version

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/bart/barttest"
)

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://api.bart.gov/api/version.aspx?cmd=ver&json=y&key="+bart.PublicKey,
		URL(bart.NewClient()),
	)
}

func TestGet(t *testing.T) {
	server := barttest.NewServer(t, map[string]string{
		"ver": "testdata/ver.json",
	})

	version, err := Get(context.Background(), server.Client())
	require.NoError(t, err)

	assert.Equal(t, "3.10", version.APIVersion)
	assert.Equal(t, "Copyright 2026 Bay Area Rapid Transit District", version.Copyright)
	assert.Equal(t, "http://www.bart.gov/schedules/developers/developer-license-agreement", version.License)
	assert.True(t, version.Message.IsEmpty())
}
