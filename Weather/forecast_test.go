package Weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientReadsKeyAtCallTime(t *testing.T) {
	// The key is read when the client is built, so construction must happen
	// after the env is loaded, never at package init.
	t.Setenv("WEATHER_API_KEY", "test-key-123")
	c := NewClient()
	assert.Equal(t, "test-key-123", c.APIKey)
}

func TestForecastWithoutKey(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")
	_, err := NewClient().ForecastForLocation(context.Background(), "Cairo")
	require.ErrorIs(t, err, ErrNoAPIKey)
}
