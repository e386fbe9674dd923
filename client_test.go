package twitchdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsight/twitchdata/internal/types"
)

func TestNew(t *testing.T) {
	c, err := New("test-api-key")
	require.NoError(t, err)
	require.NotNil(t, c)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, "test-api-key", c.rest.Header.Get(headerKey))
	assert.Equal(t, "twitch-api8.p.rapidapi.com", c.rest.Header.Get(headerHost))
	assert.Equal(t, BaseURL, c.rest.BaseURL)
	assert.Equal(t, defaultTimeout, c.rest.GetClient().Timeout)
}

func TestNew_EmptyKey(t *testing.T) {
	c, err := New("")
	assert.Nil(t, c, "no partially-usable client may be produced")
	require.Error(t, err)
	assert.True(t, IsInvalidConfiguration(err))
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "env-key")
	c, err := NewFromEnv()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.Equal(t, "env-key", c.rest.Header.Get(headerKey))
}

func TestNewFromEnv_Missing(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "")
	c, err := NewFromEnv()
	assert.Nil(t, c)
	assert.True(t, IsInvalidConfiguration(err))
}

func TestCloseIdempotent(t *testing.T) {
	c, err := New("k")
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "ok", outcomeLabel(nil))
	assert.Equal(t, "request_failed", outcomeLabel(&types.Error{Kind: types.KindRequestFailed}))
	assert.Equal(t, "decode_failed", outcomeLabel(&types.Error{Kind: types.KindDecodeFailed}))
	assert.Equal(t, "other", outcomeLabel(assert.AnError))
}
