package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	// Must not panic and must be disabled.
	l.Info().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	base := Nop()
	r := httptest.NewRequest("GET", "/api/posts", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}
