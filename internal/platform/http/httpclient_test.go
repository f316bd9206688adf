package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"explicit timeout", 30 * time.Second, 30 * time.Second},
		{"zero falls back to default", 0, DefaultTimeout},
		{"negative falls back to default", -time.Second, DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.in)
			assert.Equal(t, tt.want, c.Timeout)

			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok)
			assert.NotNil(t, tr.Proxy)
			assert.Equal(t, 10*time.Second, tr.TLSHandshakeTimeout)
		})
	}
}
