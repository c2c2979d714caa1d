package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 12, 9, 30, 15, 123456789, time.UTC)

	token := EncodeToken(ts, 42)
	require.NotEmpty(t, token)

	gotTime, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime))
	assert.Equal(t, int64(42), gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"missing separator", base64.StdEncoding.EncodeToString([]byte("justonefield"))},
		{"bad timestamp", base64.StdEncoding.EncodeToString([]byte("yesterday|7"))},
		{"bad id", base64.StdEncoding.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano) + "|seven"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeToken(tc.token)
			assert.Error(t, err)
		})
	}
}
