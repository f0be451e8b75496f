package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", wantLimit: DefaultLimit},
		{name: "explicit", limit: "10", offset: "20", wantLimit: 10, wantOffset: 20},
		{name: "zero limit", limit: "0", wantLimit: 0},
		{name: "max limit", limit: "50", wantLimit: 50},
		{name: "limit too big", limit: "51", wantErr: true},
		{name: "negative limit", limit: "-1", wantErr: true},
		{name: "negative offset", offset: "-5", wantErr: true},
		{name: "not a number", limit: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := ParsePage(tt.limit, tt.offset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	for _, raw := range []string{"0", "-1", "x", ""} {
		_, err := ParseVersion(raw)
		assert.Error(t, err, raw)
	}
}
