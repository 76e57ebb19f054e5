package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text    string
		want    Mode
		wantErr bool
	}{
		{"a", Aperture, false},
		{"aperture", Aperture, false},
		{"p", Profile, false},
		{"profile", Profile, false},
		{"v", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeUnmarshalText(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("profile")))
	assert.Equal(t, Profile, m)
	assert.Equal(t, "profile", m.String())

	require.Error(t, m.UnmarshalText([]byte("bogus")))
	assert.Equal(t, Profile, m, "failed unmarshal must not clobber the value")
}

func TestExtentPolicy(t *testing.T) {
	p, err := ParseExtent("exact")
	require.NoError(t, err)
	assert.Equal(t, Exact, p)

	require.NoError(t, p.UnmarshalText([]byte("trunc")))
	assert.Equal(t, Truncated, p)
	assert.Equal(t, "truncated", p.String())

	_, err = ParseExtent("round")
	require.Error(t, err)
	assert.Equal(t, "ExtentPolicy(9)", ExtentPolicy(9).String())
}
