package releases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"v3.2.3", "3.2.3"},
		{"3.2.3", "3.2.3"},
		{"release-3.2.3", "3.2.3"},
		{"vv1.0.0", "1.0.0"},
		{" v1.0.0-rc.1 ", "1.0.0-rc.1"},
		{"v1.0.0+build.5", "1.0.0+build.5"},
		{"nightly", ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTag(tt.tag))
		})
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{"v prefix", "v3.2.3", false},
		{"no prefix", "3.2.3", false},
		{"prerelease", "v4.0.0-beta.1", false},
		{"build metadata", "v1.2.3+20240101", false},
		{"partial", "v3.2", true},
		{"major only", "v3", true},
		{"leading zero", "v01.2.3", true},
		{"word", "nightly", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTag(tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Re-parsing the normalized form of a valid tag yields the same version.
func TestParseTagIdempotent(t *testing.T) {
	for _, tag := range []string{"v3.2.3", "1.0.0", "v2.0.0-rc.1", "v1.2.3+meta", "release-0.9.1"} {
		first, err := parseTag(tag)
		require.NoError(t, err, tag)
		second, err := parseTag(first.String())
		require.NoError(t, err, first.String())
		assert.True(t, first.Equal(second), "round trip of %q changed %q to %q", tag, first, second)
		assert.Equal(t, first.String(), second.String())
	}
}

func TestValidateSpecifier(t *testing.T) {
	tests := []struct {
		specifier string
		wantErr   bool
	}{
		{"latest", false},
		{"3.2.3", false},
		{"v3.2.3", false},
		{"~3.2", false},
		{"^3.0.0", false},
		{">=3.0.0, <4.0.0", false},
		{">=3.0.0 <4.0.0", false},
		{"3.1.0 || 3.3.0", false},
		{"3.x", false},
		{"not-a-version", true},
		{"foo", true},
		{"Latest", true},
		{"", true},
		{"   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			err := ValidateSpecifier(tt.specifier)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSpecifier)
			assert.Contains(t, err.Error(), SemverSpecURL)
		})
	}
}
