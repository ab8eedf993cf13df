package endpoint

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamily_String(t *testing.T) {
	tests := []struct {
		family   Family
		expected string
	}{
		{API, "api"},
		{Auth, "auth"},
		{Family(42), "unknown"},
	}

	for _, test := range tests {
		if got := test.family.String(); got != test.expected {
			t.Errorf("Family(%d).String() = %s, expected %s", test.family, got, test.expected)
		}
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"empty", Params{}},
		{"nil", nil},
		{"single", Params{"page": "2"}},
		{"reserved characters", Params{"q": "a b&c=d/e?f", "redirect_uri": "https://x.example/cb?y=1"}},
		{"unicode", Params{"name": "Göteborg ✓"}},
		{"many", Params{"a": "1", "b": "2", "c": "", "per_page": "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build("athlete/activities", tt.params, API)

			prefix := DefaultAPIBase + "athlete/activities?"
			require.True(t, strings.HasPrefix(got, prefix), "unexpected URL %s", got)

			decoded, err := url.ParseQuery(strings.TrimPrefix(got, prefix))
			require.NoError(t, err)

			assert.Len(t, decoded, len(tt.params))
			for k, v := range tt.params {
				assert.Equal(t, []string{v}, decoded[k], "key %s", k)
			}
		})
	}
}

func TestBuild_TrailingSlashNormalization(t *testing.T) {
	assert.Equal(t, Build("foo", Params{}, API), Build("foo/", Params{}, API))
	assert.Equal(t, Build("foo", Params{}, Auth), Build("foo/", Params{}, Auth))
	assert.Equal(t, DefaultAPIBase+"foo?", Build("foo/", nil, API))
	assert.Equal(t, DefaultAPIBase+"foo?", Build("/foo", nil, API))

	// Only one slash is stripped.
	assert.Equal(t, DefaultAPIBase+"foo/?", Build("foo//", nil, API))
}

func TestBuild_EmptyParamsKeepsSeparator(t *testing.T) {
	got := Build("athlete", nil, API)
	assert.Equal(t, "https://www.strava.com/api/v3/athlete?", got)
}

func TestBuild_AuthFamily(t *testing.T) {
	got := Build("authorize", Params{"client_id": "42"}, Auth)
	assert.Equal(t, "https://www.strava.com/oauth/authorize?client_id=42", got)
}

func TestNewBases(t *testing.T) {
	t.Run("normalizes trailing slash", func(t *testing.T) {
		b := NewBases("http://127.0.0.1:8080/api", "http://127.0.0.1:8080/oauth///")
		assert.Equal(t, "http://127.0.0.1:8080/api/", b.API)
		assert.Equal(t, "http://127.0.0.1:8080/oauth/", b.Auth)
		assert.Equal(t, "http://127.0.0.1:8080/api/ping?", b.Build("ping", nil, API))
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultBases(), NewBases("", ""))
	})

	t.Run("unknown family resolves to api", func(t *testing.T) {
		b := DefaultBases()
		assert.Equal(t, b.API, b.For(Family(7)))
	})
}

func TestParams_Merge(t *testing.T) {
	base := Params{"client_id": "1", "response_type": "code"}
	merged := base.Merge(Params{"response_type": "token", "scope": "read"}, nil)

	assert.Equal(t, Params{"client_id": "1", "response_type": "token", "scope": "read"}, merged)
	assert.Equal(t, "code", base["response_type"], "receiver must not be modified")
}
