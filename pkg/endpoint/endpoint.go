// Package endpoint builds request URLs for the two endpoint families of the
// remote service: the resource API and the OAuth authorization server.
package endpoint

import (
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the root shared by both endpoint families.
	DefaultBaseURL = "https://www.strava.com/"

	// DefaultAPIBase is the resource API prefix.
	DefaultAPIBase = DefaultBaseURL + "api/v3/"

	// DefaultAuthBase is the OAuth prefix hosting authorize and token.
	DefaultAuthBase = DefaultBaseURL + "oauth/"
)

// Family selects one of the fixed base URL prefixes.
type Family int

const (
	// API is the resource endpoint family.
	API Family = iota
	// Auth is the OAuth endpoint family.
	Auth
)

// String makes Family satisfy the fmt.Stringer interface.
func (f Family) String() string {
	switch f {
	case API:
		return "api"
	case Auth:
		return "auth"
	default:
		return "unknown"
	}
}

// Params are the query parameters of a request. Keys are unique; setting a
// key twice keeps the last value.
type Params map[string]string

// Values converts the parameters to url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	return values
}

// Merge returns a new Params holding p overlaid with each of the overrides
// in order. Later maps win on key collision. p is not modified.
func (p Params) Merge(overrides ...Params) Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Bases holds the base URL of each family. Both always end with "/".
type Bases struct {
	API  string
	Auth string
}

// DefaultBases returns the bases of the production service.
func DefaultBases() Bases {
	return Bases{API: DefaultAPIBase, Auth: DefaultAuthBase}
}

// NewBases returns Bases for the given prefixes, normalized to end with a
// single slash. Empty prefixes fall back to the defaults.
func NewBases(api, auth string) Bases {
	b := DefaultBases()
	if api != "" {
		b.API = normalizeBase(api)
	}
	if auth != "" {
		b.Auth = normalizeBase(auth)
	}
	return b
}

// For returns the base URL of the family. Unknown families resolve to API.
func (b Bases) For(f Family) string {
	if f == Auth {
		return b.Auth
	}
	return b.API
}

// Build returns base + path + "?" + encoded params.
//
// One trailing slash and one leading slash are removed from path since the
// base supplies the separator. The "?" is appended even when params is empty.
func (b Bases) Build(path string, params Params, f Family) string {
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimPrefix(path, "/")

	var sb strings.Builder
	sb.WriteString(b.For(f))
	sb.WriteString(path)
	sb.WriteByte('?')
	sb.WriteString(params.Values().Encode())
	return sb.String()
}

// Build builds a URL against the default bases.
func Build(path string, params Params, f Family) string {
	return DefaultBases().Build(path, params, f)
}

func normalizeBase(base string) string {
	return strings.TrimRight(base, "/") + "/"
}
