package client

import (
	"encoding/json"
	"errors"
	"unicode/utf8"
)

var errUndecodable = errors.New(errorPrefix + "response body is not decodable")

// Payload is a parsed response body.
//
// A body that is not valid UTF-8 text, or that does not hold JSON, yields an
// undecodable Payload: OK reports false and Value returns nil. This is not
// an error; the raw bytes are still available.
type Payload struct {
	raw   []byte
	value interface{}
	ok    bool
}

// parsePayload decodes body as JSON if it is textual.
func parsePayload(body []byte) Payload {
	p := Payload{raw: body}
	if len(body) == 0 || !utf8.Valid(body) {
		return p
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return p
	}
	p.value = v
	p.ok = true
	return p
}

// OK reports whether the body was decoded.
func (p Payload) OK() bool {
	return p.ok
}

// Value returns the decoded JSON value: map[string]interface{},
// []interface{}, string, float64, bool or nil.
func (p Payload) Value() interface{} {
	return p.value
}

// Map returns the decoded value if it is a JSON object.
func (p Payload) Map() (map[string]interface{}, bool) {
	m, ok := p.value.(map[string]interface{})
	return m, ok
}

// Raw returns the body bytes as received.
func (p Payload) Raw() []byte {
	return p.raw
}

// Decode unmarshals the body into v. It fails for undecodable bodies.
func (p Payload) Decode(v interface{}) error {
	if !p.ok {
		return errUndecodable
	}
	return json.Unmarshal(p.raw, v)
}

// accessToken returns the access_token member of an object body.
func (p Payload) accessToken() (string, bool) {
	m, ok := p.Map()
	if !ok {
		return "", false
	}
	tok, ok := m[CredentialAccessToken].(string)
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}
