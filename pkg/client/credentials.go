package client

import (
	"sync"
)

// Recognized credential names.
const (
	CredentialAccessToken  = "access_token"
	CredentialClientID     = "client_id"
	CredentialClientSecret = "client_secret"
)

// State is the credential state of a client.
type State int

const (
	// NoToken means resource calls are refused.
	NoToken State = iota
	// HasToken means an access token is held. There is no way back to NoToken.
	HasToken
)

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	if s == HasToken {
		return "has_token"
	}
	return "no_token"
}

// CredentialSet holds the credentials of exactly one client.
// Reads and writes are safe for concurrent use.
type CredentialSet struct {
	mu           sync.RWMutex
	accessToken  string
	clientID     string
	clientSecret string
}

// Set writes value under name if name is one of the recognized credential
// names and reports whether it did. Unknown names are ignored.
func (s *CredentialSet) Set(name, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case CredentialAccessToken:
		s.accessToken = value
	case CredentialClientID:
		s.clientID = value
	case CredentialClientSecret:
		s.clientSecret = value
	default:
		return false
	}
	return true
}

// AccessToken returns the current access token, empty if none.
func (s *CredentialSet) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ClientID returns the OAuth client identifier.
func (s *CredentialSet) ClientID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientID
}

// State returns HasToken when a non-empty access token is held.
func (s *CredentialSet) State() State {
	if s.AccessToken() == "" {
		return NoToken
	}
	return HasToken
}

// Snapshot returns a consistent copy of the credentials. Secret values are
// wrapped so they cannot end up in logs by accident.
func (s *CredentialSet) Snapshot() CredentialSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CredentialSnapshot{
		ClientID:     s.clientID,
		ClientSecret: NewSecret(s.clientSecret),
		AccessToken:  NewSecret(s.accessToken),
	}
}

// CredentialSnapshot is a point-in-time copy of a CredentialSet.
type CredentialSnapshot struct {
	ClientID     string `json:"client_id"`
	ClientSecret Secret `json:"client_secret"`
	AccessToken  Secret `json:"access_token"`
}

// State returns the credential state the snapshot was taken in.
func (c CredentialSnapshot) State() State {
	if c.AccessToken.IsEmpty() {
		return NoToken
	}
	return HasToken
}

// Secret wraps a credential value so that formatting or serializing it
// prints "[REDACTED]" instead of the value.
type Secret struct {
	value string
}

// NewSecret wraps value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Value returns the wrapped value. Only use it to put the value on the wire.
func (s Secret) Value() string {
	return s.value
}

// IsEmpty reports whether no value is wrapped.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	if s.value == "" {
		return ""
	}
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v.
func (s Secret) GoString() string {
	return "client.Secret{" + s.String() + "}"
}

// MarshalText implements encoding.TextMarshaler.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
