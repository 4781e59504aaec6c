// Package entity contains the core business objects of calbridge.
package entity

import "time"

// Session is the decrypted credential bundle for one application user identifier.
// It only ever lives in memory; the store holds a SessionRecord instead.
type Session struct {
	UserID       string    // Application-chosen key, the calendar key header or the verified email.
	UserEmail    string    // Provider-verified identity, used to deduplicate sessions.
	AccessToken  string    // Short-lived credential for Calendar API calls.
	RefreshToken string    // Long-lived credential used to mint new access tokens.
	CreatedAt    time.Time // When the current access token was issued.
	ExpiresIn    int       // Validity of the access token in seconds, counted from CreatedAt.
}

// ExpiresAt returns the instant the access token stops being trusted.
func (s *Session) ExpiresAt() time.Time {
	return s.CreatedAt.Add(time.Duration(s.ExpiresIn) * time.Second)
}

// IsValid reports whether the access token can be used as-is at now.
func (s *Session) IsValid(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return false
	}

	return now.Before(s.ExpiresAt())
}

// IsRefreshable reports whether a refresh token is available.
func (s *Session) IsRefreshable() bool {
	return s != nil && s.RefreshToken != ""
}

// SessionRecord is the persisted form of a Session. Token fields hold ciphertext.
type SessionRecord struct {
	UserID             string
	UserEmail          string
	AccessTokenCipher  string
	RefreshTokenCipher string
	CreatedAt          time.Time
	ExpiresIn          int
	UpdatedAt          time.Time
}

// FreshSessionStatus tags the outcome of resolving a usable session.
type FreshSessionStatus int

const (
	// SessionReady means Session holds a valid access token.
	SessionReady FreshSessionStatus = iota
	// SessionAuthRequired means the user has to go through consent again, see AuthURL.
	SessionAuthRequired
	// SessionFailed means the refresh failed for a reason other than revocation, see Err.
	SessionFailed
)

func (s FreshSessionStatus) String() string {
	switch s {
	case SessionReady:
		return "ready"
	case SessionAuthRequired:
		return "auth_required"
	case SessionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FreshSession is the result of ensuring a session is usable.
// Exactly one of Session, AuthURL or Err is meaningful, selected by Status.
type FreshSession struct {
	Status  FreshSessionStatus
	Session *Session
	AuthURL string
	Err     error
}

// Ready wraps a usable session.
func Ready(session *Session) FreshSession {
	return FreshSession{Status: SessionReady, Session: session}
}

// AuthRequired asks the caller to send the user to authURL.
func AuthRequired(authURL string) FreshSession {
	return FreshSession{Status: SessionAuthRequired, AuthURL: authURL}
}

// Failed reports a non-recoverable refresh error.
func Failed(err error) FreshSession {
	return FreshSession{Status: SessionFailed, Err: err}
}
