package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsValid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{
			name:    "fresh token",
			session: &Session{AccessToken: "at", CreatedAt: now.Add(-10 * time.Minute), ExpiresIn: 1800},
			want:    true,
		},
		{
			name:    "expired one second ago",
			session: &Session{AccessToken: "at", CreatedAt: now.Add(-3601 * time.Second), ExpiresIn: 3600},
			want:    false,
		},
		{
			name:    "expires exactly now",
			session: &Session{AccessToken: "at", CreatedAt: now.Add(-time.Hour), ExpiresIn: 3600},
			want:    false,
		},
		{
			name:    "empty access token",
			session: &Session{CreatedAt: now, ExpiresIn: 1800},
			want:    false,
		},
		{
			name:    "zero lifetime",
			session: &Session{AccessToken: "at", CreatedAt: now, ExpiresIn: 0},
			want:    false,
		},
		{
			name:    "nil session",
			session: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsValid(now))
		})
	}
}

func TestSession_IsValidMatchesFormula(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for offset := -5; offset <= 5; offset++ {
		for _, token := range []string{"", "at"} {
			s := &Session{AccessToken: token, CreatedAt: base, ExpiresIn: 60}
			now := base.Add(time.Duration(60+offset) * time.Second)

			want := now.Before(base.Add(60*time.Second)) && token != ""
			assert.Equal(t, want, s.IsValid(now), "offset=%d token=%q", offset, token)
		}
	}
}

func TestSession_IsRefreshable(t *testing.T) {
	assert.True(t, (&Session{RefreshToken: "rt"}).IsRefreshable())
	assert.False(t, (&Session{}).IsRefreshable())
	assert.False(t, (*Session)(nil).IsRefreshable())
}

func TestUpdateFields_IsEmpty(t *testing.T) {
	summary := "standup"

	assert.True(t, (*UpdateFields)(nil).IsEmpty())
	assert.True(t, (&UpdateFields{}).IsEmpty())
	assert.False(t, (&UpdateFields{Summary: &summary}).IsEmpty())
}
