// Package model holds the GORM row types of the session store.
package model

import "time"

// DefaultSessionTable is used when no table name is configured.
const DefaultSessionTable = "calendar_sessions"

// SessionModel mirrors one row of the session table. Token columns hold ciphertext.
type SessionModel struct {
	UserID             string    `gorm:"type:varchar(255);primaryKey"`
	UserEmail          string    `gorm:"type:varchar(320);index:idx_calendar_sessions_user_email"`
	AccessTokenCipher  string    `gorm:"type:text;not null"`
	RefreshTokenCipher string    `gorm:"type:text;not null;default:''"`
	CreatedAt          time.Time `gorm:"not null;autoCreateTime:false"` // issue time of the access token, not row creation
	ExpiresIn          int       `gorm:"not null"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return DefaultSessionTable
}
