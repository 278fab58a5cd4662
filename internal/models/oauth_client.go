package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is an API client owned by a staff member. Secret holds a bcrypt hash.
type OAuthClient struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Secret     string         `gorm:"not null" json:"-"`
	Name       string         `json:"name"`
	Domain     string         `json:"domain"`
	StaffID    uint           `gorm:"index" json:"staff_id"`
	Scopes     string         `json:"scopes"`      // space separated
	GrantTypes string         `json:"grant_types"` // space separated
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string {
	return c.ID
}

func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

// IsPublic is always false: every client authenticates with a secret
func (c *OAuthClient) IsPublic() bool {
	return false
}

// GetUserID returns the owning staff id, which becomes the token subject
// for client credentials grants
func (c *OAuthClient) GetUserID() string {
	if c.StaffID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.StaffID), 10)
}

// VerifyPassword compares a plain secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
