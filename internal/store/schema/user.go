package schema

import (
	"time"

	"github.com/orbitwatch/debris-tracker/internal/domain"
)

// User represents the users table - observer, moderator and admin accounts
type User struct {
	// ID is the opaque unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// WalletAddress is the fixed-length on-chain identity, unique per account
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:varchar(42)"`
	// Email is optional but unique when present
	Email *string `gorm:"column:email;uniqueIndex;type:text"`
	// PasswordHash is the bcrypt hash for password logins (nil for wallet-only accounts)
	PasswordHash *string `gorm:"column:password_hash;type:text"`
	// Role is one of user, moderator, admin
	Role domain.Role `gorm:"column:role;not null;default:user;type:text"`
	// Points only ever increase, through the explicit add-points operation
	Points int `gorm:"column:points;not null;default:0"`
	// AvatarURL is an opaque media reference
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
	// JoinedAt is the account creation timestamp
	JoinedAt time.Time `gorm:"column:joined_at;not null;default:now();type:timestamptz"`

	// Associations
	Observations []Observation `gorm:"foreignKey:UserID"`
	Moderations  []Moderation  `gorm:"foreignKey:ModeratorID"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
