package models

import "time"

// Account statuses
const (
	AccountStatusActive = "Active"
	AccountStatusOnHold = "On Hold"
)

// Account represents the accounts table: one login per organization.
// While On Hold the organization may not file new activity requests;
// reports and appeals remain allowed.
type Account struct {
	AccountID    uint       `gorm:"primaryKey;column:account_id" json:"account_id"`
	Organization string     `gorm:"column:organization" json:"organization"`
	Email        string     `gorm:"column:email" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Status       string     `gorm:"column:status" json:"status"` // Active|On Hold
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Account) TableName() string { return "accounts" }

// IsOnHold reports whether the account is blocked from filing activity requests.
func (a *Account) IsOnHold() bool { return a.Status == AccountStatusOnHold }

// ===== Request DTOs =====

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AccountStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=Active 'On Hold'"`
}
