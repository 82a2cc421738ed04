// models/event.go
package models

import "time"

// Event represents the events table: a scheduled activity or announcement
// published by the Office of Student Life.
type Event struct {
	EventID     uint    `gorm:"primaryKey;column:event_id" json:"event_id"`
	Title       string  `gorm:"column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	StartDate   string  `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate     *string `gorm:"column:end_date;type:date" json:"end_date"`
	StartTime   *string `gorm:"column:start_time" json:"start_time,omitempty"`
	EndTime     *string `gorm:"column:end_time" json:"end_time,omitempty"`
	AllDay      bool    `gorm:"column:all_day" json:"all_day"`

	// TargetOrg is a specific organization code or "ALL".
	TargetOrg string `gorm:"column:target_org" json:"target_org"`

	RequireAccomplishment bool `gorm:"column:require_accomplishment" json:"require_accomplishment"`
	RequireLiquidation    bool `gorm:"column:require_liquidation" json:"require_liquidation"`

	// Override due dates granted after an approved appeal, one per report kind.
	// Stored as date-only strings against the parent event.
	AccomplishmentOverride *string `gorm:"column:accomplishment_override;type:date" json:"accomplishment_override,omitempty"`
	LiquidationOverride    *string `gorm:"column:liquidation_override;type:date" json:"liquidation_override,omitempty"`

	CreatedBy string     `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Event) TableName() string { return "events" }

// OverrideFor returns the persisted override date for a report kind, if any.
func (e *Event) OverrideFor(kind string) *string {
	switch kind {
	case ReportKindAccomplishment:
		return e.AccomplishmentOverride
	case ReportKindLiquidation:
		return e.LiquidationOverride
	}
	return nil
}

// ===== Request DTOs =====

type EventCreateRequest struct {
	Title                 string  `json:"title" binding:"required"`
	Description           *string `json:"description"`
	StartDate             string  `json:"start_date" binding:"required"`
	EndDate               *string `json:"end_date"`
	StartTime             *string `json:"start_time"`
	EndTime               *string `json:"end_time"`
	AllDay                bool    `json:"all_day"`
	TargetOrg             string  `json:"target_org" binding:"required"`
	RequireAccomplishment bool    `json:"require_accomplishment"`
	RequireLiquidation    bool    `json:"require_liquidation"`
}

type EventUpdateRequest struct {
	Title                 *string `json:"title"`
	Description           *string `json:"description"`
	StartDate             *string `json:"start_date"`
	EndDate               *string `json:"end_date"`
	StartTime             *string `json:"start_time"`
	EndTime               *string `json:"end_time"`
	AllDay                *bool   `json:"all_day"`
	TargetOrg             *string `json:"target_org"`
	RequireAccomplishment *bool   `json:"require_accomplishment"`
	RequireLiquidation    *bool   `json:"require_liquidation"`

	// Setting an override is how an appeal approval is recorded.
	AccomplishmentOverride *string `json:"accomplishment_override"`
	LiquidationOverride    *string `json:"liquidation_override"`
}
