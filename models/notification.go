package models

import "time"

// Notification represents the notifications table. Target is a specific
// organization code; broadcasts are fanned out as one row per recipient.
// EventID loosely correlates the notification to an event, it is not a
// strict foreign key.
type Notification struct {
	NotificationID uint      `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	EventID        *uint     `gorm:"column:event_id" json:"event_id,omitempty"`
	Title          string    `gorm:"column:title" json:"title"`
	Description    string    `gorm:"column:description" json:"description"`
	CreatedBy      string    `gorm:"column:created_by" json:"created_by"`
	TargetOrg      string    `gorm:"column:target_org" json:"target_org"`
	CreateAt       time.Time `gorm:"column:create_at" json:"create_at"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationRead represents the notification_reads table: a per-viewer read
// marker. A notification is unread for an organization until a marker row for
// (notification, organization) exists.
type NotificationRead struct {
	ReadID         uint      `gorm:"primaryKey;column:read_id" json:"read_id"`
	NotificationID uint      `gorm:"column:notification_id" json:"notification_id"`
	ReaderOrg      string    `gorm:"column:reader_org" json:"reader_org"`
	ReadAt         time.Time `gorm:"column:read_at" json:"read_at"`
}

func (NotificationRead) TableName() string { return "notification_reads" }

// NotificationResponse annotates a notification with the viewer's read state.
type NotificationResponse struct {
	Notification
	IsRead bool `json:"is_read"`
}
