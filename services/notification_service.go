package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"org-portal-api/config"
	"org-portal-api/models"
)

// NotificationService creates notification records and tracks per-viewer read
// markers. Creation is fire-and-forget from the caller's point of view: a
// broadcast fans out one insert per organization with no transactional
// atomicity, so partial delivery is possible and accepted.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// recipientsFor expands a notification target: a broadcast fans out to every
// organization except the creator, anything else goes to the named org alone.
func recipientsFor(targetOrg, createdBy string) []string {
	if targetOrg != models.OrgAll {
		return []string{targetOrg}
	}
	recipients := make([]string, 0, len(models.AllOrganizations))
	for _, org := range models.AllOrganizations {
		if org != createdBy {
			recipients = append(recipients, org)
		}
	}
	return recipients
}

// Notify inserts one notification row addressed to targetOrg, or fans out to
// every organization except the creator when targetOrg is "ALL". A best-effort
// email is sent to each recipient's account address; mail failures are logged
// and never fail the dispatch.
func (s *NotificationService) Notify(targetOrg, title, description, createdBy string, eventID *uint) error {
	recipients := recipientsFor(targetOrg, createdBy)

	var firstErr error
	for _, org := range recipients {
		n := models.Notification{
			EventID:     eventID,
			Title:       title,
			Description: description,
			CreatedBy:   createdBy,
			TargetOrg:   org,
			CreateAt:    time.Now(),
		}
		if err := s.db.Create(&n).Error; err != nil {
			log.Printf("notification insert for %s failed: %v", org, err)
			if firstErr == nil {
				firstErr = &PersistenceError{Op: "insert notification", Err: err}
			}
			continue
		}
		s.sendMailCopy(org, title, description)
	}
	return firstErr
}

// sendMailCopy emails the notification to the recipient organization's account
// address when SMTP is configured.
func (s *NotificationService) sendMailCopy(org, title, description string) {
	var account models.Account
	if err := s.db.Where("organization = ? AND delete_at IS NULL", org).First(&account).Error; err != nil {
		return
	}
	if account.Email == "" {
		return
	}
	body := "<p>" + description + "</p>"
	if err := config.SendMail([]string{account.Email}, title, body); err != nil {
		log.Printf("notification mail to %s failed: %v", org, err)
	}
}

// ListForViewer returns the notifications addressed to viewer, newest first,
// each annotated with the viewer's read state. Unread-ness is computed from
// read-marker existence, not a flag on the notification.
func (s *NotificationService) ListForViewer(viewer string) ([]models.NotificationResponse, error) {
	var notifications []models.Notification
	if err := s.db.Where("target_org = ?", viewer).
		Order("create_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, &PersistenceError{Op: "load notifications", Err: err}
	}

	var markers []models.NotificationRead
	if err := s.db.Where("reader_org = ?", viewer).Find(&markers).Error; err != nil {
		return nil, &PersistenceError{Op: "load read markers", Err: err}
	}
	read := make(map[uint]bool, len(markers))
	for _, m := range markers {
		read[m.NotificationID] = true
	}

	out := make([]models.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, models.NotificationResponse{Notification: n, IsRead: read[n.NotificationID]})
	}
	return out, nil
}

// MarkRead inserts a read marker for (notification, readerOrg). Idempotent in
// effect: duplicate markers are harmless since unread-ness is derived from
// marker existence.
func (s *NotificationService) MarkRead(notificationID uint, readerOrg string) error {
	marker := models.NotificationRead{
		NotificationID: notificationID,
		ReaderOrg:      readerOrg,
		ReadAt:         time.Now(),
	}
	if err := s.db.Create(&marker).Error; err != nil {
		return &PersistenceError{Op: "insert read marker", Err: err}
	}
	return nil
}

// DeleteAll removes the viewer's read markers for the notifications it sees,
// then deletes those notifications outright. This is a destructive delete of
// the rows, not a per-reader hide.
func (s *NotificationService) DeleteAll(viewer string) error {
	var ids []uint
	if err := s.db.Model(&models.Notification{}).
		Where("target_org = ?", viewer).
		Pluck("notification_id", &ids).Error; err != nil {
		return &PersistenceError{Op: "load notification ids", Err: err}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.db.Where("notification_id IN ? AND reader_org = ?", ids, viewer).
		Delete(&models.NotificationRead{}).Error; err != nil {
		return &PersistenceError{Op: "delete read markers", Err: err}
	}
	if err := s.db.Where("notification_id IN ?", ids).
		Delete(&models.Notification{}).Error; err != nil {
		return &PersistenceError{Op: "delete notifications", Err: err}
	}
	return nil
}

// DeleteForEvent removes notifications correlated to an event, used when the
// owning office deletes the event itself.
func (s *NotificationService) DeleteForEvent(eventID uint) error {
	var ids []uint
	if err := s.db.Model(&models.Notification{}).
		Where("event_id = ?", eventID).
		Pluck("notification_id", &ids).Error; err != nil {
		return &PersistenceError{Op: "load event notification ids", Err: err}
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.Where("notification_id IN ?", ids).Delete(&models.NotificationRead{}).Error; err != nil {
		return &PersistenceError{Op: "delete event read markers", Err: err}
	}
	if err := s.db.Where("notification_id IN ?", ids).Delete(&models.Notification{}).Error; err != nil {
		return &PersistenceError{Op: "delete event notifications", Err: err}
	}
	return nil
}
