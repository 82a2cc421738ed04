package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"org-portal-api/models"
)

func TestRecipientsForBroadcastExcludesCreator(t *testing.T) {
	recipients := recipientsFor(models.OrgAll, models.OrgStudentLife)
	if len(recipients) != len(models.AllOrganizations)-1 {
		t.Fatalf("expected %d recipients, got %d", len(models.AllOrganizations)-1, len(recipients))
	}
	for _, org := range recipients {
		if org == models.OrgStudentLife {
			t.Error("creator included in its own broadcast")
		}
	}

	direct := recipientsFor(models.OrgLeague, models.OrgStudentLife)
	if len(direct) != 1 || direct[0] != models.OrgLeague {
		t.Errorf("direct target expanded wrongly: %v", direct)
	}
}

func noAccountStep() *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT .* FROM `accounts`"),
		columns: []string{"account_id", "organization", "email", "status"},
	}
}

func TestNotifySingleTargetInsertsOneRow(t *testing.T) {
	steps := []*queryStep{
		{kind: kindExec, pattern: regexp.MustCompile("INSERT INTO `notifications`")},
		noAccountStep(), // mail side-channel finds no account, silently skipped
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	eventID := uint(4)
	if err := svc.Notify(models.OrgLeague, "New report", "A report awaits review.",
		models.OrgAccredited, &eventID); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNotifyBroadcastFansOutPerRecipient(t *testing.T) {
	recipients := len(models.AllOrganizations) - 1
	var steps []*queryStep
	for i := 0; i < recipients; i++ {
		steps = append(steps,
			&queryStep{kind: kindExec, pattern: regexp.MustCompile("INSERT INTO `notifications`")},
			noAccountStep(),
		)
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	if err := svc.Notify(models.OrgAll, "General assembly", "Attendance is required.",
		models.OrgStudentLife, nil); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("fan-out incomplete: %v", err)
	}
}

func TestMarkReadInsertsMarker(t *testing.T) {
	steps := []*queryStep{
		{kind: kindExec, pattern: regexp.MustCompile("INSERT INTO `notification_reads`")},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	if err := svc.MarkRead(12, models.OrgAccredited); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Delete-all removes the reader's markers first, then the notification rows
// themselves. The row delete is destructive, not a per-reader hide.
func TestDeleteAllRemovesMarkersThenRows(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `notification_id` FROM `notifications`"),
			columns: []string{"notification_id"},
			rows:    [][]driver.Value{{int64(1)}, {int64(2)}},
		},
		{kind: kindExec, pattern: regexp.MustCompile("DELETE FROM `notification_reads`")},
		{kind: kindExec, pattern: regexp.MustCompile("DELETE FROM `notifications`")},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	if err := svc.DeleteAll(models.OrgAccredited); err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAllWithNothingToDeleteTouchesNothing(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `notification_id` FROM `notifications`"),
			columns: []string{"notification_id"},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	if err := svc.DeleteAll(models.OrgAccredited); err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListForViewerComputesUnreadFromMarkers(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `notifications`"),
			columns: []string{"notification_id", "title", "target_org"},
			rows: [][]driver.Value{
				{int64(1), "Reminder", models.OrgAccredited},
				{int64(2), "Approved", models.OrgAccredited},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `notification_reads`"),
			columns: []string{"read_id", "notification_id", "reader_org"},
			rows:    [][]driver.Value{{int64(7), int64(1), models.OrgAccredited}},
		},
	}
	db, _, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewNotificationService(db)
	notifications, err := svc.ListForViewer(models.OrgAccredited)
	if err != nil {
		t.Fatalf("ListForViewer returned error: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if !notifications[0].IsRead {
		t.Error("marked notification reported unread")
	}
	if notifications[1].IsRead {
		t.Error("unmarked notification reported read")
	}
}
