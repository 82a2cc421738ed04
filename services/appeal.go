package services

import (
	"fmt"
	"io"
	"log"

	"gorm.io/gorm"

	"org-portal-api/models"
)

// AppealState is the rendering state of a deadline's appeal workflow for one
// viewing organization. States are derived from queryable facts on every load,
// never stored.
type AppealState string

const (
	// StateNoAppealNeeded is the default: nothing due today, no appeal activity.
	StateNoAppealNeeded AppealState = "no-appeal-needed"

	// StateCanFileAppeal: the viewer owns the obligation, its deadline is today,
	// and no appeal or override exists yet.
	StateCanFileAppeal AppealState = "can-file-appeal"

	// StateAppealFormOpen is the transient upload sub-state of StateCanFileAppeal.
	// It is entered only through OpenAppealForm, never derived from stored data.
	StateAppealFormOpen AppealState = "appeal-form-open"

	// StateAppealSubmittedPending: the owner's appeal exists and no override has
	// been applied yet. Display only.
	StateAppealSubmittedPending AppealState = "appeal-submitted-pending"

	// StateAppealApproved: an override date exists for this event and kind.
	StateAppealApproved AppealState = "appeal-approved"

	// StateObservedByReviewer: a non-owner viewer sees that the owner has filed
	// an appeal; it gets a one-shot reminder action, never a file-appeal action.
	StateObservedByReviewer AppealState = "observed-by-reviewer"
)

// ResolveAppealState derives the appeal state of entry for viewer from the set
// of letter-of-appeal submissions. today is a date-only string; the file-appeal
// affordance is offered only on the day the deadline falls due.
//
// Precedence: a non-owner observing an already-filed appeal wins over every
// owner-side state; then approved, then submitted-pending, then the
// deadline-today offer. A non-owner is never offered the file-appeal action.
func ResolveAppealState(viewer string, entry models.DeadlineEntry, appeals []models.Submission, today string) AppealState {
	appealFiled := false
	for i := range appeals {
		if appeals[i].IsAppealFor(entry.TargetOrg, entry.EventID, entry.ReportKind) {
			appealFiled = true
			break
		}
	}

	if !entry.IsOwnedBy(viewer) {
		if appealFiled {
			return StateObservedByReviewer
		}
		return StateNoAppealNeeded
	}

	if entry.HasOverride {
		return StateAppealApproved
	}
	if appealFiled {
		return StateAppealSubmittedPending
	}
	if entry.DueDate == today {
		return StateCanFileAppeal
	}
	return StateNoAppealNeeded
}

// OpenAppealForm performs the yes-transition from the deadline-today panel into
// the upload sub-state. Declining is a no-op and has no transition.
func OpenAppealForm(state AppealState) (AppealState, error) {
	if state != StateCanFileAppeal {
		return state, fmt.Errorf("cannot open appeal form from state %s", state)
	}
	return StateAppealFormOpen, nil
}

// ObjectStorage is the object-storage collaborator the appeal pipeline needs:
// an upload that returns a publicly dereferenceable URL.
type ObjectStorage interface {
	Upload(objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// Notifier dispatches notification records.
type Notifier interface {
	Notify(targetOrg, title, description, createdBy string, eventID *uint) error
}

// AppealService runs the appeal submission pipeline.
type AppealService struct {
	db      *gorm.DB
	storage ObjectStorage
	notify  Notifier
}

func NewAppealService(db *gorm.DB, storage ObjectStorage, notifier Notifier) *AppealService {
	return &AppealService{db: db, storage: storage, notify: notifier}
}

// SubmitAppeal uploads the letter, inserts the appeal submission routed to the
// appeal reviewer, and notifies that reviewer.
//
// Failure ordering: a missing file blocks the submission before any write. An
// upload failure aborts with no database row. An insert failure after a
// successful upload leaves the uploaded object orphaned (accepted gap) and
// creates no notification.
func (s *AppealService) SubmitAppeal(org string, eventID uint, kind, fileName string, file io.Reader, size int64, contentType string) (*models.Submission, error) {
	fields := map[string]string{}
	if file == nil || fileName == "" {
		fields["file"] = "Letter of appeal file is required"
	}
	if kind != models.ReportKindAccomplishment && kind != models.ReportKindLiquidation {
		fields["report_kind"] = "Unknown report kind"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var event models.Event
	if err := s.db.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		return nil, &PersistenceError{Op: "load event", Err: err}
	}
	if event.TargetOrg != org {
		return nil, &ValidationError{Fields: map[string]string{
			"organization": "Only the owner organization may file an appeal for this deadline",
		}}
	}

	// Advisory one-appeal-per-event-and-kind check. Read-then-write with no
	// transactional guard; a concurrent duplicate is an accepted race.
	var existing int64
	if err := s.db.Model(&models.Submission{}).
		Where("submission_type = ? AND organization = ? AND event_id = ? AND deadline_kind = ?",
			models.SubmissionTypeLetterOfAppeal, org, eventID, kind).
		Count(&existing).Error; err != nil {
		return nil, &PersistenceError{Op: "check existing appeal", Err: err}
	}
	if existing > 0 {
		return nil, &ValidationError{Fields: map[string]string{
			"appeal": "An appeal for this deadline has already been filed",
		}}
	}

	fileURL, err := s.storage.Upload(fileName, file, size, contentType)
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	reviewer := ResolveAppealReviewer(org)
	submission := models.Submission{
		Organization:   org,
		SubmissionType: models.SubmissionTypeLetterOfAppeal,
		ActivityTitle:  event.Title,
		FileURL:        fileURL,
		FileName:       fileName,
		Status:         models.SubmissionStatusPending,
		SubmittedTo:    reviewer,
		EventID:        &eventID,
		DeadlineKind:   &kind,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		// The uploaded object stays orphaned; no notification is created.
		return nil, &PersistenceError{Op: "insert appeal submission", Err: err}
	}

	title := "Letter of Appeal Received"
	description := fmt.Sprintf("%s filed an appeal for the %s report of %q. The appeal is valid for 3 days from submission, after which the report must be filed.",
		models.GetOrganizationName(org), kind, event.Title)
	if err := s.notify.Notify(reviewer, title, description, org, &eventID); err != nil {
		// Fire-and-forget: the appeal itself succeeded.
		log.Printf("appeal notification to %s failed: %v", reviewer, err)
	}

	return &submission, nil
}
