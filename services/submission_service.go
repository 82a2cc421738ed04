package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"org-portal-api/models"
	"org-portal-api/utils"
)

// ErrAccountOnHold blocks activity requests from organizations whose account is
// on hold. Reports and appeals remain allowed.
var ErrAccountOnHold = errors.New("account is on hold; activity requests are blocked")

// SubmissionService validates and persists report and request submissions.
type SubmissionService struct {
	db     *gorm.DB
	notify Notifier
}

func NewSubmissionService(db *gorm.DB, notifier Notifier) *SubmissionService {
	return &SubmissionService{db: db, notify: notifier}
}

// HasPendingActivityRequest reports whether org already has a pending
// conduct-activity request. This is an advisory pre-check the caller runs
// before allowing a new request; it is not backed by a uniqueness constraint,
// so two concurrent submissions can both pass it.
func (s *SubmissionService) HasPendingActivityRequest(org string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Submission{}).
		Where("organization = ? AND submission_type = ? AND status = ?",
			org, models.SubmissionTypeActivityRequest, models.SubmissionStatusPending).
		Count(&count).Error
	if err != nil {
		return false, &PersistenceError{Op: "count pending requests", Err: err}
	}
	return count > 0, nil
}

// SubmitReport files an accomplishment or liquidation report by Drive link.
// The submission is routed to the filer's ordinary reviewer, which is then
// notified.
func (s *SubmissionService) SubmitReport(org string, req models.ReportSubmitRequest) (*models.Submission, error) {
	fields := map[string]string{}
	if utils.IsBlank(req.ActivityTitle) {
		fields["activity_title"] = "Activity title is required"
	}
	if !utils.IsDriveLink(req.DriveLink) {
		fields["drive_link"] = "A Google Drive or Docs link is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	reviewer := ResolveReviewer(org)
	submission := models.Submission{
		Organization:   org,
		SubmissionType: req.SubmissionType,
		ActivityTitle:  req.ActivityTitle,
		FileURL:        req.DriveLink,
		FileName:       req.ActivityTitle,
		Status:         models.SubmissionStatusPending,
		SubmittedTo:    reviewer,
		SubmittedAt:    time.Now(),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, &PersistenceError{Op: "insert report submission", Err: err}
	}

	s.notifyReviewer(reviewer, org, &submission)
	return &submission, nil
}

// SubmitActivityRequest files a conduct-activity request. An on-hold account is
// blocked outright, before any validation is attempted. Each required field is
// validated independently so the UI can flag every offending one at once.
func (s *SubmissionService) SubmitActivityRequest(org string, req models.ActivityRequestSubmitRequest) (*models.Submission, error) {
	var account models.Account
	if err := s.db.Where("organization = ? AND delete_at IS NULL", org).First(&account).Error; err != nil {
		return nil, &PersistenceError{Op: "load account", Err: err}
	}
	if account.IsOnHold() {
		return nil, ErrAccountOnHold
	}

	fields := map[string]string{}
	required := []struct{ name, value, message string }{
		{"activity_title", req.ActivityTitle, "Activity title is required"},
		{"recurrence_type", req.RecurrenceType, "Recurrence type is required"},
		{"venue", req.Venue, "Venue is required"},
		{"participants", req.Participants, "Participants are required"},
		{"funds_source", req.FundsSource, "Source of funds is required"},
		{"budget_number", req.BudgetNumber, "Budget number is required"},
		{"sdg_tag", req.SDGTag, "SDG tag is required"},
		{"likha_tag", req.LikhaTag, "LIKHA tag is required"},
	}
	for _, f := range required {
		if utils.IsBlank(f.value) {
			fields[f.name] = f.message
		}
	}
	if !utils.IsValidDate(req.ActivityStartDate) {
		fields["activity_start_date"] = "A valid start date is required"
	}
	if !utils.IsValidDate(req.ActivityEndDate) {
		fields["activity_end_date"] = "A valid end date is required"
	}
	if !utils.IsDriveLink(req.DesignFolderLink) {
		fields["design_folder_link"] = "A Google Drive or Docs link is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	reviewer := ResolveReviewer(org)
	submission := models.Submission{
		Organization:      org,
		SubmissionType:    models.SubmissionTypeActivityRequest,
		ActivityTitle:     req.ActivityTitle,
		ActivityStartDate: &req.ActivityStartDate,
		ActivityEndDate:   &req.ActivityEndDate,
		RecurrenceType:    &req.RecurrenceType,
		Venue:             &req.Venue,
		Participants:      &req.Participants,
		FundsSource:       &req.FundsSource,
		BudgetNumber:      &req.BudgetNumber,
		SDGTag:            &req.SDGTag,
		LikhaTag:          &req.LikhaTag,
		FileURL:           req.DesignFolderLink,
		FileName:          req.ActivityTitle,
		Status:            models.SubmissionStatusPending,
		SubmittedTo:       reviewer,
		SubmittedAt:       time.Now(),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, &PersistenceError{Op: "insert activity request", Err: err}
	}

	s.notifyReviewer(reviewer, org, &submission)
	return &submission, nil
}

// UpdateStatus records the reviewer's decision. Only the submitted-to
// organization may mutate a submission after creation.
func (s *SubmissionService) UpdateStatus(reviewer string, submissionID uint, status string, revisionReason *string) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		return nil, &PersistenceError{Op: "load submission", Err: err}
	}
	if submission.SubmittedTo != reviewer {
		return nil, &ValidationError{Fields: map[string]string{
			"submission": "Only the reviewing organization may change this submission",
		}}
	}

	updates := map[string]interface{}{"status": status}
	if status == models.SubmissionStatusForRevision {
		updates["revision_reason"] = revisionReason
	}
	if err := s.db.Model(&submission).Updates(updates).Error; err != nil {
		return nil, &PersistenceError{Op: "update submission status", Err: err}
	}
	submission.Status = status
	submission.RevisionReason = revisionReason

	title := "Submission " + status
	description := fmt.Sprintf("Your %s %q was marked %s by %s.",
		submission.SubmissionType, submission.ActivityTitle, status, models.GetOrganizationName(reviewer))
	if err := s.notify.Notify(submission.Organization, title, description, reviewer, submission.EventID); err != nil {
		log.Printf("status notification to %s failed: %v", submission.Organization, err)
	}
	return &submission, nil
}

func (s *SubmissionService) notifyReviewer(reviewer, filer string, submission *models.Submission) {
	title := "New " + submission.SubmissionType
	description := fmt.Sprintf("%s submitted %q for review.",
		models.GetOrganizationName(filer), submission.ActivityTitle)
	if err := s.notify.Notify(reviewer, title, description, filer, submission.EventID); err != nil {
		log.Printf("reviewer notification to %s failed: %v", reviewer, err)
	}
}
