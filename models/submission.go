// models/submission.go
package models

import "time"

// Submission types
const (
	SubmissionTypeActivityRequest      = "conduct-activity-request"
	SubmissionTypeAccomplishmentReport = "accomplishment-report"
	SubmissionTypeLiquidationReport    = "liquidation-report"
	SubmissionTypeLetterOfAppeal       = "letter-of-appeal"
)

// Submission statuses
const (
	SubmissionStatusPending     = "pending"
	SubmissionStatusApproved    = "approved"
	SubmissionStatusForRevision = "for-revision"
)

// Report kinds for deadline obligations.
const (
	ReportKindAccomplishment = "accomplishment"
	ReportKindLiquidation    = "liquidation"
)

// Submission represents the submissions table: a report, request, or appeal
// filed by an organization. Created by the filer; status mutated only by the
// submitted-to organization.
type Submission struct {
	SubmissionID   uint   `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Organization   string `gorm:"column:organization" json:"organization"`
	SubmissionType string `gorm:"column:submission_type" json:"submission_type"`
	ActivityTitle  string `gorm:"column:activity_title" json:"activity_title"`

	// Activity metadata, used by conduct-activity-request submissions.
	ActivityStartDate *string `gorm:"column:activity_start_date;type:date" json:"activity_start_date,omitempty"`
	ActivityEndDate   *string `gorm:"column:activity_end_date;type:date" json:"activity_end_date,omitempty"`
	RecurrenceType    *string `gorm:"column:recurrence_type" json:"recurrence_type,omitempty"`
	Venue             *string `gorm:"column:venue" json:"venue,omitempty"`
	Participants      *string `gorm:"column:participants" json:"participants,omitempty"`
	FundsSource       *string `gorm:"column:funds_source" json:"funds_source,omitempty"`
	BudgetNumber      *string `gorm:"column:budget_number" json:"budget_number,omitempty"`
	SDGTag            *string `gorm:"column:sdg_tag" json:"sdg_tag,omitempty"`
	LikhaTag          *string `gorm:"column:likha_tag" json:"likha_tag,omitempty"`

	FileURL  string `gorm:"column:file_url" json:"file_url"`
	FileName string `gorm:"column:file_name" json:"file_name"`

	Status         string  `gorm:"column:status" json:"status"` // pending|approved|for-revision
	SubmittedTo    string  `gorm:"column:submitted_to" json:"submitted_to"`
	RevisionReason *string `gorm:"column:revision_reason" json:"revision_reason,omitempty"`

	// Appeal correlation: the event and report kind the appeal was filed against.
	EventID      *uint   `gorm:"column:event_id" json:"event_id,omitempty"`
	DeadlineKind *string `gorm:"column:deadline_kind" json:"deadline_kind,omitempty"`

	SubmittedAt time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"-"`
}

func (Submission) TableName() string { return "submissions" }

// IsPending reports whether the submission is still awaiting review.
func (s *Submission) IsPending() bool { return s.Status == SubmissionStatusPending }

// IsAppealFor reports whether the submission is a letter of appeal filed by org
// against the given event and report kind.
func (s *Submission) IsAppealFor(org string, eventID uint, kind string) bool {
	return s.SubmissionType == SubmissionTypeLetterOfAppeal &&
		s.Organization == org &&
		s.EventID != nil && *s.EventID == eventID &&
		s.DeadlineKind != nil && *s.DeadlineKind == kind
}

// ===== Request DTOs =====

// ReportSubmitRequest files an accomplishment or liquidation report by Drive link.
type ReportSubmitRequest struct {
	SubmissionType string `json:"submission_type" binding:"required,oneof=accomplishment-report liquidation-report"`
	ActivityTitle  string `json:"activity_title"`
	DriveLink      string `json:"drive_link"`
}

// ActivityRequestSubmitRequest files a conduct-activity request. Every field is
// validated independently so the UI can flag each one.
type ActivityRequestSubmitRequest struct {
	ActivityTitle     string `json:"activity_title"`
	ActivityStartDate string `json:"activity_start_date"`
	ActivityEndDate   string `json:"activity_end_date"`
	RecurrenceType    string `json:"recurrence_type"`
	Venue             string `json:"venue"`
	Participants      string `json:"participants"`
	FundsSource       string `json:"funds_source"`
	BudgetNumber      string `json:"budget_number"`
	SDGTag            string `json:"sdg_tag"`
	LikhaTag          string `json:"likha_tag"`
	DesignFolderLink  string `json:"design_folder_link"`
}

// SubmissionStatusUpdateRequest is the reviewer's decision on a submission.
type SubmissionStatusUpdateRequest struct {
	Status         string  `json:"status" binding:"required,oneof=approved for-revision"`
	RevisionReason *string `json:"revision_reason"`
}
