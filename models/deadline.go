package models

// DeadlineEntry is a derived projection of an Event: one entry per required
// report kind. It is regenerated on every load and never persisted on its own;
// only the override date lives in the database, on the parent event.
type DeadlineEntry struct {
	EventID    uint   `json:"event_id"`
	EventTitle string `json:"event_title"`
	ReportKind string `json:"report_kind"` // accomplishment|liquidation
	DueDate    string `json:"due_date"`    // date-only, YYYY-MM-DD

	// HasOverride is set when a reviewer-approved replacement due date exists;
	// DueDate then carries the override verbatim.
	HasOverride bool `json:"has_override"`

	// TargetOrg is the owner organization, inherited from the parent event.
	// Oversight viewers receive entries they do not own.
	TargetOrg string `json:"target_org"`
}

// IsOwnedBy reports whether viewer is the owner of the report obligation.
// Only the owner may file an appeal for it.
func (d *DeadlineEntry) IsOwnedBy(viewer string) bool { return d.TargetOrg == viewer }

// DeadlineEntryResponse pairs a deadline entry with its resolved appeal state
// so the client renders without recomputing anything.
type DeadlineEntryResponse struct {
	DeadlineEntry
	AppealState string `json:"appeal_state"`
}
