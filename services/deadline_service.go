package services

import (
	"gorm.io/gorm"

	"org-portal-api/models"
)

// Oversight pairs: each oversight organization additionally sees the deadlines
// of one specific subordinate, purely for reminder purposes. The subordinate
// stays the owner for appeal purposes.
var oversightSubordinate = map[string]string{
	models.OrgLeague: models.OrgAccredited,
	models.OrgUSG:    models.OrgCollegeCouncil,
}

// DeadlineService derives deadline entries from stored events.
type DeadlineService struct {
	db *gorm.DB
}

func NewDeadlineService(db *gorm.DB) *DeadlineService {
	return &DeadlineService{db: db}
}

// seesDeadlinesOf reports whether viewer sees deadlines owned by target.
func seesDeadlinesOf(viewer, target string) bool {
	if viewer == target {
		return true
	}
	return oversightSubordinate[viewer] == target
}

// DeriveDeadlineEntries computes the deadline entries viewer sees from a set of
// events. For each event with an end date, one entry is derived per required
// report kind: 3 working days out for accomplishment, 7 for liquidation, unless
// a persisted override exists for that event and kind, which is used verbatim.
// Broadcast ("ALL") events carry no report obligation and derive nothing.
func DeriveDeadlineEntries(events []models.Event, viewer string) ([]models.DeadlineEntry, error) {
	entries := make([]models.DeadlineEntry, 0, len(events))
	for i := range events {
		ev := &events[i]
		if ev.EndDate == nil || ev.TargetOrg == models.OrgAll {
			continue
		}
		if !seesDeadlinesOf(viewer, ev.TargetOrg) {
			continue
		}

		kinds := make([]string, 0, 2)
		if ev.RequireAccomplishment {
			kinds = append(kinds, models.ReportKindAccomplishment)
		}
		if ev.RequireLiquidation {
			kinds = append(kinds, models.ReportKindLiquidation)
		}

		for _, kind := range kinds {
			entry := models.DeadlineEntry{
				EventID:    ev.EventID,
				EventTitle: ev.Title,
				ReportKind: kind,
				TargetOrg:  ev.TargetOrg,
			}
			if override := ev.OverrideFor(kind); override != nil && *override != "" {
				entry.DueDate = *override
				entry.HasOverride = true
			} else {
				due, err := CalculateDeadline(*ev.EndDate, DeadlineDaysFor(kind))
				if err != nil {
					return nil, err
				}
				entry.DueDate = due
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// EntriesForViewer loads stored events and derives the viewer's deadline entries.
func (s *DeadlineService) EntriesForViewer(viewer string) ([]models.DeadlineEntry, error) {
	var events []models.Event
	if err := s.db.Where("delete_at IS NULL AND end_date IS NOT NULL").Find(&events).Error; err != nil {
		return nil, &PersistenceError{Op: "load events", Err: err}
	}
	return DeriveDeadlineEntries(events, viewer)
}
