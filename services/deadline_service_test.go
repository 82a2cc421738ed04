package services

import (
	"testing"

	"org-portal-api/models"
)

func strPtr(s string) *string { return &s }

func TestDeriveDeadlineEntriesPerRequiredKind(t *testing.T) {
	events := []models.Event{
		{
			EventID:               1,
			Title:                 "Org Fair",
			EndDate:               strPtr("2024-03-01"), // Friday
			TargetOrg:             models.OrgAccredited,
			RequireAccomplishment: true,
			RequireLiquidation:    true,
		},
	}

	entries, err := DeriveDeadlineEntries(events, models.OrgAccredited)
	if err != nil {
		t.Fatalf("DeriveDeadlineEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	byKind := map[string]models.DeadlineEntry{}
	for _, e := range entries {
		byKind[e.ReportKind] = e
	}

	if got := byKind[models.ReportKindAccomplishment].DueDate; got != "2024-03-06" {
		t.Errorf("accomplishment due = %s, want 2024-03-06", got)
	}
	if got := byKind[models.ReportKindLiquidation].DueDate; got != "2024-03-11" {
		t.Errorf("liquidation due = %s, want 2024-03-11", got)
	}
	for _, e := range entries {
		if e.HasOverride {
			t.Errorf("%s entry unexpectedly has override", e.ReportKind)
		}
		if e.TargetOrg != models.OrgAccredited {
			t.Errorf("%s entry target = %s", e.ReportKind, e.TargetOrg)
		}
	}
}

func TestDeriveDeadlineEntriesSkipsUnflaggedAndUndated(t *testing.T) {
	events := []models.Event{
		{EventID: 1, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgAccredited},
		{EventID: 2, TargetOrg: models.OrgAccredited, RequireAccomplishment: true}, // no end date
		{EventID: 3, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgAll, RequireAccomplishment: true},
		{EventID: 4, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgAccredited, RequireLiquidation: true},
	}

	entries, err := DeriveDeadlineEntries(events, models.OrgAccredited)
	if err != nil {
		t.Fatalf("DeriveDeadlineEntries returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].EventID != 4 || entries[0].ReportKind != models.ReportKindLiquidation {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestDeriveDeadlineEntriesOverrideWinsVerbatim(t *testing.T) {
	events := []models.Event{
		{
			EventID:                7,
			Title:                  "Outreach",
			EndDate:                strPtr("2024-03-01"),
			TargetOrg:              models.OrgCollegeCouncil,
			RequireAccomplishment:  true,
			RequireLiquidation:     true,
			AccomplishmentOverride: strPtr("2024-04-30"),
		},
	}

	entries, err := DeriveDeadlineEntries(events, models.OrgCollegeCouncil)
	if err != nil {
		t.Fatalf("DeriveDeadlineEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		switch e.ReportKind {
		case models.ReportKindAccomplishment:
			if !e.HasOverride || e.DueDate != "2024-04-30" {
				t.Errorf("override not applied: %+v", e)
			}
		case models.ReportKindLiquidation:
			if e.HasOverride || e.DueDate != "2024-03-11" {
				t.Errorf("liquidation entry wrongly affected by override: %+v", e)
			}
		}
	}
}

// The league and the university student government each additionally see one
// subordinate's deadlines, reminder-only: the subordinate remains the owner.
func TestDeriveDeadlineEntriesOversightVisibility(t *testing.T) {
	events := []models.Event{
		{EventID: 1, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgAccredited, RequireAccomplishment: true},
		{EventID: 2, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgLeague, RequireAccomplishment: true},
		{EventID: 3, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgCollegeCouncil, RequireAccomplishment: true},
		{EventID: 4, EndDate: strPtr("2024-03-01"), TargetOrg: models.OrgSeniorHighCouncil, RequireAccomplishment: true},
	}

	tests := []struct {
		viewer     string
		wantEvents []uint
	}{
		{models.OrgLeague, []uint{1, 2}},          // own plus accredited subordinate
		{models.OrgUSG, []uint{3}},                // college council only, not the siblings
		{models.OrgAccredited, []uint{1}},         // own only
		{models.OrgSeniorHighCouncil, []uint{4}},  // sibling councils are not oversight
		{models.OrgStudentLife, nil},              // office sees no one else's deadlines
	}

	for _, tt := range tests {
		entries, err := DeriveDeadlineEntries(events, tt.viewer)
		if err != nil {
			t.Fatalf("DeriveDeadlineEntries(%s) returned error: %v", tt.viewer, err)
		}
		var got []uint
		for _, e := range entries {
			got = append(got, e.EventID)
		}
		if len(got) != len(tt.wantEvents) {
			t.Errorf("%s sees events %v, want %v", tt.viewer, got, tt.wantEvents)
			continue
		}
		for i := range got {
			if got[i] != tt.wantEvents[i] {
				t.Errorf("%s sees events %v, want %v", tt.viewer, got, tt.wantEvents)
				break
			}
		}
	}

	// Ownership stays with the subordinate even when the oversight org views.
	entries, _ := DeriveDeadlineEntries(events, models.OrgLeague)
	for _, e := range entries {
		if e.EventID == 1 && e.IsOwnedBy(models.OrgLeague) {
			t.Error("league must not own its subordinate's deadline")
		}
	}
}
