package services

import (
	"testing"
	"time"
)

func TestAddWorkingDaysSkipsWeekends(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{"zero days returns start", "2024-03-01", 0, "2024-03-01"},
		{"friday plus one lands on monday", "2024-03-01", 1, "2024-03-04"},
		{"friday plus three", "2024-03-01", 3, "2024-03-06"},
		{"friday plus seven", "2024-03-01", 7, "2024-03-11"},
		{"midweek stays in week", "2024-03-05", 2, "2024-03-07"},
		{"midweek crosses weekend", "2024-03-05", 4, "2024-03-11"},
		{"saturday start counts from monday", "2024-03-02", 1, "2024-03-04"},
		{"sunday start counts from monday", "2024-03-03", 1, "2024-03-04"},
		{"two full weeks", "2024-03-01", 10, "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.ParseInLocation(DateLayout, tt.start, time.UTC)
			if err != nil {
				t.Fatalf("bad fixture date %s: %v", tt.start, err)
			}
			got := AddWorkingDays(start, tt.n).Format(DateLayout)
			if got != tt.want {
				t.Errorf("AddWorkingDays(%s, %d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

// The result of a positive advance is never a weekend day, and exactly n
// non-weekend days lie in (start, result].
func TestAddWorkingDaysProperties(t *testing.T) {
	start, _ := time.ParseInLocation(DateLayout, "2024-01-01", time.UTC)
	for offset := 0; offset < 14; offset++ {
		for n := 1; n <= 12; n++ {
			d := start.AddDate(0, 0, offset)
			result := AddWorkingDays(d, n)

			if result.Weekday() == time.Saturday || result.Weekday() == time.Sunday {
				t.Fatalf("AddWorkingDays(%s, %d) landed on weekend %s",
					d.Format(DateLayout), n, result.Format(DateLayout))
			}

			counted := 0
			for cursor := d.AddDate(0, 0, 1); !cursor.After(result); cursor = cursor.AddDate(0, 0, 1) {
				if cursor.Weekday() != time.Saturday && cursor.Weekday() != time.Sunday {
					counted++
				}
			}
			if counted != n {
				t.Fatalf("AddWorkingDays(%s, %d): %d working days in interval",
					d.Format(DateLayout), n, counted)
			}
		}
	}
}

func TestCalculateDeadline(t *testing.T) {
	got, err := CalculateDeadline("2024-03-01", AccomplishmentDeadlineDays)
	if err != nil {
		t.Fatalf("CalculateDeadline returned error: %v", err)
	}
	if got != "2024-03-06" {
		t.Errorf("accomplishment deadline = %s, want 2024-03-06", got)
	}

	got, err = CalculateDeadline("2024-03-01", LiquidationDeadlineDays)
	if err != nil {
		t.Fatalf("CalculateDeadline returned error: %v", err)
	}
	if got != "2024-03-11" {
		t.Errorf("liquidation deadline = %s, want 2024-03-11", got)
	}

	if _, err := CalculateDeadline("not-a-date", 3); err == nil {
		t.Error("expected error for malformed date")
	}
}

// Same input always yields the same string regardless of the process time zone.
func TestCalculateDeadlineDeterministic(t *testing.T) {
	first, err := CalculateDeadline("2024-06-14", 5)
	if err != nil {
		t.Fatalf("CalculateDeadline returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := CalculateDeadline("2024-06-14", 5)
		if err != nil {
			t.Fatalf("CalculateDeadline returned error: %v", err)
		}
		if again != first {
			t.Fatalf("CalculateDeadline not deterministic: %s then %s", first, again)
		}
	}
	if first != "2024-06-21" {
		t.Errorf("deadline = %s, want 2024-06-21", first)
	}
}

func TestDeadlineDaysFor(t *testing.T) {
	if got := DeadlineDaysFor("accomplishment"); got != 3 {
		t.Errorf("accomplishment days = %d, want 3", got)
	}
	if got := DeadlineDaysFor("liquidation"); got != 7 {
		t.Errorf("liquidation days = %d, want 7", got)
	}
}
