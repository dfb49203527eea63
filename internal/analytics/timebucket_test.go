package analytics

import (
	"math/rand"
	"testing"
	"time"
)

func TestMonthlyTrendEmptyInputPreSeedsAllBuckets(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	got := MonthlyTrend(nil, now)

	if len(got) != 6 {
		t.Fatalf("bucket count = %d, want 6", len(got))
	}
	wantFirst := monthKey{2023, time.October}
	if got[0].Year != wantFirst.year || got[0].Month != wantFirst.month {
		t.Fatalf("first bucket = %d-%s, want 2023-October", got[0].Year, got[0].Month)
	}
	if got[5].Year != 2024 || got[5].Month != time.March {
		t.Fatalf("last bucket = %d-%s, want 2024-March", got[5].Year, got[5].Month)
	}
	for i, b := range got {
		if b.Applications != 0 || b.Approved != 0 || b.Commission != 0 {
			t.Fatalf("bucket %d not zero-seeded: %+v", i, b)
		}
	}
}

func TestMonthlyTrendCountsAndCommission(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)
	rows := []Application{
		{Status: StatusApproved, AgentCommission: "100", CreatedAt: feb},
		{Status: StatusApproved, AgentCommission: "bad", CreatedAt: feb},
		{Status: StatusPending, AgentCommission: "50", CreatedAt: feb},
	}

	got := MonthlyTrend(rows, now)
	b := got[4] // February, one before current month
	if b.Month != time.February {
		t.Fatalf("bucket 4 month = %s, want February", b.Month)
	}
	if b.Applications != 3 {
		t.Fatalf("applications = %d, want 3", b.Applications)
	}
	if b.Approved != 2 {
		t.Fatalf("approved = %d, want 2", b.Approved)
	}
	if b.Commission != 100 {
		t.Fatalf("commission = %v, want 100 (malformed parses to 0, pending excluded)", b.Commission)
	}
}

func TestMonthlyTrendDropsStrayRows(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	rows := []Application{
		{Status: StatusApproved, CreatedAt: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Status: StatusApproved, CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	got := MonthlyTrend(rows, now)
	for i, b := range got {
		if b.Applications != 0 {
			t.Fatalf("stray row counted in bucket %d: %+v", i, b)
		}
	}
}

func TestMonthlyTrendYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	got := MonthlyTrend(nil, now)
	if got[0].Year != 2023 || got[0].Month != time.August {
		t.Fatalf("first bucket = %d-%s, want 2023-August", got[0].Year, got[0].Month)
	}
}

func TestWeeklyActivityShapeAndPlaceholders(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)
	rows := []Application{
		{Status: StatusPending, CreatedAt: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)},
		{Status: StatusApproved, CreatedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{Status: StatusPending, CreatedAt: time.Date(2024, time.March, 15, 11, 0, 0, 0, time.UTC)},
		{Status: StatusPending, CreatedAt: time.Date(2024, time.March, 13, 11, 0, 0, 0, time.UTC)},
		{Status: StatusPending, CreatedAt: time.Date(2024, time.March, 1, 11, 0, 0, 0, time.UTC)}, // outside window
	}

	got := WeeklyActivity(rows, now, rand.New(rand.NewSource(1)))
	if len(got) != 7 {
		t.Fatalf("bucket count = %d, want 7", len(got))
	}
	if got[0].Date != "2024-03-09" || got[6].Date != "2024-03-15" {
		t.Fatalf("window = [%s, %s], want [2024-03-09, 2024-03-15]", got[0].Date, got[6].Date)
	}
	if got[6].Applications != 3 {
		t.Fatalf("today's applications = %d, want 3", got[6].Applications)
	}
	if got[4].Applications != 1 {
		t.Fatalf("march 13 applications = %d, want 1", got[4].Applications)
	}
	for i, b := range got {
		if b.Calls < 0 || b.Calls > 2*b.Applications {
			t.Fatalf("bucket %d calls %d outside [0, %d]", i, b.Calls, 2*b.Applications)
		}
		if b.Meetings != b.Applications/2 {
			t.Fatalf("bucket %d meetings = %d, want %d", i, b.Meetings, b.Applications/2)
		}
	}
}

func TestWeeklyActivityNilRandDoesNotPanic(t *testing.T) {
	got := WeeklyActivity(nil, time.Now().UTC(), nil)
	if len(got) != 7 {
		t.Fatalf("bucket count = %d, want 7", len(got))
	}
}
