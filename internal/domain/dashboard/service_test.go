package dashboard

import (
	"context"
	"testing"
	"time"

	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
)

type appRepoMock struct {
	rows       []applicationdomain.Entity
	lastFilter applicationdomain.ListFilter
}

func (m *appRepoMock) List(_ context.Context, f applicationdomain.ListFilter) ([]applicationdomain.Entity, error) {
	m.lastFilter = f
	return m.rows, nil
}

type profileRepoMock struct {
	profiles []customerdomain.Profile
}

func (m *profileRepoMock) ListByUserIDs(_ context.Context, _ []string) ([]customerdomain.Profile, error) {
	return m.profiles, nil
}

type contactRepoMock struct {
	unhandled int64
}

func (m *contactRepoMock) CountUnhandled(_ context.Context) (int64, error) {
	return m.unhandled, nil
}

func fixedService(apps *appRepoMock, profiles *profileRepoMock, contacts *contactRepoMock) *Service {
	svc := NewService(apps, profiles, contacts)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAgentDashboardShape(t *testing.T) {
	may := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	apps := &appRepoMock{rows: []applicationdomain.Entity{
		{UserID: "u1", AgentID: "ag1", Status: "approved", LoanAmount: "100000", AgentCommission: "2500", CreatedAt: may},
		{UserID: "u2", AgentID: "ag1", Status: "pending", LoanAmount: "50000", AgentCommission: "1000", CreatedAt: may},
	}}
	svc := fixedService(apps, &profileRepoMock{}, &contactRepoMock{})

	got, err := svc.Agent(context.Background(), "ag1")
	if err != nil {
		t.Fatalf("agent dashboard: %v", err)
	}
	if apps.lastFilter.AgentID != "ag1" {
		t.Fatalf("agent filter = %q, want ag1", apps.lastFilter.AgentID)
	}
	if apps.lastFilter.CreatedAfter.IsZero() {
		t.Fatalf("agent fetch must be bounded to the trend window")
	}
	if got.Stats.Total != 2 || got.Stats.Approved != 1 {
		t.Fatalf("stats = %+v", got.Stats)
	}
	if got.Commission.Earned != 2500 || got.Commission.Pending != 1000 {
		t.Fatalf("commission = %+v", got.Commission)
	}
	if got.Commission.EarnedDisplay != "₹2,500" {
		t.Fatalf("earned display = %q, want ₹2,500", got.Commission.EarnedDisplay)
	}
	if len(got.MonthlyTrend) != 6 {
		t.Fatalf("trend buckets = %d, want 6", len(got.MonthlyTrend))
	}
	if len(got.WeeklyActivity) != 7 {
		t.Fatalf("activity buckets = %d, want 7", len(got.WeeklyActivity))
	}
	// May is the second-to-last trend bucket for a June 15 clock.
	if got.MonthlyTrend[4].Applications != 2 || got.MonthlyTrend[4].Approved != 1 {
		t.Fatalf("may bucket = %+v", got.MonthlyTrend[4])
	}
}

func TestCustomerDashboardReturnsOwnRows(t *testing.T) {
	apps := &appRepoMock{rows: []applicationdomain.Entity{
		{UserID: "u1", Status: "pending", LoanAmount: "50000", CreatedAt: time.Now().UTC()},
	}}
	svc := fixedService(apps, &profileRepoMock{}, &contactRepoMock{})

	got, err := svc.Customer(context.Background(), "u1")
	if err != nil {
		t.Fatalf("customer dashboard: %v", err)
	}
	if apps.lastFilter.UserID != "u1" {
		t.Fatalf("user filter = %q, want u1", apps.lastFilter.UserID)
	}
	if got.Stats.Total != 1 || got.Stats.Pending != 1 {
		t.Fatalf("stats = %+v", got.Stats)
	}
	if len(got.Applications) != 1 {
		t.Fatalf("applications = %d, want 1", len(got.Applications))
	}
}

func TestAdminDashboardIncludesContacts(t *testing.T) {
	svc := fixedService(&appRepoMock{}, &profileRepoMock{}, &contactRepoMock{unhandled: 3})

	got, err := svc.Admin(context.Background())
	if err != nil {
		t.Fatalf("admin dashboard: %v", err)
	}
	if got.UnhandledContacts != 3 {
		t.Fatalf("unhandled contacts = %d, want 3", got.UnhandledContacts)
	}
	if got.Stats.Total != 0 {
		t.Fatalf("stats should be zero-valued on empty rows: %+v", got.Stats)
	}
	if len(got.MonthlyTrend) != 6 {
		t.Fatalf("trend buckets = %d, want 6", len(got.MonthlyTrend))
	}
}

func TestCustomersRollsUpAndFilters(t *testing.T) {
	now := time.Now().UTC()
	apps := &appRepoMock{rows: []applicationdomain.Entity{
		{UserID: "u1", AgentID: "ag1", Status: "approved", LoanAmount: "100000", CreatedAt: now},
		{UserID: "u2", AgentID: "ag1", Status: "pending", LoanAmount: "50000", CreatedAt: now},
		{UserID: "ghost", AgentID: "ag1", Status: "pending", LoanAmount: "1", CreatedAt: now},
	}}
	profiles := &profileRepoMock{profiles: []customerdomain.Profile{
		{UserID: "u1", FullName: "John Doe", Email: "john@example.com"},
		{UserID: "u2", FullName: "Jane Smith", Email: "jane@example.com"},
	}}
	svc := fixedService(apps, profiles, &contactRepoMock{})

	all, err := svc.Customers(context.Background(), "ag1", "")
	if err != nil {
		t.Fatalf("customers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("rollup length = %d, want 2 (orphan dropped)", len(all))
	}

	filtered, err := svc.Customers(context.Background(), "ag1", "doe")
	if err != nil {
		t.Fatalf("customers filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].UserID != "u1" {
		t.Fatalf("filtered = %+v, want only u1", filtered)
	}
}
