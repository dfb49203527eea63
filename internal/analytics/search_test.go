package analytics

import (
	"testing"
	"time"
)

func searchFixtures() []CustomerSummary {
	return []CustomerSummary{
		{UserID: "u1", FullName: "John Doe", Email: "john@example.com", MobileNumber: "+919876543210",
			LastActivity: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: "u2", FullName: "Jane Smith", Email: "jane@example.com", MobileNumber: "+918888888888",
			LastActivity: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFilterCustomersByName(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "doe")
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("query 'doe' = %+v, want only u1", got)
	}
}

func TestFilterCustomersCaseInsensitiveAndTrimmed(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "  JANE@EXAMPLE  ")
	if len(got) != 1 || got[0].UserID != "u2" {
		t.Fatalf("trimmed/lowered email query = %+v, want only u2", got)
	}
}

func TestFilterCustomersByMobileSubstring(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "98765")
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("mobile query = %+v, want only u1", got)
	}
}

func TestFilterCustomersBlankQueryKeepsAll(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "   ")
	if len(got) != 2 {
		t.Fatalf("blank query length = %d, want 2", len(got))
	}
}

func TestFilterCustomersSortsByLastActivityDesc(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "")
	if got[0].UserID != "u2" || got[1].UserID != "u1" {
		t.Fatalf("order = [%s %s], want [u2 u1]", got[0].UserID, got[1].UserID)
	}
}

func TestFilterCustomersNoMatch(t *testing.T) {
	got := FilterCustomers(searchFixtures(), "zzz")
	if len(got) != 0 {
		t.Fatalf("no-match query length = %d, want 0", len(got))
	}
}

func TestFilterCustomersDoesNotMutateInput(t *testing.T) {
	in := searchFixtures()
	_ = FilterCustomers(in, "")
	if in[0].UserID != "u1" {
		t.Fatalf("input slice reordered: first = %s", in[0].UserID)
	}
}
