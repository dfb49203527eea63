package analytics

import (
	"math"
	"testing"
	"time"
)

func app(status Status, amount string) Application {
	return Application{Status: status, LoanAmount: amount, CreatedAt: time.Now().UTC()}
}

func TestSummarizeEmptyInput(t *testing.T) {
	got := Summarize(nil)
	if got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestSummarizeCountsAndTotals(t *testing.T) {
	rows := []Application{
		app(StatusPending, "1000"),
		app(StatusApproved, "2000.50"),
		app(StatusRejected, "abc"),
		app(StatusUnderReview, ""),
		app(StatusDisbursed, "500"),
		app(Status("cancelled"), "100"),
	}

	got := Summarize(rows)
	if got.Total != 6 {
		t.Fatalf("total = %d, want 6", got.Total)
	}
	if got.Pending != 1 || got.Approved != 1 || got.Rejected != 1 || got.UnderReview != 1 || got.Disbursed != 1 {
		t.Fatalf("per-status counts wrong: %+v", got)
	}
	counted := got.Pending + got.Approved + got.Rejected + got.UnderReview + got.Disbursed
	if got.Total != counted+1 {
		t.Fatalf("unknown status should stay in total only: total=%d counted=%d", got.Total, counted)
	}
	if math.Abs(got.TotalAmount-3600.50) > 1e-9 {
		t.Fatalf("total amount = %v, want 3600.50", got.TotalAmount)
	}
}

func TestSummarizeMalformedAmountsContributeZero(t *testing.T) {
	rows := []Application{
		app(StatusPending, "1000"),
		app(StatusPending, "abc"),
		app(StatusPending, ""),
		app(StatusPending, "2000.50"),
	}
	got := Summarize(rows)
	if math.Abs(got.TotalAmount-3000.50) > 1e-9 {
		t.Fatalf("total amount = %v, want 3000.50", got.TotalAmount)
	}
}

func TestSummarizeApprovalRateRoundsHalfUp(t *testing.T) {
	oneOfThree := Summarize([]Application{
		app(StatusApproved, "0"),
		app(StatusPending, "0"),
		app(StatusPending, "0"),
	})
	if oneOfThree.ApprovalRate != 33 {
		t.Fatalf("1/3 approval rate = %d, want 33", oneOfThree.ApprovalRate)
	}

	twoOfThree := Summarize([]Application{
		app(StatusApproved, "0"),
		app(StatusApproved, "0"),
		app(StatusPending, "0"),
	})
	if twoOfThree.ApprovalRate != 67 {
		t.Fatalf("2/3 approval rate = %d, want 67", twoOfThree.ApprovalRate)
	}

	half := Summarize([]Application{
		app(StatusApproved, "0"),
		app(StatusRejected, "0"),
	})
	if half.ApprovalRate != 50 {
		t.Fatalf("1/2 approval rate = %d, want 50", half.ApprovalRate)
	}
}

func TestSummarizeStatusMatchIsExact(t *testing.T) {
	got := Summarize([]Application{
		app(Status("Approved"), "100"),
		app(Status(" approved"), "100"),
	})
	if got.Approved != 0 {
		t.Fatalf("case or whitespace variants must not match: %+v", got)
	}
	if got.Total != 2 {
		t.Fatalf("variants still count toward total: %+v", got)
	}
}
