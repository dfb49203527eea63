package analytics

import "math"

// Stats is the per-owner summary shown at the top of every dashboard.
type Stats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	UnderReview  int     `json:"under_review"`
	Approved     int     `json:"approved"`
	Rejected     int     `json:"rejected"`
	Disbursed    int     `json:"disbursed"`
	ApprovalRate int     `json:"approval_rate"`
	TotalAmount  float64 `json:"total_amount"`
}

// Summarize reduces a row set into counts, sums and the approval rate.
// Status matching is exact; rows with an unrecognized status count toward
// Total and TotalAmount only. Empty input yields the zero Stats, never a
// division by zero.
func Summarize(rows []Application) Stats {
	var out Stats
	out.Total = len(rows)
	for _, row := range rows {
		switch row.Status {
		case StatusPending:
			out.Pending++
		case StatusUnderReview:
			out.UnderReview++
		case StatusApproved:
			out.Approved++
		case StatusRejected:
			out.Rejected++
		case StatusDisbursed:
			out.Disbursed++
		}
		out.TotalAmount += ParseAmount(row.LoanAmount)
	}
	if out.Total > 0 {
		out.ApprovalRate = int(math.Round(float64(out.Approved) / float64(out.Total) * 100))
	}
	return out
}
