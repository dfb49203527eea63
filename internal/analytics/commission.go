package analytics

// CommissionBreakdown partitions agent commission by application outcome.
// Earned covers approved and disbursed loans, Pending covers loans still in
// flight, Lost covers rejections. A row lands in exactly one bucket, or in
// none when its status is unrecognized.
type CommissionBreakdown struct {
	Earned  float64 `json:"earned"`
	Pending float64 `json:"pending"`
	Lost    float64 `json:"lost"`
}

func SummarizeCommissions(rows []Application) CommissionBreakdown {
	var out CommissionBreakdown
	for _, row := range rows {
		switch row.Status {
		case StatusApproved, StatusDisbursed:
			out.Earned += ParseAmount(row.AgentCommission)
		case StatusPending, StatusUnderReview:
			out.Pending += ParseAmount(row.AgentCommission)
		case StatusRejected:
			out.Lost += ParseAmount(row.AgentCommission)
		}
	}
	return out
}
