package analytics

import (
	"sort"
	"time"
)

// CustomerSummary is one customer's rolled-up application history as shown in
// the agent's customer list.
type CustomerSummary struct {
	UserID            string    `json:"user_id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	MobileNumber      string    `json:"mobile_number"`
	IsActive          bool      `json:"is_active"`
	TotalApplications int       `json:"total_applications"`
	ApprovedLoans     int       `json:"approved_loans"`
	PendingLoans      int       `json:"pending_loans"`
	RejectedLoans     int       `json:"rejected_loans"`
	TotalLoanAmount   float64   `json:"total_loan_amount"`
	PendingLoanAmount float64   `json:"pending_loan_amount"`
	LastActivity      time.Time `json:"last_activity"`
}

// RollupCustomers joins application rows to profiles by user id and reduces
// each customer's history into one summary. Applications whose user id has no
// profile are dropped entirely rather than surfacing as an anonymous entry.
// LastActivity is the true maximum created_at, whatever order the rows arrive
// in. Output is sorted most-recently-active first.
func RollupCustomers(apps []Application, profiles []Profile) []CustomerSummary {
	profileByUser := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		if _, ok := profileByUser[p.UserID]; !ok {
			profileByUser[p.UserID] = p
		}
	}

	index := make(map[string]int, len(profileByUser))
	out := make([]CustomerSummary, 0, len(profileByUser))
	for _, app := range apps {
		pos, seen := index[app.UserID]
		if !seen {
			p, ok := profileByUser[app.UserID]
			if !ok {
				continue
			}
			pos = len(out)
			index[app.UserID] = pos
			out = append(out, CustomerSummary{
				UserID:       p.UserID,
				FullName:     p.FullName,
				Email:        p.Email,
				MobileNumber: p.MobileNumber,
				IsActive:     p.IsActive,
			})
		}

		rec := &out[pos]
		rec.TotalApplications++
		switch app.Status {
		case StatusApproved:
			rec.ApprovedLoans++
			rec.TotalLoanAmount += ParseAmount(app.LoanAmount)
		case StatusPending:
			rec.PendingLoans++
			rec.PendingLoanAmount += ParseAmount(app.LoanAmount)
		case StatusRejected:
			rec.RejectedLoans++
		}
		if app.CreatedAt.After(rec.LastActivity) {
			rec.LastActivity = app.CreatedAt
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out
}
