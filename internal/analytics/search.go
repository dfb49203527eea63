package analytics

import (
	"sort"
	"strings"
)

// FilterCustomers retains the summaries whose name, email or mobile number
// contains the query as a plain substring. Name and email matching is
// case-insensitive; mobile numbers are matched as-is. A blank query keeps
// every record. The result is a fresh slice sorted most-recently-active
// first; tie order between equal timestamps follows the stable sort.
func FilterCustomers(records []CustomerSummary, query string) []CustomerSummary {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]CustomerSummary, 0, len(records))
	for _, rec := range records {
		if q == "" ||
			strings.Contains(strings.ToLower(rec.FullName), q) ||
			strings.Contains(strings.ToLower(rec.Email), q) ||
			strings.Contains(rec.MobileNumber, q) {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out
}
