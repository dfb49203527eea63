package analytics

import (
	"math/rand"
	"time"
)

const (
	trendMonths  = 6
	activityDays = 7
)

// MonthBucket is one calendar month in the agent trend chart.
type MonthBucket struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Label        string     `json:"label"`
	Applications int        `json:"applications"`
	Approved     int        `json:"approved"`
	Commission   float64    `json:"commission"`
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyTrend buckets rows into the six calendar months ending at now's
// month, oldest first. Every bucket is pre-seeded so empty months render as
// zeros instead of disappearing from the chart. Rows outside the window are
// dropped; the upstream query is expected to pre-filter but stray rows must
// not break the shape.
func MonthlyTrend(rows []Application, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, trendMonths)
	index := make(map[monthKey]int, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		index[monthKey{m.Year(), m.Month()}] = len(buckets)
		buckets = append(buckets, MonthBucket{
			Year:  m.Year(),
			Month: m.Month(),
			Label: m.Format("Jan 2006"),
		})
	}

	for _, row := range rows {
		pos, ok := index[monthKey{row.CreatedAt.Year(), row.CreatedAt.Month()}]
		if !ok {
			continue
		}
		buckets[pos].Applications++
		if row.Status == StatusApproved {
			buckets[pos].Approved++
			buckets[pos].Commission += ParseAmount(row.AgentCommission)
		}
	}
	return buckets
}

// DayBucket is one calendar day in the weekly activity strip.
type DayBucket struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Calls        int    `json:"calls"`
	Meetings     int    `json:"meetings"`
}

// WeeklyActivity buckets rows into the seven days ending today, ascending.
// Calls and Meetings are placeholder estimates, not tracked metrics: Calls is
// drawn uniformly from [0, 2*applications] and Meetings is applications/2.
// They exist so the activity widget has something to draw until real call and
// meeting tracking lands.
func WeeklyActivity(rows []Application, now time.Time, rng *rand.Rand) []DayBucket {
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	buckets := make([]DayBucket, 0, activityDays)
	index := make(map[string]int, activityDays)
	for i := activityDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Date: key})
	}

	for _, row := range rows {
		pos, ok := index[row.CreatedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		buckets[pos].Applications++
	}

	for i := range buckets {
		apps := buckets[i].Applications
		buckets[i].Calls = rng.Intn(2*apps + 1)
		buckets[i].Meetings = apps / 2
	}
	return buckets
}
