// Package dashboard turns raw application and profile rows into the derived
// view-models behind the customer, agent and admin portals. All reduction is
// delegated to the pure functions in internal/analytics; this service only
// fetches rows and assembles the response shapes.
package dashboard

import (
	"context"
	"math/rand"
	"time"

	"github.com/Deepsoni5/kucash-sub001/internal/analytics"
	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
)

// fetchLimit bounds a single dashboard query. Dashboards aggregate in memory,
// so rows must be fully materialized.
const fetchLimit = 10000

type ApplicationRepository interface {
	List(ctx context.Context, f applicationdomain.ListFilter) ([]applicationdomain.Entity, error)
}

type ProfileRepository interface {
	ListByUserIDs(ctx context.Context, userIDs []string) ([]customerdomain.Profile, error)
}

type ContactRepository interface {
	CountUnhandled(ctx context.Context) (int64, error)
}

type Service struct {
	apps     ApplicationRepository
	profiles ProfileRepository
	contacts ContactRepository
	now      func() time.Time
	rng      *rand.Rand
}

func NewService(apps ApplicationRepository, profiles ProfileRepository, contacts ContactRepository) *Service {
	return &Service{
		apps:     apps,
		profiles: profiles,
		contacts: contacts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type CommissionView struct {
	analytics.CommissionBreakdown
	EarnedDisplay  string `json:"earned_display"`
	PendingDisplay string `json:"pending_display"`
	LostDisplay    string `json:"lost_display"`
}

type AgentDashboard struct {
	Stats          analytics.Stats         `json:"stats"`
	Commission     CommissionView          `json:"commission"`
	MonthlyTrend   []analytics.MonthBucket `json:"monthly_trend"`
	WeeklyActivity []analytics.DayBucket   `json:"weekly_activity"`
}

type CustomerDashboard struct {
	Stats        analytics.Stats            `json:"stats"`
	Applications []applicationdomain.Entity `json:"applications"`
}

type AdminDashboard struct {
	Stats             analytics.Stats         `json:"stats"`
	Commission        CommissionView          `json:"commission"`
	MonthlyTrend      []analytics.MonthBucket `json:"monthly_trend"`
	UnhandledContacts int64                   `json:"unhandled_contacts"`
}

// Agent builds the referring agent's dashboard from that agent's rows.
func (s *Service) Agent(ctx context.Context, agentID string) (*AgentDashboard, error) {
	now := s.now()
	rows, err := s.apps.List(ctx, applicationdomain.ListFilter{
		AgentID:      agentID,
		CreatedAfter: trendWindowStart(now),
		Limit:        fetchLimit,
	})
	if err != nil {
		return nil, err
	}

	analyticsRows := toAnalyticsRows(rows)
	return &AgentDashboard{
		Stats:          analytics.Summarize(analyticsRows),
		Commission:     commissionView(analytics.SummarizeCommissions(analyticsRows)),
		MonthlyTrend:   analytics.MonthlyTrend(analyticsRows, now),
		WeeklyActivity: analytics.WeeklyActivity(analyticsRows, now, s.rng),
	}, nil
}

// Customer builds the customer's own dashboard: their stats plus their most
// recent applications.
func (s *Service) Customer(ctx context.Context, userID string) (*CustomerDashboard, error) {
	rows, err := s.apps.List(ctx, applicationdomain.ListFilter{UserID: userID, Limit: fetchLimit})
	if err != nil {
		return nil, err
	}
	return &CustomerDashboard{
		Stats:        analytics.Summarize(toAnalyticsRows(rows)),
		Applications: rows,
	}, nil
}

// Admin builds the platform-wide dashboard.
func (s *Service) Admin(ctx context.Context) (*AdminDashboard, error) {
	now := s.now()
	rows, err := s.apps.List(ctx, applicationdomain.ListFilter{
		CreatedAfter: trendWindowStart(now),
		Limit:        fetchLimit,
	})
	if err != nil {
		return nil, err
	}

	unhandled, err := s.contacts.CountUnhandled(ctx)
	if err != nil {
		return nil, err
	}

	analyticsRows := toAnalyticsRows(rows)
	return &AdminDashboard{
		Stats:             analytics.Summarize(analyticsRows),
		Commission:        commissionView(analytics.SummarizeCommissions(analyticsRows)),
		MonthlyTrend:      analytics.MonthlyTrend(analyticsRows, now),
		UnhandledContacts: unhandled,
	}, nil
}

// Customers lists the agent's customers rolled up from their applications,
// optionally narrowed by a free-text query.
func (s *Service) Customers(ctx context.Context, agentID, query string) ([]analytics.CustomerSummary, error) {
	rows, err := s.apps.List(ctx, applicationdomain.ListFilter{AgentID: agentID, Limit: fetchLimit})
	if err != nil {
		return nil, err
	}

	userIDs := distinctUserIDs(rows)
	var profiles []customerdomain.Profile
	if len(userIDs) > 0 {
		profiles, err = s.profiles.ListByUserIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
	}

	rolled := analytics.RollupCustomers(toAnalyticsRows(rows), toAnalyticsProfiles(profiles))
	return analytics.FilterCustomers(rolled, query), nil
}

func commissionView(b analytics.CommissionBreakdown) CommissionView {
	return CommissionView{
		CommissionBreakdown: b,
		EarnedDisplay:       analytics.FormatINR(b.Earned),
		PendingDisplay:      analytics.FormatINR(b.Pending),
		LostDisplay:         analytics.FormatINR(b.Lost),
	}
}

// trendWindowStart is the first instant of the oldest month in the six-month
// trend; the monthly aggregator drops anything older anyway, this just keeps
// the fetch bounded.
func trendWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
}

func distinctUserIDs(rows []applicationdomain.Entity) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}
		out = append(out, row.UserID)
	}
	return out
}

func toAnalyticsRows(rows []applicationdomain.Entity) []analytics.Application {
	out := make([]analytics.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.Application{
			ID:              row.ID,
			LoanID:          row.LoanID,
			UserID:          row.UserID,
			AgentID:         row.AgentID,
			Status:          analytics.Status(row.Status),
			LoanType:        row.LoanType,
			LoanAmount:      row.LoanAmount,
			AgentCommission: row.AgentCommission,
			CreatedAt:       row.CreatedAt,
			ProcessedAt:     row.ProcessedAt,
		})
	}
	return out
}

func toAnalyticsProfiles(profiles []customerdomain.Profile) []analytics.Profile {
	out := make([]analytics.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, analytics.Profile{
			UserID:       p.UserID,
			FullName:     p.FullName,
			Email:        p.Email,
			MobileNumber: p.MobileNumber,
			IsActive:     p.IsActive,
			CreatedAt:    p.CreatedAt,
		})
	}
	return out
}
