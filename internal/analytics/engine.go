// Package analytics computes read-only aggregates over the entity store:
// dashboard counts, time-windowed distributions, leaderboards, risk rollups
// and geospatial bucketing. Aggregates never fail on empty datasets; they
// degrade to zero values and empty slices.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store"
)

const (
	// highRiskScore is the fixed risk threshold above which debris counts as
	// high risk
	highRiskScore = 8.0
	// highRiskBucketWarning is the fixed number of high-risk histogram
	// buckets above which the risk recommendation escalates
	highRiskBucketWarning = 5
	// highRiskListLimit caps the high-risk debris list
	highRiskListLimit = 10
	// defaultLeaderboardLimit is used when no limit is supplied
	defaultLeaderboardLimit = 10
)

// DashboardOverview is the headline counter block of the dashboard
type DashboardOverview struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalDebris          int64   `json:"totalDebris"`
	TotalObservations    int64   `json:"totalObservations"`
	PendingObservations  int64   `json:"pendingObservations"`
	ApprovedObservations int64   `json:"approvedObservations"`
	TotalModerations     int64   `json:"totalModerations"`
	ApprovalRate         float64 `json:"approvalRate"`
	LatestBlockNumber    int64   `json:"latestBlockNumber"`
}

// DashboardStats is the full dashboard payload
type DashboardStats struct {
	Overview       DashboardOverview `json:"overview"`
	RecentActivity []ActivityEntry   `json:"recentActivity"`
}

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DebrisStats aggregates the catalog, optionally windowed and per source
type DebrisStats struct {
	Total              int64                `json:"total"`
	AverageRiskScore   float64              `json:"averageRiskScore"`
	RiskDistribution   []store.RiskBucket   `json:"riskDistribution"`
	SourceDistribution []store.SourceBucket `json:"sourceDistribution"`
}

// ObservationStats aggregates the three status partitions
type ObservationStats struct {
	Total            int64        `json:"total"`
	Approved         int64        `json:"approved"`
	Rejected         int64        `json:"rejected"`
	Pending          int64        `json:"pending"`
	ApprovalRate     float64      `json:"approvalRate"`
	DailySubmissions []DailyCount `json:"dailySubmissions"`
}

// DailyCount is one day of a per-day series
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// ModerationStats aggregates recorded decisions
type ModerationStats struct {
	Total                 int64   `json:"total"`
	Approved              int64   `json:"approved"`
	Rejected              int64   `json:"rejected"`
	ApprovalRate          float64 `json:"approvalRate"`
	AverageProcessingTime float64 `json:"averageProcessingTime"`
}

// BlockchainStats aggregates the mirrored ledger
type BlockchainStats struct {
	Total             int64        `json:"total"`
	LatestBlockNumber int64        `json:"latestBlockNumber"`
	AverageBlockTime  float64      `json:"averageBlockTime"`
	DailyTransactions []DailyCount `json:"dailyTransactions"`
}

// HighRiskDebris is the reduced projection of a dangerous object
type HighRiskDebris struct {
	ID        string  `json:"id"`
	CatalogID string  `json:"catalogId"`
	RiskScore float64 `json:"riskScore"`
	Altitude  float64 `json:"altitude"`
	Source    string  `json:"source"`
}

// RiskAnalysis is the risk rollup with policy recommendations
type RiskAnalysis struct {
	RiskDistribution []store.RiskProfileBucket `json:"riskDistribution"`
	HighRiskDebris   []HighRiskDebris          `json:"highRiskDebris"`
	Recommendations  []string                  `json:"recommendations"`
}

// DensityCell is one cell of the geospatial density map
type DensityCell struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Count int64   `json:"count"`
}

// AltitudeBand is one band of the altitude distribution
type AltitudeBand struct {
	FromKm float64 `json:"fromKm"`
	ToKm   float64 `json:"toKm"`
	Count  int64   `json:"count"`
}

// GeospatialStats counts debris inside an optional rectangular bound.
// DensityMap and AltitudeDistribution are placeholders and stay empty.
type GeospatialStats struct {
	Total                int64          `json:"total"`
	DensityMap           []DensityCell  `json:"densityMap"`
	AltitudeDistribution []AltitudeBand `json:"altitudeDistribution"`
}

// Engine computes aggregates; it never mutates state
type Engine struct {
	store store.Store
	clock adapter.Clock
}

// NewEngine creates an analytics engine
func NewEngine(s store.Store, clock adapter.Clock) *Engine {
	return &Engine{store: s, clock: clock}
}

// window maps an optional timeframe token to an inclusive lower bound.
// An empty token means no time filter; an unrecognized token falls back to
// the 30 day default rather than erroring.
func (e *Engine) window(timeframe string) *time.Time {
	if timeframe == "" {
		return nil
	}
	cutoff := domain.TimeframeCutoff(timeframe, e.clock.Now())
	return &cutoff
}

// Dashboard computes the headline counters
func (e *Engine) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := e.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalDebris, err := e.store.CountDebris(ctx, store.DebrisFilter{})
	if err != nil {
		return nil, err
	}
	totalObservations, err := e.store.CountObservations(ctx, store.ObservationFilter{})
	if err != nil {
		return nil, err
	}
	pending := domain.StatusPending
	pendingObservations, err := e.store.CountObservations(ctx, store.ObservationFilter{Status: &pending})
	if err != nil {
		return nil, err
	}
	approved := domain.StatusApproved
	approvedObservations, err := e.store.CountObservations(ctx, store.ObservationFilter{Status: &approved})
	if err != nil {
		return nil, err
	}
	totalModerations, err := e.store.CountModerations(ctx, store.ModerationFilter{})
	if err != nil {
		return nil, err
	}
	approvedTrue := true
	approvedModerations, err := e.store.CountModerations(ctx, store.ModerationFilter{Approved: &approvedTrue})
	if err != nil {
		return nil, err
	}
	latestBlock, err := e.store.LatestBlockNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Overview: DashboardOverview{
			TotalUsers:           totalUsers,
			TotalDebris:          totalDebris,
			TotalObservations:    totalObservations,
			PendingObservations:  pendingObservations,
			ApprovedObservations: approvedObservations,
			TotalModerations:     totalModerations,
			ApprovalRate:         rate(approvedModerations, totalModerations),
			LatestBlockNumber:    latestBlock,
		},
		RecentActivity: []ActivityEntry{},
	}, nil
}

// DebrisStats aggregates the catalog, optionally filtered by source label
// and timeframe
func (e *Engine) DebrisStats(ctx context.Context, timeframe, source string) (*DebrisStats, error) {
	filter := store.DebrisFilter{Since: e.window(timeframe)}
	if source != "" {
		filter.Source = &source
	}

	total, err := e.store.CountDebris(ctx, filter)
	if err != nil {
		return nil, err
	}
	avgRisk, err := e.store.AvgDebrisRisk(ctx, filter)
	if err != nil {
		return nil, err
	}
	histogram, err := e.store.DebrisRiskHistogram(ctx, filter)
	if err != nil {
		return nil, err
	}
	sources, err := e.store.DebrisSourceHistogram(ctx, filter)
	if err != nil {
		return nil, err
	}
	if histogram == nil {
		histogram = []store.RiskBucket{}
	}
	if sources == nil {
		sources = []store.SourceBucket{}
	}

	return &DebrisStats{
		Total:              total,
		AverageRiskScore:   avgRisk,
		RiskDistribution:   histogram,
		SourceDistribution: sources,
	}, nil
}

// ObservationStats counts the three status partitions inside the optional
// timeframe. Pending means not yet decided; rejection is a distinct state.
func (e *Engine) ObservationStats(ctx context.Context, timeframe string) (*ObservationStats, error) {
	since := e.window(timeframe)

	total, err := e.store.CountObservations(ctx, store.ObservationFilter{Since: since})
	if err != nil {
		return nil, err
	}

	counts := map[domain.ApprovalStatus]int64{}
	for _, status := range []domain.ApprovalStatus{domain.StatusApproved, domain.StatusRejected, domain.StatusPending} {
		status := status
		count, err := e.store.CountObservations(ctx, store.ObservationFilter{Status: &status, Since: since})
		if err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return &ObservationStats{
		Total:            total,
		Approved:         counts[domain.StatusApproved],
		Rejected:         counts[domain.StatusRejected],
		Pending:          counts[domain.StatusPending],
		ApprovalRate:     rate(counts[domain.StatusApproved], total),
		DailySubmissions: []DailyCount{},
	}, nil
}

// Leaderboard returns the top users by points descending, ties broken by
// account age. The timeframe bounds only the joined observation counts.
func (e *Engine) Leaderboard(ctx context.Context, limit int, timeframe string) ([]store.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	entries, err := e.store.UserLeaderboard(ctx, limit, e.window(timeframe))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []store.LeaderboardEntry{}
	}
	return entries, nil
}

// ModerationStats aggregates decisions, optionally per moderator and
// timeframe
func (e *Engine) ModerationStats(ctx context.Context, moderatorID, timeframe string) (*ModerationStats, error) {
	filter := store.ModerationFilter{Since: e.window(timeframe)}
	if moderatorID != "" {
		filter.ModeratorID = &moderatorID
	}

	total, err := e.store.CountModerations(ctx, filter)
	if err != nil {
		return nil, err
	}
	approvedTrue := true
	approvedFilter := filter
	approvedFilter.Approved = &approvedTrue
	approved, err := e.store.CountModerations(ctx, approvedFilter)
	if err != nil {
		return nil, err
	}
	approvedFalse := false
	rejectedFilter := filter
	rejectedFilter.Approved = &approvedFalse
	rejected, err := e.store.CountModerations(ctx, rejectedFilter)
	if err != nil {
		return nil, err
	}

	return &ModerationStats{
		Total:        total,
		Approved:     approved,
		Rejected:     rejected,
		ApprovalRate: rate(approved, total),
		// Processing time needs the submission-to-decision join, which is
		// not aggregated yet
		AverageProcessingTime: 0,
	}, nil
}

// BlockchainStats aggregates the mirrored ledger inside the optional
// timeframe. Average block time is a placeholder and reports 0.
func (e *Engine) BlockchainStats(ctx context.Context, timeframe string) (*BlockchainStats, error) {
	since := e.window(timeframe)

	total, err := e.store.CountBlockchainLogs(ctx, since)
	if err != nil {
		return nil, err
	}
	latest, err := e.store.LatestBlockNumber(ctx, since)
	if err != nil {
		return nil, err
	}

	return &BlockchainStats{
		Total:             total,
		LatestBlockNumber: latest,
		AverageBlockTime:  0,
		DailyTransactions: []DailyCount{},
	}, nil
}

// RiskAnalysis rolls up the risk histogram with per-bucket altitude and
// spread, lists the most dangerous objects and emits a policy
// recommendation. The thresholds are fixed policy constants.
func (e *Engine) RiskAnalysis(ctx context.Context) (*RiskAnalysis, error) {
	profile, err := e.store.DebrisRiskProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = []store.RiskProfileBucket{}
	}

	dangerous, err := e.store.ListDebrisByMinRisk(ctx, highRiskScore, highRiskListLimit)
	if err != nil {
		return nil, err
	}
	highRisk := make([]HighRiskDebris, 0, len(dangerous))
	for _, d := range dangerous {
		highRisk = append(highRisk, HighRiskDebris{
			ID:        d.ID,
			CatalogID: d.CatalogID,
			RiskScore: d.RiskScore,
			Altitude:  d.Alt,
			Source:    d.Source,
		})
	}

	return &RiskAnalysis{
		RiskDistribution: profile,
		HighRiskDebris:   highRisk,
		Recommendations:  riskRecommendations(profile),
	}, nil
}

// GeospatialStats counts debris inside the optional rectangular bound,
// boundary values inclusive. A malformed bounds string fails with
// domain.ErrInvalidInput.
func (e *Engine) GeospatialStats(ctx context.Context, bounds string) (*GeospatialStats, error) {
	var (
		total int64
		err   error
	)
	if bounds == "" {
		total, err = e.store.CountDebris(ctx, store.DebrisFilter{})
	} else {
		var parsed domain.Bounds
		parsed, err = domain.ParseBounds(bounds)
		if err != nil {
			return nil, err
		}
		total, err = e.store.CountDebrisInBounds(ctx, parsed)
	}
	if err != nil {
		return nil, err
	}

	return &GeospatialStats{
		Total:                total,
		DensityMap:           []DensityCell{},
		AltitudeDistribution: []AltitudeBand{},
	}, nil
}

// riskRecommendations applies the fixed policy: more than five high-risk
// buckets escalates the message
func riskRecommendations(profile []store.RiskProfileBucket) []string {
	highRiskBuckets := 0
	for _, bucket := range profile {
		if bucket.RiskScore >= highRiskScore {
			highRiskBuckets++
		}
	}

	if highRiskBuckets > highRiskBucketWarning {
		return []string{"High number of high-risk debris detected. Consider immediate monitoring."}
	}
	return []string{"Risk levels are within acceptable parameters."}
}

// rate divides with 2-decimal rounding; an empty denominator yields 0,
// never an error or NaN
func rate(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*100) / 100
}
