package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/debris-tracker/internal/analytics"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/mocks"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

type testEngineMocks struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	clock  *mocks.MockClock
	engine *analytics.Engine
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	return &testEngineMocks{
		ctrl:   ctrl,
		store:  mockStore,
		clock:  mockClock,
		engine: analytics.NewEngine(mockStore, mockClock),
	}
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestEngine_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the headline counters", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountUsers(ctx).Return(int64(6), nil)
		m.store.EXPECT().CountDebris(ctx, store.DebrisFilter{}).Return(int64(10), nil)
		m.store.EXPECT().CountObservations(ctx, store.ObservationFilter{}).Return(int64(20), nil)
		pending := domain.StatusPending
		m.store.EXPECT().CountObservations(ctx, store.ObservationFilter{Status: &pending}).Return(int64(5), nil)
		approved := domain.StatusApproved
		m.store.EXPECT().CountObservations(ctx, store.ObservationFilter{Status: &approved}).Return(int64(12), nil)
		m.store.EXPECT().CountModerations(ctx, store.ModerationFilter{}).Return(int64(15), nil)
		approvedTrue := true
		m.store.EXPECT().CountModerations(ctx, store.ModerationFilter{Approved: &approvedTrue}).Return(int64(12), nil)
		m.store.EXPECT().LatestBlockNumber(ctx, nil).Return(int64(19000009), nil)

		stats, err := m.engine.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(6), stats.Overview.TotalUsers)
		assert.Equal(t, int64(10), stats.Overview.TotalDebris)
		assert.InDelta(t, 0.8, stats.Overview.ApprovalRate, 0.001)
		assert.Equal(t, int64(19000009), stats.Overview.LatestBlockNumber)
		assert.NotNil(t, stats.RecentActivity)
	})

	t.Run("empty platform reports zeros, not errors", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountUsers(ctx).Return(int64(0), nil)
		m.store.EXPECT().CountDebris(ctx, gomock.Any()).Return(int64(0), nil)
		m.store.EXPECT().CountObservations(ctx, gomock.Any()).Return(int64(0), nil).Times(3)
		m.store.EXPECT().CountModerations(ctx, gomock.Any()).Return(int64(0), nil).Times(2)
		m.store.EXPECT().LatestBlockNumber(ctx, nil).Return(int64(0), nil)

		stats, err := m.engine.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, float64(0), stats.Overview.ApprovalRate)
	})
}

func TestEngine_DebrisStats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty timeframe applies no time filter", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		filter := store.DebrisFilter{}
		m.store.EXPECT().CountDebris(ctx, filter).Return(int64(5), nil)
		m.store.EXPECT().AvgDebrisRisk(ctx, filter).Return(7.42, nil)
		m.store.EXPECT().DebrisRiskHistogram(ctx, filter).Return([]store.RiskBucket{{RiskScore: 8.5, Count: 2}}, nil)
		m.store.EXPECT().DebrisSourceHistogram(ctx, filter).Return(nil, nil)

		stats, err := m.engine.DebrisStats(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.Total)
		assert.InDelta(t, 7.42, stats.AverageRiskScore, 0.001)
		require.Len(t, stats.RiskDistribution, 1)
		// nil histogram degrades to an empty slice
		assert.NotNil(t, stats.SourceDistribution)
		assert.Empty(t, stats.SourceDistribution)
	})

	t.Run("timeframe and source narrow the filter", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.clock.EXPECT().Now().Return(testNow)
		since := testNow.Add(-7 * 24 * time.Hour)
		norad := "NORAD"
		filter := store.DebrisFilter{Source: &norad, Since: &since}

		m.store.EXPECT().CountDebris(ctx, filter).Return(int64(3), nil)
		m.store.EXPECT().AvgDebrisRisk(ctx, filter).Return(6.0, nil)
		m.store.EXPECT().DebrisRiskHistogram(ctx, filter).Return(nil, nil)
		m.store.EXPECT().DebrisSourceHistogram(ctx, filter).Return(nil, nil)

		stats, err := m.engine.DebrisStats(ctx, "7d", "NORAD")
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Total)
	})
}

func TestEngine_ObservationStats(t *testing.T) {
	ctx := context.Background()

	t.Run("partitions by status with the approval rate", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountObservations(ctx, store.ObservationFilter{}).Return(int64(8), nil)
		m.store.EXPECT().CountObservations(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f store.ObservationFilter) (int64, error) {
				switch *f.Status {
				case domain.StatusApproved:
					return 4, nil
				case domain.StatusRejected:
					return 1, nil
				default:
					return 3, nil
				}
			}).Times(3)

		stats, err := m.engine.ObservationStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(8), stats.Total)
		assert.Equal(t, int64(4), stats.Approved)
		assert.Equal(t, int64(1), stats.Rejected)
		assert.Equal(t, int64(3), stats.Pending)
		assert.InDelta(t, 0.5, stats.ApprovalRate, 0.001)
	})

	t.Run("zero observations never divide by zero", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountObservations(ctx, gomock.Any()).Return(int64(0), nil).Times(4)

		stats, err := m.engine.ObservationStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, float64(0), stats.ApprovalRate)
	})
}

func TestEngine_Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the limit", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().UserLeaderboard(ctx, 10, nil).Return([]store.LeaderboardEntry{{UserID: "user-1", Points: 1000}}, nil)

		entries, err := m.engine.Leaderboard(ctx, 0, "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1000, entries[0].Points)
	})

	t.Run("nil result degrades to an empty slice", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().UserLeaderboard(ctx, 5, nil).Return(nil, nil)

		entries, err := m.engine.Leaderboard(ctx, 5, "")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestEngine_ModerationStats(t *testing.T) {
	ctx := context.Background()

	t.Run("per-moderator rollup", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountModerations(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f store.ModerationFilter) (int64, error) {
				require.NotNil(t, f.ModeratorID)
				assert.Equal(t, "mod-1", *f.ModeratorID)
				if f.Approved == nil {
					return 4, nil
				}
				if *f.Approved {
					return 3, nil
				}
				return 1, nil
			}).Times(3)

		stats, err := m.engine.ModerationStats(ctx, "mod-1", "")
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.Total)
		assert.Equal(t, int64(3), stats.Approved)
		assert.Equal(t, int64(1), stats.Rejected)
		assert.InDelta(t, 0.75, stats.ApprovalRate, 0.001)
	})
}

func TestEngine_BlockchainStats(t *testing.T) {
	ctx := context.Background()

	t.Run("windows the ledger aggregates", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.clock.EXPECT().Now().Return(testNow)
		since := testNow.Add(-30 * 24 * time.Hour)
		m.store.EXPECT().CountBlockchainLogs(ctx, &since).Return(int64(4), nil)
		m.store.EXPECT().LatestBlockNumber(ctx, &since).Return(int64(19000009), nil)

		stats, err := m.engine.BlockchainStats(ctx, "30d")
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.Total)
		assert.Equal(t, int64(19000009), stats.LatestBlockNumber)
	})
}

func TestEngine_RiskAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("few high-risk buckets keeps the calm recommendation", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		profile := []store.RiskProfileBucket{
			{RiskScore: 9.8, Count: 1},
			{RiskScore: 8.5, Count: 2},
			{RiskScore: 4.1, Count: 1},
		}
		m.store.EXPECT().DebrisRiskProfile(ctx).Return(profile, nil)
		m.store.EXPECT().ListDebrisByMinRisk(ctx, 8.0, 10).Return([]schema.Debris{
			{ID: "debris-1", CatalogID: "25547", RiskScore: 9.8, Alt: 700, Source: "CNSA"},
		}, nil)

		analysis, err := m.engine.RiskAnalysis(ctx)
		require.NoError(t, err)
		require.Len(t, analysis.HighRiskDebris, 1)
		assert.Equal(t, "25547", analysis.HighRiskDebris[0].CatalogID)
		require.Len(t, analysis.Recommendations, 1)
		assert.Contains(t, analysis.Recommendations[0], "acceptable")
	})

	t.Run("many high-risk buckets escalate the recommendation", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		profile := make([]store.RiskProfileBucket, 0, 6)
		for i := 0; i < 6; i++ {
			profile = append(profile, store.RiskProfileBucket{RiskScore: 8.0 + float64(i)*0.3, Count: 1})
		}
		m.store.EXPECT().DebrisRiskProfile(ctx).Return(profile, nil)
		m.store.EXPECT().ListDebrisByMinRisk(ctx, 8.0, 10).Return(nil, nil)

		analysis, err := m.engine.RiskAnalysis(ctx)
		require.NoError(t, err)
		require.Len(t, analysis.Recommendations, 1)
		assert.Contains(t, analysis.Recommendations[0], "immediate monitoring")
	})
}

func TestEngine_GeospatialStats(t *testing.T) {
	ctx := context.Background()

	t.Run("no bounds counts the whole catalog", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().CountDebris(ctx, store.DebrisFilter{}).Return(int64(10), nil)

		stats, err := m.engine.GeospatialStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.Total)
	})

	t.Run("bounds restrict the count", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		expected := domain.Bounds{Lat1: 50, Lng1: 120, Lat2: 60, Lng2: 135}
		m.store.EXPECT().CountDebrisInBounds(ctx, expected).Return(int64(2), nil)

		stats, err := m.engine.GeospatialStats(ctx, "50,120,60,135")
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Total)
	})

	t.Run("malformed bounds fail with invalid input", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		_, err := m.engine.GeospatialStats(ctx, "50,120,60")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
