package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/debris-tracker/internal/batch"
	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/mocks"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// The engine delegates to the real services, so tests stub the store
// underneath them and watch the per-item accounting on top.
type testEngineMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	clock     *mocks.MockClock
	publisher *mocks.MockPublisher
	engine    *batch.Engine
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)

	catalogSvc := catalog.NewService(mockStore, mockClock)
	identitySvc := identity.NewService(mockStore, mockClock)
	lifecycleMgr := lifecycle.NewManager(mockStore, mockClock, mockPublisher)

	return &testEngineMocks{
		ctrl:      ctrl,
		store:     mockStore,
		clock:     mockClock,
		publisher: mockPublisher,
		engine:    batch.NewEngine(mockStore, catalogSvc, identitySvc, lifecycleMgr, mockClock),
	}
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// expectJobRecord matches the advisory batch job row written at the end of
// every batch
func (m *testEngineMocks) expectJobRecord(t *testing.T, kind schema.BatchJobKind, total, success, failed int) {
	m.clock.EXPECT().Now().Return(testNow)
	m.store.EXPECT().CreateBatchJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job *schema.BatchJob) error {
			assert.Equal(t, kind, job.Kind)
			assert.Equal(t, total, job.Total)
			assert.Equal(t, success, job.Success)
			assert.Equal(t, failed, job.Failed)
			assert.NotEmpty(t, job.ID)
			return nil
		})
}

func TestEngine_ImportDebris(t *testing.T) {
	ctx := context.Background()

	t.Run("a duplicate item fails alone", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().GetDebrisByCatalogID(ctx, "25544").Return(nil, nil)
		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().CreateDebris(ctx, gomock.Any()).Return(nil)

		m.store.EXPECT().GetDebrisByCatalogID(ctx, "25545").Return(&schema.Debris{ID: "debris-2"}, nil)

		m.store.EXPECT().GetDebrisByCatalogID(ctx, "25546").Return(nil, nil)
		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().CreateDebris(ctx, gomock.Any()).Return(nil)

		m.expectJobRecord(t, schema.BatchJobImportDebris, 3, 2, 1)

		result, err := m.engine.ImportDebris(ctx, []catalog.CreateInput{
			{CatalogID: "25544", Source: "NORAD"},
			{CatalogID: "25545", Source: "ESA"},
			{CatalogID: "25546", Source: "JAXA"},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Success)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "25545")
	})

	t.Run("empty batch records an empty job", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.expectJobRecord(t, schema.BatchJobImportDebris, 0, 0, 0)

		result, err := m.engine.ImportDebris(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Errors)
	})
}

func TestEngine_ImportUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid and conflicting items fail alone", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().GetUserByWallet(ctx, "0xaaa").Return(nil, nil)
		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)

		// second item: empty wallet, rejected before any store call
		// third item: wallet already registered
		m.store.EXPECT().GetUserByWallet(ctx, "0xbbb").Return(&schema.User{ID: "user-2"}, nil)

		m.expectJobRecord(t, schema.BatchJobImportUsers, 3, 1, 2)

		result, err := m.engine.ImportUsers(ctx, []identity.CreateInput{
			{WalletAddress: "0xaaa"},
			{},
			{WalletAddress: "0xbbb"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Success)
		assert.Equal(t, 2, result.Failed)
		assert.Len(t, result.Errors, 2)
	})
}

func TestEngine_Decisions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve accounts for missing observations per item", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		obs1 := &schema.Observation{ID: "obs-1", Status: domain.StatusPending}
		m.store.EXPECT().GetObservationByID(ctx, "obs-1").Return(obs1, nil)
		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().UpdateObservation(ctx, gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishObservationEvent(ctx, gomock.Any()).Return(nil)

		m.store.EXPECT().GetObservationByID(ctx, "ghost").Return(nil, nil)

		m.expectJobRecord(t, schema.BatchJobApprove, 2, 1, 1)

		result, err := m.engine.Approve(ctx, []string{"obs-1", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Success)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "ghost", result.Errors[0].ID)
	})

	t.Run("reject flips each observation", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		obs := &schema.Observation{ID: "obs-1", Status: domain.StatusApproved}
		m.store.EXPECT().GetObservationByID(ctx, "obs-1").Return(obs, nil)
		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().UpdateObservation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, o *schema.Observation) error {
				assert.Equal(t, domain.StatusRejected, o.Status)
				return nil
			})
		m.publisher.EXPECT().PublishObservationEvent(ctx, gomock.Any()).Return(nil)

		m.expectJobRecord(t, schema.BatchJobReject, 1, 1, 0)

		result, err := m.engine.Reject(ctx, []string{"obs-1"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Success)
	})
}

func TestEngine_CleanupOldData(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes observations past the cutoff", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		cutoff := testNow.Add(-365 * 24 * time.Hour)
		old := []schema.Observation{{ID: "obs-1"}, {ID: "obs-2"}}

		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().ListObservationsBefore(ctx, cutoff).Return(old, nil)
		m.store.EXPECT().DeleteObservation(ctx, "obs-1").Return(nil)
		m.store.EXPECT().DeleteObservation(ctx, "obs-2").Return(nil)
		m.expectJobRecord(t, schema.BatchJobCleanup, 2, 2, 0)

		result, err := m.engine.CleanupOldData(ctx, 365)
		require.NoError(t, err)
		assert.Equal(t, cutoff, result.CutoffDate)
		assert.Equal(t, 2, result.Observations)
		assert.NotEmpty(t, result.JobID)
	})

	t.Run("one failed deletion does not stop the sweep", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		cutoff := testNow.Add(-30 * 24 * time.Hour)
		old := []schema.Observation{{ID: "obs-1"}, {ID: "obs-2"}, {ID: "obs-3"}}

		m.clock.EXPECT().Now().Return(testNow)
		m.store.EXPECT().ListObservationsBefore(ctx, cutoff).Return(old, nil)
		m.store.EXPECT().DeleteObservation(ctx, "obs-1").Return(nil)
		m.store.EXPECT().DeleteObservation(ctx, "obs-2").Return(errors.New("database error"))
		m.store.EXPECT().DeleteObservation(ctx, "obs-3").Return(nil)
		m.expectJobRecord(t, schema.BatchJobCleanup, 3, 2, 1)

		result, err := m.engine.CleanupOldData(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Observations)
	})

	t.Run("non-positive threshold is invalid", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		_, err := m.engine.CleanupOldData(ctx, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEngine_SyncChain(t *testing.T) {
	m := setupTestEngine(t)
	defer m.ctrl.Finish()

	result, err := m.engine.SyncChain(context.Background(), 19000001, 19000005)
	require.NoError(t, err)
	assert.Equal(t, int64(19000001), result.FromBlock)
	assert.Equal(t, int64(19000005), result.ToBlock)
	assert.Equal(t, 0, result.Synced)
}

func TestEngine_Jobs(t *testing.T) {
	ctx := context.Background()

	t.Run("job status", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().GetBatchJobByID(ctx, "job-1").Return(&schema.BatchJob{ID: "job-1", Total: 5}, nil)

		job, err := m.engine.JobStatus(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, 5, job.Total)
	})

	t.Run("missing job fails with not found", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().GetBatchJobByID(ctx, "ghost").Return(nil, nil)

		_, err := m.engine.JobStatus(ctx, "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("history defaults the limit", func(t *testing.T) {
		m := setupTestEngine(t)
		defer m.ctrl.Finish()

		m.store.EXPECT().ListBatchJobs(ctx, 50).Return([]schema.BatchJob{{ID: "job-1"}}, nil)

		jobs, err := m.engine.JobHistory(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}
