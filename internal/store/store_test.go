package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestUser creates a user row with a unique wallet address
func buildTestUser(wallet string, email *string, points int, joinedAt time.Time) *schema.User {
	return &schema.User{
		ID:            uuid.NewString(),
		WalletAddress: wallet,
		Email:         email,
		Role:          domain.RoleUser,
		Points:        points,
		JoinedAt:      joinedAt,
	}
}

// buildTestDebris creates a debris row with the given catalog designation
func buildTestDebris(catalogID, source string, riskScore, lat, lon, alt float64) *schema.Debris {
	now := time.Now().UTC()
	return &schema.Debris{
		ID:        uuid.NewString(),
		CatalogID: catalogID,
		Source:    source,
		Epoch:     now,
		TLELine1:  "1 25544U 98067A   24015.50000000  .00000000  00000-0  00000+0 0  9990",
		TLELine2:  "2 25544  51.6400 123.4567 0001234   0.0000   0.0000 15.12345678901234",
		Lat:       lat,
		Lon:       lon,
		Alt:       alt,
		RiskScore: riskScore,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// buildTestObservation creates an observation row in the given status
func buildTestObservation(userID, debrisID string, status domain.ApprovalStatus, submittedAt time.Time) *schema.Observation {
	note := "test sighting"
	return &schema.Observation{
		ID:          uuid.NewString(),
		UserID:      userID,
		DebrisID:    debrisID,
		Note:        &note,
		LocationLat: 51.5,
		LocationLon: 123.4,
		LocationAlt: 400.0,
		Status:      status,
		SubmittedAt: submittedAt,
		UpdatedAt:   submittedAt,
	}
}

// buildTestModeration creates a decision row for an observation
func buildTestModeration(observationID, moderatorID string, approved bool, decidedAt time.Time) *schema.Moderation {
	return &schema.Moderation{
		ID:            uuid.NewString(),
		ObservationID: observationID,
		ModeratorID:   moderatorID,
		Approved:      approved,
		DecidedAt:     decidedAt,
	}
}

// buildTestLog creates a blockchain confirmation row
func buildTestLog(debrisID, txHash string, blockNumber int64, committedAt time.Time) *schema.BlockchainLog {
	return &schema.BlockchainLog{
		ID:          uuid.NewString(),
		DebrisID:    debrisID,
		TxHash:      txHash,
		BlockNumber: blockNumber,
		CommittedAt: committedAt,
	}
}

// seedUserAndDebris inserts one user and one debris object for tests that
// need valid references
func seedUserAndDebris(t *testing.T, store Store) (*schema.User, *schema.Debris) {
	ctx := context.Background()
	user := buildTestUser("0x1111111111111111111111111111111111111111", nil, 0, time.Now().UTC())
	require.NoError(t, store.CreateUser(ctx, user))

	debris := buildTestDebris("90001", "NORAD", 5.0, 51.0, 120.0, 400.0)
	require.NoError(t, store.CreateDebris(ctx, debris))
	return user, debris
}

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// Test: Users
// =============================================================================

func testUserCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	email := "observer@example.com"
	user := buildTestUser("0xaaaa111111111111111111111111111111111111", &email, 10, time.Now().UTC())
	require.NoError(t, store.CreateUser(ctx, user))

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.WalletAddress, got.WalletAddress)
		assert.Equal(t, email, *got.Email)
		assert.Equal(t, 10, got.Points)
	})

	t.Run("get by wallet", func(t *testing.T) {
		got, err := store.GetUserByWallet(ctx, user.WalletAddress)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("missing user is nil, not error", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update in place", func(t *testing.T) {
		user.Role = domain.RoleModerator
		require.NoError(t, store.UpdateUser(ctx, user))

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleModerator, got.Role)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteUser(ctx, user.ID))

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testUserUniqueness(t *testing.T, store Store) {
	ctx := context.Background()

	email := "taken@example.com"
	first := buildTestUser("0xbbbb111111111111111111111111111111111111", &email, 0, time.Now().UTC())
	require.NoError(t, store.CreateUser(ctx, first))

	t.Run("duplicate wallet is a conflict", func(t *testing.T) {
		dup := buildTestUser(first.WalletAddress, nil, 0, time.Now().UTC())
		err := store.CreateUser(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := buildTestUser("0xcccc111111111111111111111111111111111111", &email, 0, time.Now().UTC())
		err := store.CreateUser(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func testAddUserPoints(t *testing.T, store Store) {
	ctx := context.Background()

	user := buildTestUser("0xdddd111111111111111111111111111111111111", nil, 100, time.Now().UTC())
	require.NoError(t, store.CreateUser(ctx, user))

	t.Run("increments atomically", func(t *testing.T) {
		got, err := store.AddUserPoints(ctx, user.ID, 25)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 125, got.Points)

		got, err = store.AddUserPoints(ctx, user.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 130, got.Points)
	})

	t.Run("missing user is nil", func(t *testing.T) {
		got, err := store.AddUserPoints(ctx, uuid.NewString(), 10)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testUserLeaderboard(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	admin := buildTestUser("0x1000000000000000000000000000000000000001", strPtr("a@example.com"), 1000, base)
	moderator := buildTestUser("0x1000000000000000000000000000000000000002", strPtr("b@example.com"), 500, base.Add(time.Hour))
	observer := buildTestUser("0x1000000000000000000000000000000000000003", strPtr("c@example.com"), 200, base.Add(2*time.Hour))
	for _, u := range []*schema.User{admin, moderator, observer} {
		require.NoError(t, store.CreateUser(ctx, u))
	}

	debris := buildTestDebris("90100", "NORAD", 5.0, 51.0, 120.0, 400.0)
	require.NoError(t, store.CreateDebris(ctx, debris))

	// Observer has one old approved observation and one recent pending one
	old := buildTestObservation(observer.ID, debris.ID, domain.StatusApproved, base.Add(-60*24*time.Hour))
	recent := buildTestObservation(observer.ID, debris.ID, domain.StatusPending, base.Add(3*time.Hour))
	require.NoError(t, store.CreateObservation(ctx, old))
	require.NoError(t, store.CreateObservation(ctx, recent))

	t.Run("orders by points descending", func(t *testing.T) {
		entries, err := store.UserLeaderboard(ctx, 10, nil)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, []int{1000, 500, 200}, []int{entries[0].Points, entries[1].Points, entries[2].Points})
		assert.Equal(t, admin.ID, entries[0].UserID)

		// observer owns both observations, one approved
		assert.Equal(t, int64(2), entries[2].ObservationCount)
		assert.Equal(t, int64(1), entries[2].ApprovedCount)
	})

	t.Run("since bounds the joined observations, not the users", func(t *testing.T) {
		since := base.Add(-time.Hour)
		entries, err := store.UserLeaderboard(ctx, 10, &since)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		// the old approved observation falls outside the window
		assert.Equal(t, int64(1), entries[2].ObservationCount)
		assert.Equal(t, int64(0), entries[2].ApprovedCount)
	})

	t.Run("respects the limit", func(t *testing.T) {
		entries, err := store.UserLeaderboard(ctx, 2, nil)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func testSearchUsers(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	alice := buildTestUser("0x2000000000000000000000000000000000000001", strPtr("alice@example.com"), 300, now)
	bob := buildTestUser("0x2000000000000000000000000000000000000002", strPtr("bob@example.com"), 100, now)
	require.NoError(t, store.CreateUser(ctx, alice))
	require.NoError(t, store.CreateUser(ctx, bob))

	t.Run("matches email substring", func(t *testing.T) {
		users, total, err := store.SearchUsers(ctx, UserSearchFilter{
			Query: "alice",
			Page:  Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, alice.ID, users[0].ID)
	})

	t.Run("matches wallet substring case-insensitively", func(t *testing.T) {
		users, total, err := store.SearchUsers(ctx, UserSearchFilter{
			Query: "0X2000",
			Page:  Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		// ordered by points descending
		require.Len(t, users, 2)
		assert.Equal(t, alice.ID, users[0].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		users, total, err := store.SearchUsers(ctx, UserSearchFilter{
			Query: "0x2000",
			Page:  Page{Limit: 1, Offset: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, users, 1)
		assert.Equal(t, bob.ID, users[0].ID)
	})
}

// =============================================================================
// Test: Debris
// =============================================================================

func testDebrisCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	debris := buildTestDebris("25544", "NORAD", 8.5, 51.64, 123.4567, 400.5)
	require.NoError(t, store.CreateDebris(ctx, debris))

	t.Run("get by id and catalog id", func(t *testing.T) {
		got, err := store.GetDebrisByID(ctx, debris.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "25544", got.CatalogID)

		got, err = store.GetDebrisByCatalogID(ctx, "25544")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, debris.ID, got.ID)
		assert.InDelta(t, 8.5, got.RiskScore, 0.001)
	})

	t.Run("duplicate catalog id is a conflict", func(t *testing.T) {
		dup := buildTestDebris("25544", "ESA", 2.0, 0, 0, 100)
		err := store.CreateDebris(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("update in place", func(t *testing.T) {
		debris.RiskScore = 9.1
		require.NoError(t, store.UpdateDebris(ctx, debris))

		got, err := store.GetDebrisByID(ctx, debris.ID)
		require.NoError(t, err)
		assert.InDelta(t, 9.1, got.RiskScore, 0.001)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteDebris(ctx, debris.ID))

		got, err := store.GetDebrisByID(ctx, debris.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testDebrisAggregates(t *testing.T, store Store) {
	ctx := context.Background()

	// Fixed risk distribution: 4.1, 6.2, 8.5, 8.5, 9.8
	fixtures := []struct {
		catalogID string
		source    string
		risk      float64
		alt       float64
	}{
		{"30001", "NORAD", 4.1, 400},
		{"30002", "ESA", 6.2, 500},
		{"30003", "NORAD", 8.5, 600},
		{"30004", "JAXA", 8.5, 650},
		{"30005", "NORAD", 9.8, 700},
	}
	for _, f := range fixtures {
		require.NoError(t, store.CreateDebris(ctx, buildTestDebris(f.catalogID, f.source, f.risk, 51.0, 120.0, f.alt)))
	}

	t.Run("count with source filter", func(t *testing.T) {
		total, err := store.CountDebris(ctx, DebrisFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)

		norad := "NORAD"
		count, err := store.CountDebris(ctx, DebrisFilter{Source: &norad})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("average risk", func(t *testing.T) {
		avg, err := store.AvgDebrisRisk(ctx, DebrisFilter{})
		require.NoError(t, err)
		assert.InDelta(t, 7.42, avg, 0.001)
	})

	t.Run("average risk over empty set is zero", func(t *testing.T) {
		source := "no-such-source"
		avg, err := store.AvgDebrisRisk(ctx, DebrisFilter{Source: &source})
		require.NoError(t, err)
		assert.Equal(t, float64(0), avg)
	})

	t.Run("risk histogram groups by exact score ascending", func(t *testing.T) {
		buckets, err := store.DebrisRiskHistogram(ctx, DebrisFilter{})
		require.NoError(t, err)
		require.Len(t, buckets, 4)
		assert.InDelta(t, 4.1, buckets[0].RiskScore, 0.001)
		assert.Equal(t, int64(1), buckets[0].Count)
		assert.InDelta(t, 8.5, buckets[2].RiskScore, 0.001)
		assert.Equal(t, int64(2), buckets[2].Count)
		assert.InDelta(t, 9.8, buckets[3].RiskScore, 0.001)
	})

	t.Run("source histogram counts descending", func(t *testing.T) {
		buckets, err := store.DebrisSourceHistogram(ctx, DebrisFilter{})
		require.NoError(t, err)
		require.Len(t, buckets, 3)
		assert.Equal(t, "NORAD", buckets[0].Source)
		assert.Equal(t, int64(3), buckets[0].Count)
	})

	t.Run("risk profile descends with per-bucket altitude", func(t *testing.T) {
		buckets, err := store.DebrisRiskProfile(ctx)
		require.NoError(t, err)
		require.Len(t, buckets, 4)
		assert.InDelta(t, 9.8, buckets[0].RiskScore, 0.001)
		assert.InDelta(t, 625, buckets[1].AvgAltitude, 0.001) // the two 8.5 entries
	})

	t.Run("list by minimum risk", func(t *testing.T) {
		debris, err := store.ListDebrisByMinRisk(ctx, 8.0, 10)
		require.NoError(t, err)
		require.Len(t, debris, 3)
		assert.InDelta(t, 9.8, debris[0].RiskScore, 0.001)

		capped, err := store.ListDebrisByMinRisk(ctx, 8.0, 2)
		require.NoError(t, err)
		assert.Len(t, capped, 2)
	})
}

func testDebrisBounds(t *testing.T, store Store) {
	ctx := context.Background()

	inside := buildTestDebris("31001", "NORAD", 5.0, 55.0, 128.0, 400)
	onEdge := buildTestDebris("31002", "NORAD", 5.0, 50.0, 120.0, 400)
	outside := buildTestDebris("31003", "NORAD", 5.0, 70.0, 140.0, 400)
	for _, d := range []*schema.Debris{inside, onEdge, outside} {
		require.NoError(t, store.CreateDebris(ctx, d))
	}

	bounds, err := domain.ParseBounds("50,120,60,135")
	require.NoError(t, err)

	// boundary values are inclusive
	count, err := store.CountDebrisInBounds(ctx, bounds)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func testSearchDebris(t *testing.T, store Store) {
	ctx := context.Background()

	high := buildTestDebris("32001", "NORAD", 9.0, 51.0, 120.0, 600)
	mid := buildTestDebris("32002", "NORAD", 6.0, 51.0, 120.0, 450)
	low := buildTestDebris("32003", "ESA", 3.0, 51.0, 120.0, 300)
	for _, d := range []*schema.Debris{high, mid, low} {
		require.NoError(t, store.CreateDebris(ctx, d))
	}

	t.Run("matches catalog id substring", func(t *testing.T) {
		debris, total, err := store.SearchDebris(ctx, DebrisSearchFilter{
			Query: "3200",
			Page:  Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		// ordered by risk score descending
		require.Len(t, debris, 3)
		assert.Equal(t, high.ID, debris[0].ID)
	})

	t.Run("risk and altitude range filters combine", func(t *testing.T) {
		minRisk := 5.0
		maxAlt := 500.0
		debris, total, err := store.SearchDebris(ctx, DebrisSearchFilter{
			Query:       "3200",
			MinRisk:     &minRisk,
			MaxAltitude: &maxAlt,
			Page:        Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, debris, 1)
		assert.Equal(t, mid.ID, debris[0].ID)
	})

	t.Run("source filter", func(t *testing.T) {
		source := "ESA"
		_, total, err := store.SearchDebris(ctx, DebrisSearchFilter{
			Source: &source,
			Page:   Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

// =============================================================================
// Test: Observations
// =============================================================================

func testObservationCRUD(t *testing.T, store Store) {
	ctx := context.Background()
	user, debris := seedUserAndDebris(t, store)

	observation := buildTestObservation(user.ID, debris.ID, domain.StatusPending, time.Now().UTC())
	require.NoError(t, store.CreateObservation(ctx, observation))

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetObservationByID(ctx, observation.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Equal(t, user.ID, got.UserID)
	})

	t.Run("status partitions", func(t *testing.T) {
		pending, err := store.ListObservationsByStatus(ctx, domain.StatusPending)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		approved, err := store.ListObservationsByStatus(ctx, domain.StatusApproved)
		require.NoError(t, err)
		assert.Empty(t, approved)
	})

	t.Run("status transition moves the partition", func(t *testing.T) {
		observation.Status = domain.StatusApproved
		require.NoError(t, store.UpdateObservation(ctx, observation))

		approved, err := store.ListObservationsByStatus(ctx, domain.StatusApproved)
		require.NoError(t, err)
		assert.Len(t, approved, 1)

		pending, err := store.ListObservationsByStatus(ctx, domain.StatusPending)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("lists by user and debris newest first", func(t *testing.T) {
		older := buildTestObservation(user.ID, debris.ID, domain.StatusPending, time.Now().UTC().Add(-time.Hour))
		require.NoError(t, store.CreateObservation(ctx, older))

		byUser, err := store.ListObservationsByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, byUser, 2)
		assert.Equal(t, observation.ID, byUser[0].ID)

		byDebris, err := store.ListObservationsByDebris(ctx, debris.ID)
		require.NoError(t, err)
		assert.Len(t, byDebris, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteObservation(ctx, observation.ID))

		got, err := store.GetObservationByID(ctx, observation.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testObservationsBeforeCutoff(t *testing.T, store Store) {
	ctx := context.Background()
	user, debris := seedUserAndDebris(t, store)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ancient := buildTestObservation(user.ID, debris.ID, domain.StatusRejected, now.Add(-400*24*time.Hour))
	old := buildTestObservation(user.ID, debris.ID, domain.StatusApproved, now.Add(-366*24*time.Hour))
	recent := buildTestObservation(user.ID, debris.ID, domain.StatusPending, now.Add(-24*time.Hour))
	for _, o := range []*schema.Observation{ancient, old, recent} {
		require.NoError(t, store.CreateObservation(ctx, o))
	}

	cutoff := now.Add(-365 * 24 * time.Hour)
	expired, err := store.ListObservationsBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	// oldest first
	assert.Equal(t, ancient.ID, expired[0].ID)
	assert.Equal(t, old.ID, expired[1].ID)
}

func testSearchObservations(t *testing.T, store Store) {
	ctx := context.Background()
	user, debris := seedUserAndDebris(t, store)
	now := time.Now().UTC()

	flare := buildTestObservation(user.ID, debris.ID, domain.StatusApproved, now)
	flare.Note = strPtr("Bright flare observed during transit")
	tumble := buildTestObservation(user.ID, debris.ID, domain.StatusPending, now.Add(-time.Hour))
	tumble.Note = strPtr("Tumbling object, period roughly 4 seconds")
	silent := buildTestObservation(user.ID, debris.ID, domain.StatusPending, now.Add(-2*time.Hour))
	silent.Note = nil
	for _, o := range []*schema.Observation{flare, tumble, silent} {
		require.NoError(t, store.CreateObservation(ctx, o))
	}

	t.Run("matches note substring", func(t *testing.T) {
		observations, total, err := store.SearchObservations(ctx, ObservationSearchFilter{
			Query: "flare",
			Page:  Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, observations, 1)
		assert.Equal(t, flare.ID, observations[0].ID)
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		pending := domain.StatusPending
		observations, total, err := store.SearchObservations(ctx, ObservationSearchFilter{
			Status: &pending,
			Page:   Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		// newest first
		require.Len(t, observations, 2)
		assert.Equal(t, tumble.ID, observations[0].ID)
	})

	t.Run("user and debris filters", func(t *testing.T) {
		_, total, err := store.SearchObservations(ctx, ObservationSearchFilter{
			UserID:   &user.ID,
			DebrisID: &debris.ID,
			Page:     Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)

		other := uuid.NewString()
		_, total, err = store.SearchObservations(ctx, ObservationSearchFilter{
			UserID: &other,
			Page:   Page{Limit: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

// =============================================================================
// Test: Moderations
// =============================================================================

func testModerations(t *testing.T, store Store) {
	ctx := context.Background()
	user, debris := seedUserAndDebris(t, store)
	now := time.Now().UTC()

	observation := buildTestObservation(user.ID, debris.ID, domain.StatusPending, now)
	require.NoError(t, store.CreateObservation(ctx, observation))

	decision := buildTestModeration(observation.ID, user.ID, true, now)
	require.NoError(t, store.CreateModeration(ctx, decision))

	t.Run("one decision per observation", func(t *testing.T) {
		second := buildTestModeration(observation.ID, user.ID, false, now)
		err := store.CreateModeration(ctx, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("get by observation", func(t *testing.T) {
		got, err := store.GetModerationByObservation(ctx, observation.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, decision.ID, got.ID)
		assert.True(t, got.Approved)
	})

	t.Run("amend in place", func(t *testing.T) {
		decision.Approved = false
		require.NoError(t, store.UpdateModeration(ctx, decision))

		got, err := store.GetModerationByID(ctx, decision.ID)
		require.NoError(t, err)
		assert.False(t, got.Approved)
	})

	t.Run("count filters", func(t *testing.T) {
		total, err := store.CountModerations(ctx, ModerationFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		approved := true
		count, err := store.CountModerations(ctx, ModerationFilter{Approved: &approved})
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		count, err = store.CountModerations(ctx, ModerationFilter{ModeratorID: &user.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("list by moderator", func(t *testing.T) {
		moderations, err := store.ListModerationsByModerator(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, moderations, 1)
	})
}

// =============================================================================
// Test: Blockchain logs
// =============================================================================

func testBlockchainLogs(t *testing.T, store Store) {
	ctx := context.Background()
	_, debris := seedUserAndDebris(t, store)
	now := time.Now().UTC()

	t.Run("latest block of empty ledger is zero", func(t *testing.T) {
		latest, err := store.LatestBlockNumber(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), latest)
	})

	first := buildTestLog(debris.ID, "0xtx1", 19000001, now.Add(-2*time.Hour))
	second := buildTestLog(debris.ID, "0xtx2", 19000005, now)
	require.NoError(t, store.CreateBlockchainLog(ctx, first))
	require.NoError(t, store.CreateBlockchainLog(ctx, second))

	t.Run("duplicate tx hash is a conflict", func(t *testing.T) {
		dup := buildTestLog(debris.ID, "0xtx1", 19000009, now)
		err := store.CreateBlockchainLog(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("get by tx hash", func(t *testing.T) {
		got, err := store.GetBlockchainLogByTxHash(ctx, "0xtx2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, second.ID, got.ID)
		assert.Equal(t, int64(19000005), got.BlockNumber)
	})

	t.Run("lists by debris newest first", func(t *testing.T) {
		logs, err := store.ListBlockchainLogsByDebris(ctx, debris.ID)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, second.ID, logs[0].ID)
	})

	t.Run("lists by block number", func(t *testing.T) {
		logs, err := store.ListBlockchainLogsByBlock(ctx, 19000001)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, first.ID, logs[0].ID)
	})

	t.Run("latest block and counts honor the window", func(t *testing.T) {
		latest, err := store.LatestBlockNumber(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(19000005), latest)

		count, err := store.CountBlockchainLogs(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		since := now.Add(-time.Hour)
		count, err = store.CountBlockchainLogs(ctx, &since)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("distinct anchored debris", func(t *testing.T) {
		count, err := store.CountLedgerDebris(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

// =============================================================================
// Test: Batch jobs
// =============================================================================

func testBatchJobs(t *testing.T, store Store) {
	ctx := context.Background()

	jobs := make([]*schema.BatchJob, 3)
	for i := range jobs {
		jobs[i] = &schema.BatchJob{
			ID:        ulid.Make().String(),
			Kind:      schema.BatchJobImportDebris,
			Total:     10,
			Success:   10 - i,
			Failed:    i,
			Errors:    datatypes.JSON([]byte("[]")),
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.CreateBatchJob(ctx, jobs[i]))
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetBatchJobByID(ctx, jobs[1].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 9, got.Success)
		assert.Equal(t, 1, got.Failed)
	})

	t.Run("missing job is nil", func(t *testing.T) {
		got, err := store.GetBatchJobByID(ctx, fmt.Sprintf("no-such-%s", ulid.Make()))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lists newest first with limit", func(t *testing.T) {
		listed, err := store.ListBatchJobs(ctx, 2)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, jobs[2].ID, listed[0].ID)
	})
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UserCRUD", testUserCRUD},
		{"UserUniqueness", testUserUniqueness},
		{"AddUserPoints", testAddUserPoints},
		{"UserLeaderboard", testUserLeaderboard},
		{"SearchUsers", testSearchUsers},
		{"DebrisCRUD", testDebrisCRUD},
		{"DebrisAggregates", testDebrisAggregates},
		{"DebrisBounds", testDebrisBounds},
		{"SearchDebris", testSearchDebris},
		{"ObservationCRUD", testObservationCRUD},
		{"ObservationsBeforeCutoff", testObservationsBeforeCutoff},
		{"SearchObservations", testSearchObservations},
		{"Moderations", testModerations},
		{"BlockchainLogs", testBlockchainLogs},
		{"BatchJobs", testBatchJobs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
