package store

import (
	"context"
	"time"

	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// DebrisFilter restricts debris aggregates by source label and creation time
type DebrisFilter struct {
	Source *string
	Since  *time.Time
}

// ObservationFilter restricts observation aggregates by status and submission time
type ObservationFilter struct {
	Status *domain.ApprovalStatus
	Since  *time.Time
}

// ModerationFilter restricts moderation aggregates by decision, moderator and time
type ModerationFilter struct {
	Approved    *bool
	ModeratorID *string
	Since       *time.Time
}

// Page is a limit/offset pagination window
type Page struct {
	Limit  int
	Offset int
}

// DebrisSearchFilter is the enumerated filter set for debris search
type DebrisSearchFilter struct {
	Query       string
	Source      *string
	MinRisk     *float64
	MaxRisk     *float64
	MinAltitude *float64
	MaxAltitude *float64
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        Page
}

// ObservationSearchFilter is the enumerated filter set for observation search
type ObservationSearchFilter struct {
	Query         string
	Status        *domain.ApprovalStatus
	UserID        *string
	DebrisID      *string
	SubmittedFrom *time.Time
	SubmittedTo   *time.Time
	Page          Page
}

// UserSearchFilter is the enumerated filter set for user search
type UserSearchFilter struct {
	Query string
	Page  Page
}

// RiskBucket is one row of the risk-score histogram
type RiskBucket struct {
	RiskScore float64
	Count     int64
}

// RiskProfileBucket extends the histogram with altitude and spread per bucket
type RiskProfileBucket struct {
	RiskScore   float64
	Count       int64
	AvgAltitude float64
	RiskStdDev  float64
}

// SourceBucket is one row of the per-source debris distribution
type SourceBucket struct {
	Source string
	Count  int64
}

// LeaderboardEntry is one row of the points leaderboard with joined
// observation counts
type LeaderboardEntry struct {
	UserID           string
	Email            *string
	Points           int
	ObservationCount int64
	ApprovedCount    int64
}

// Store defines the interface for database operations.
// Lookup methods return (nil, nil) when the record does not exist; callers
// decide whether absence is an error.
//
//go:generate mockgen -destination=../mocks/store.go -package=mocks github.com/orbitwatch/debris-tracker/internal/store Store
type Store interface {
	// Users

	// CreateUser inserts a new user; duplicate wallet or email is domain.ErrConflict
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUserByID retrieves a user by id
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// GetUserByWallet retrieves a user by wallet address
	GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error)
	// GetUserByEmail retrieves a user by email
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]schema.User, error)
	// UpdateUser persists in-place changes to a user
	UpdateUser(ctx context.Context, user *schema.User) error
	// DeleteUser removes a user by id
	DeleteUser(ctx context.Context, id string) error
	// AddUserPoints atomically increments a user's points and returns the
	// updated row; this is the only mutation path for points
	AddUserPoints(ctx context.Context, id string, delta int) (*schema.User, error)
	// CountUsers counts all users
	CountUsers(ctx context.Context) (int64, error)
	// UserLeaderboard returns the top users by points descending with joined
	// observation counts; since bounds the joined observation timestamps
	UserLeaderboard(ctx context.Context, limit int, since *time.Time) ([]LeaderboardEntry, error)
	// SearchUsers matches email or wallet against the query, ordered by points
	SearchUsers(ctx context.Context, filter UserSearchFilter) ([]schema.User, int64, error)

	// Debris

	// CreateDebris inserts a new debris record; duplicate catalog id is domain.ErrConflict
	CreateDebris(ctx context.Context, d *schema.Debris) error
	// GetDebrisByID retrieves a debris record by id
	GetDebrisByID(ctx context.Context, id string) (*schema.Debris, error)
	// GetDebrisByCatalogID retrieves a debris record by catalog id
	GetDebrisByCatalogID(ctx context.Context, catalogID string) (*schema.Debris, error)
	// ListDebris retrieves all debris records
	ListDebris(ctx context.Context) ([]schema.Debris, error)
	// UpdateDebris persists in-place changes to a debris record
	UpdateDebris(ctx context.Context, d *schema.Debris) error
	// DeleteDebris removes a debris record by id
	DeleteDebris(ctx context.Context, id string) error
	// CountDebris counts debris matching the filter
	CountDebris(ctx context.Context, filter DebrisFilter) (int64, error)
	// AvgDebrisRisk averages risk scores over the filtered set, 0 when empty
	AvgDebrisRisk(ctx context.Context, filter DebrisFilter) (float64, error)
	// DebrisRiskHistogram groups debris counts by exact risk score, ascending
	DebrisRiskHistogram(ctx context.Context, filter DebrisFilter) ([]RiskBucket, error)
	// DebrisRiskProfile groups by risk score descending with average altitude
	// and risk standard deviation per bucket
	DebrisRiskProfile(ctx context.Context) ([]RiskProfileBucket, error)
	// DebrisSourceHistogram groups debris counts by source label
	DebrisSourceHistogram(ctx context.Context, filter DebrisFilter) ([]SourceBucket, error)
	// ListDebrisByMinRisk returns debris with risk score >= minRisk,
	// descending by risk score, capped at limit
	ListDebrisByMinRisk(ctx context.Context, minRisk float64, limit int) ([]schema.Debris, error)
	// CountDebrisInBounds counts debris whose lat/lon fall inside the
	// rectangle, boundary values inclusive
	CountDebrisInBounds(ctx context.Context, bounds domain.Bounds) (int64, error)
	// SearchDebris matches catalog id or source against the query with
	// enumerated filters, ordered by risk score descending
	SearchDebris(ctx context.Context, filter DebrisSearchFilter) ([]schema.Debris, int64, error)

	// Observations

	// CreateObservation inserts a new observation
	CreateObservation(ctx context.Context, o *schema.Observation) error
	// GetObservationByID retrieves an observation by id
	GetObservationByID(ctx context.Context, id string) (*schema.Observation, error)
	// ListObservationsByUser retrieves a user's observations
	ListObservationsByUser(ctx context.Context, userID string) ([]schema.Observation, error)
	// ListObservationsByDebris retrieves observations of a debris object
	ListObservationsByDebris(ctx context.Context, debrisID string) ([]schema.Observation, error)
	// ListObservationsByStatus retrieves the status partition
	ListObservationsByStatus(ctx context.Context, status domain.ApprovalStatus) ([]schema.Observation, error)
	// UpdateObservation persists in-place changes to an observation
	UpdateObservation(ctx context.Context, o *schema.Observation) error
	// DeleteObservation removes an observation by id
	DeleteObservation(ctx context.Context, id string) error
	// CountObservations counts observations matching the filter
	CountObservations(ctx context.Context, filter ObservationFilter) (int64, error)
	// ListObservationsBefore retrieves observations submitted before the cutoff
	ListObservationsBefore(ctx context.Context, cutoff time.Time) ([]schema.Observation, error)
	// SearchObservations matches note text against the query with enumerated
	// filters, ordered by submission time descending
	SearchObservations(ctx context.Context, filter ObservationSearchFilter) ([]schema.Observation, int64, error)

	// Moderations

	// CreateModeration inserts a decision row; a second decision for the same
	// observation is domain.ErrConflict
	CreateModeration(ctx context.Context, m *schema.Moderation) error
	// GetModerationByID retrieves a moderation by id
	GetModerationByID(ctx context.Context, id string) (*schema.Moderation, error)
	// GetModerationByObservation retrieves the decision for an observation
	GetModerationByObservation(ctx context.Context, observationID string) (*schema.Moderation, error)
	// ListModerations retrieves all moderations
	ListModerations(ctx context.Context) ([]schema.Moderation, error)
	// ListModerationsByModerator retrieves a moderator's decisions
	ListModerationsByModerator(ctx context.Context, moderatorID string) ([]schema.Moderation, error)
	// UpdateModeration persists an amendment to an existing decision
	UpdateModeration(ctx context.Context, m *schema.Moderation) error
	// DeleteModeration removes a moderation by id
	DeleteModeration(ctx context.Context, id string) error
	// CountModerations counts moderations matching the filter
	CountModerations(ctx context.Context, filter ModerationFilter) (int64, error)

	// Blockchain logs

	// CreateBlockchainLog appends a confirmation row; duplicate tx hash is
	// domain.ErrConflict
	CreateBlockchainLog(ctx context.Context, l *schema.BlockchainLog) error
	// GetBlockchainLogByID retrieves a log row by id
	GetBlockchainLogByID(ctx context.Context, id string) (*schema.BlockchainLog, error)
	// GetBlockchainLogByTxHash retrieves a log row by transaction hash
	GetBlockchainLogByTxHash(ctx context.Context, txHash string) (*schema.BlockchainLog, error)
	// ListBlockchainLogsByDebris retrieves a debris object's confirmations,
	// newest first
	ListBlockchainLogsByDebris(ctx context.Context, debrisID string) ([]schema.BlockchainLog, error)
	// ListBlockchainLogsByBlock retrieves confirmations at a block number
	ListBlockchainLogsByBlock(ctx context.Context, blockNumber int64) ([]schema.BlockchainLog, error)
	// LatestBlockNumber returns the highest committed block number in the
	// window, 0 when there are no logs
	LatestBlockNumber(ctx context.Context, since *time.Time) (int64, error)
	// CountBlockchainLogs counts log rows in the window
	CountBlockchainLogs(ctx context.Context, since *time.Time) (int64, error)
	// CountLedgerDebris counts distinct debris objects with at least one
	// confirmation
	CountLedgerDebris(ctx context.Context) (int64, error)

	// Batch jobs

	// CreateBatchJob records a finished batch run
	CreateBatchJob(ctx context.Context, job *schema.BatchJob) error
	// GetBatchJobByID retrieves a batch job record
	GetBatchJobByID(ctx context.Context, id string) (*schema.BatchJob, error)
	// ListBatchJobs retrieves the most recent batch jobs, newest first
	ListBatchJobs(ctx context.Context, limit int) ([]schema.BatchJob, error)
}
