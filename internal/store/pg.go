package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance. The connection must be
// opened with TranslateError enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey and can be mapped to domain.ErrConflict.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Migrate creates or updates the database schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.User{},
		&schema.Debris{},
		&schema.Observation{},
		&schema.Moderation{},
		&schema.BlockchainLog{},
		&schema.BatchJob{},
	)
}

// saveErr maps storage failures on write paths to domain errors
func saveErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: duplicate %s", domain.ErrConflict, entity)
	}
	return fmt.Errorf("failed to save %s: %w", entity, err)
}

// Users

func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	return saveErr(s.db.WithContext(ctx).Create(user).Error, "user")
}

func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *pgStore) GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (s *pgStore) ListUsers(ctx context.Context) ([]schema.User, error) {
	var users []schema.User
	if err := s.db.WithContext(ctx).Order("joined_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *pgStore) UpdateUser(ctx context.Context, user *schema.User) error {
	return saveErr(s.db.WithContext(ctx).Save(user).Error, "user")
}

func (s *pgStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *pgStore) AddUserPoints(ctx context.Context, id string, delta int) (*schema.User, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to add points: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetUserByID(ctx, id)
}

func (s *pgStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (s *pgStore) UserLeaderboard(ctx context.Context, limit int, since *time.Time) ([]LeaderboardEntry, error) {
	join := "LEFT JOIN observations ON observations.user_id = users.id"
	args := []interface{}{}
	if since != nil {
		join += " AND observations.submitted_at >= ?"
		args = append(args, *since)
	}

	var entries []LeaderboardEntry
	err := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Select(`users.id AS user_id,
			users.email AS email,
			users.points AS points,
			COUNT(observations.id) AS observation_count,
			COUNT(CASE WHEN observations.status = 'approved' THEN 1 END) AS approved_count`).
		Joins(join, args...).
		Group("users.id, users.email, users.points, users.joined_at").
		Order("users.points DESC, users.joined_at ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}
	return entries, nil
}

func (s *pgStore) SearchUsers(ctx context.Context, filter UserSearchFilter) ([]schema.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.User{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("email ILIKE ? OR wallet_address ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user search: %w", err)
	}

	var users []schema.User
	err := query.Order("points DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}
	return users, total, nil
}

// Debris

// debrisScope applies the shared source/timeframe restrictions
func debrisScope(filter DebrisFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Source != nil {
			db = db.Where("source = ?", *filter.Source)
		}
		if filter.Since != nil {
			db = db.Where("created_at >= ?", *filter.Since)
		}
		return db
	}
}

func (s *pgStore) CreateDebris(ctx context.Context, d *schema.Debris) error {
	return saveErr(s.db.WithContext(ctx).Create(d).Error, "debris")
}

func (s *pgStore) GetDebrisByID(ctx context.Context, id string) (*schema.Debris, error) {
	var d schema.Debris
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get debris: %w", err)
	}
	return &d, nil
}

func (s *pgStore) GetDebrisByCatalogID(ctx context.Context, catalogID string) (*schema.Debris, error) {
	var d schema.Debris
	err := s.db.WithContext(ctx).Where("catalog_id = ?", catalogID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get debris by catalog id: %w", err)
	}
	return &d, nil
}

func (s *pgStore) ListDebris(ctx context.Context) ([]schema.Debris, error) {
	var debris []schema.Debris
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&debris).Error; err != nil {
		return nil, fmt.Errorf("failed to list debris: %w", err)
	}
	return debris, nil
}

func (s *pgStore) UpdateDebris(ctx context.Context, d *schema.Debris) error {
	return saveErr(s.db.WithContext(ctx).Save(d).Error, "debris")
}

func (s *pgStore) DeleteDebris(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Debris{}).Error; err != nil {
		return fmt.Errorf("failed to delete debris: %w", err)
	}
	return nil
}

func (s *pgStore) CountDebris(ctx context.Context, filter DebrisFilter) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Scopes(debrisScope(filter)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count debris: %w", err)
	}
	return count, nil
}

func (s *pgStore) AvgDebrisRisk(ctx context.Context, filter DebrisFilter) (float64, error) {
	var avg float64
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Scopes(debrisScope(filter)).
		Select("COALESCE(AVG(risk_score), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average risk score: %w", err)
	}
	return avg, nil
}

func (s *pgStore) DebrisRiskHistogram(ctx context.Context, filter DebrisFilter) ([]RiskBucket, error) {
	var buckets []RiskBucket
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Scopes(debrisScope(filter)).
		Select("risk_score, COUNT(*) AS count").
		Group("risk_score").
		Order("risk_score ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build risk histogram: %w", err)
	}
	return buckets, nil
}

func (s *pgStore) DebrisRiskProfile(ctx context.Context) ([]RiskProfileBucket, error) {
	var buckets []RiskProfileBucket
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Select(`risk_score,
			COUNT(*) AS count,
			COALESCE(AVG(alt), 0) AS avg_altitude,
			COALESCE(STDDEV(risk_score), 0) AS risk_std_dev`).
		Group("risk_score").
		Order("risk_score DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build risk profile: %w", err)
	}
	return buckets, nil
}

func (s *pgStore) DebrisSourceHistogram(ctx context.Context, filter DebrisFilter) ([]SourceBucket, error) {
	var buckets []SourceBucket
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Scopes(debrisScope(filter)).
		Select("source, COUNT(*) AS count").
		Group("source").
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build source histogram: %w", err)
	}
	return buckets, nil
}

func (s *pgStore) ListDebrisByMinRisk(ctx context.Context, minRisk float64, limit int) ([]schema.Debris, error) {
	var debris []schema.Debris
	err := s.db.WithContext(ctx).
		Where("risk_score >= ?", minRisk).
		Order("risk_score DESC").
		Limit(limit).
		Find(&debris).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list debris by risk: %w", err)
	}
	return debris, nil
}

func (s *pgStore) CountDebrisInBounds(ctx context.Context, bounds domain.Bounds) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Debris{}).
		Where("lat BETWEEN ? AND ?", bounds.Lat1, bounds.Lat2).
		Where("lon BETWEEN ? AND ?", bounds.Lng1, bounds.Lng2).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count debris in bounds: %w", err)
	}
	return count, nil
}

func (s *pgStore) SearchDebris(ctx context.Context, filter DebrisSearchFilter) ([]schema.Debris, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Debris{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("catalog_id ILIKE ? OR source ILIKE ?", pattern, pattern)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}
	if filter.MinRisk != nil {
		query = query.Where("risk_score >= ?", *filter.MinRisk)
	}
	if filter.MaxRisk != nil {
		query = query.Where("risk_score <= ?", *filter.MaxRisk)
	}
	if filter.MinAltitude != nil {
		query = query.Where("alt >= ?", *filter.MinAltitude)
	}
	if filter.MaxAltitude != nil {
		query = query.Where("alt <= ?", *filter.MaxAltitude)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count debris search: %w", err)
	}

	var debris []schema.Debris
	err := query.Order("risk_score DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&debris).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search debris: %w", err)
	}
	return debris, total, nil
}

// Observations

func (s *pgStore) CreateObservation(ctx context.Context, o *schema.Observation) error {
	return saveErr(s.db.WithContext(ctx).Create(o).Error, "observation")
}

func (s *pgStore) GetObservationByID(ctx context.Context, id string) (*schema.Observation, error) {
	var o schema.Observation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}
	return &o, nil
}

func (s *pgStore) ListObservationsByUser(ctx context.Context, userID string) ([]schema.Observation, error) {
	var observations []schema.Observation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations by user: %w", err)
	}
	return observations, nil
}

func (s *pgStore) ListObservationsByDebris(ctx context.Context, debrisID string) ([]schema.Observation, error) {
	var observations []schema.Observation
	err := s.db.WithContext(ctx).
		Where("debris_id = ?", debrisID).
		Order("submitted_at DESC").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations by debris: %w", err)
	}
	return observations, nil
}

func (s *pgStore) ListObservationsByStatus(ctx context.Context, status domain.ApprovalStatus) ([]schema.Observation, error) {
	var observations []schema.Observation
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("submitted_at DESC").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations by status: %w", err)
	}
	return observations, nil
}

func (s *pgStore) UpdateObservation(ctx context.Context, o *schema.Observation) error {
	return saveErr(s.db.WithContext(ctx).Save(o).Error, "observation")
}

func (s *pgStore) DeleteObservation(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Observation{}).Error; err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}
	return nil
}

func (s *pgStore) CountObservations(ctx context.Context, filter ObservationFilter) (int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Observation{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Since != nil {
		query = query.Where("submitted_at >= ?", *filter.Since)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return count, nil
}

func (s *pgStore) ListObservationsBefore(ctx context.Context, cutoff time.Time) ([]schema.Observation, error) {
	var observations []schema.Observation
	err := s.db.WithContext(ctx).
		Where("submitted_at < ?", cutoff).
		Order("submitted_at ASC").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations before cutoff: %w", err)
	}
	return observations, nil
}

func (s *pgStore) SearchObservations(ctx context.Context, filter ObservationSearchFilter) ([]schema.Observation, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Observation{})
	if filter.Query != "" {
		query = query.Where("note ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.DebrisID != nil {
		query = query.Where("debris_id = ?", *filter.DebrisID)
	}
	if filter.SubmittedFrom != nil {
		query = query.Where("submitted_at >= ?", *filter.SubmittedFrom)
	}
	if filter.SubmittedTo != nil {
		query = query.Where("submitted_at <= ?", *filter.SubmittedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count observation search: %w", err)
	}

	var observations []schema.Observation
	err := query.Order("submitted_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&observations).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search observations: %w", err)
	}
	return observations, total, nil
}

// Moderations

func (s *pgStore) CreateModeration(ctx context.Context, m *schema.Moderation) error {
	return saveErr(s.db.WithContext(ctx).Create(m).Error, "moderation")
}

func (s *pgStore) GetModerationByID(ctx context.Context, id string) (*schema.Moderation, error) {
	var m schema.Moderation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get moderation: %w", err)
	}
	return &m, nil
}

func (s *pgStore) GetModerationByObservation(ctx context.Context, observationID string) (*schema.Moderation, error) {
	var m schema.Moderation
	err := s.db.WithContext(ctx).Where("observation_id = ?", observationID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get moderation by observation: %w", err)
	}
	return &m, nil
}

func (s *pgStore) ListModerations(ctx context.Context) ([]schema.Moderation, error) {
	var moderations []schema.Moderation
	if err := s.db.WithContext(ctx).Order("decided_at DESC").Find(&moderations).Error; err != nil {
		return nil, fmt.Errorf("failed to list moderations: %w", err)
	}
	return moderations, nil
}

func (s *pgStore) ListModerationsByModerator(ctx context.Context, moderatorID string) ([]schema.Moderation, error) {
	var moderations []schema.Moderation
	err := s.db.WithContext(ctx).
		Where("moderator_id = ?", moderatorID).
		Order("decided_at DESC").
		Find(&moderations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list moderations by moderator: %w", err)
	}
	return moderations, nil
}

func (s *pgStore) UpdateModeration(ctx context.Context, m *schema.Moderation) error {
	return saveErr(s.db.WithContext(ctx).Save(m).Error, "moderation")
}

func (s *pgStore) DeleteModeration(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Moderation{}).Error; err != nil {
		return fmt.Errorf("failed to delete moderation: %w", err)
	}
	return nil
}

func (s *pgStore) CountModerations(ctx context.Context, filter ModerationFilter) (int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Moderation{})
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}
	if filter.ModeratorID != nil {
		query = query.Where("moderator_id = ?", *filter.ModeratorID)
	}
	if filter.Since != nil {
		query = query.Where("decided_at >= ?", *filter.Since)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count moderations: %w", err)
	}
	return count, nil
}

// Blockchain logs

func (s *pgStore) CreateBlockchainLog(ctx context.Context, l *schema.BlockchainLog) error {
	return saveErr(s.db.WithContext(ctx).Create(l).Error, "blockchain log")
}

func (s *pgStore) GetBlockchainLogByID(ctx context.Context, id string) (*schema.BlockchainLog, error) {
	var l schema.BlockchainLog
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blockchain log: %w", err)
	}
	return &l, nil
}

func (s *pgStore) GetBlockchainLogByTxHash(ctx context.Context, txHash string) (*schema.BlockchainLog, error) {
	var l schema.BlockchainLog
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blockchain log by tx hash: %w", err)
	}
	return &l, nil
}

func (s *pgStore) ListBlockchainLogsByDebris(ctx context.Context, debrisID string) ([]schema.BlockchainLog, error) {
	var logs []schema.BlockchainLog
	err := s.db.WithContext(ctx).
		Where("debris_id = ?", debrisID).
		Order("committed_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blockchain logs by debris: %w", err)
	}
	return logs, nil
}

func (s *pgStore) ListBlockchainLogsByBlock(ctx context.Context, blockNumber int64) ([]schema.BlockchainLog, error) {
	var logs []schema.BlockchainLog
	err := s.db.WithContext(ctx).
		Where("block_number = ?", blockNumber).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blockchain logs by block: %w", err)
	}
	return logs, nil
}

func (s *pgStore) LatestBlockNumber(ctx context.Context, since *time.Time) (int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.BlockchainLog{})
	if since != nil {
		query = query.Where("committed_at >= ?", *since)
	}

	var latest int64
	err := query.Select("COALESCE(MAX(block_number), 0)").Scan(&latest).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	return latest, nil
}

func (s *pgStore) CountBlockchainLogs(ctx context.Context, since *time.Time) (int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.BlockchainLog{})
	if since != nil {
		query = query.Where("committed_at >= ?", *since)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blockchain logs: %w", err)
	}
	return count, nil
}

func (s *pgStore) CountLedgerDebris(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.BlockchainLog{}).
		Select("COUNT(DISTINCT debris_id)").
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ledger debris: %w", err)
	}
	return count, nil
}

// Batch jobs

func (s *pgStore) CreateBatchJob(ctx context.Context, job *schema.BatchJob) error {
	return saveErr(s.db.WithContext(ctx).Create(job).Error, "batch job")
}

func (s *pgStore) GetBatchJobByID(ctx context.Context, id string) (*schema.BatchJob, error) {
	var job schema.BatchJob
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch job: %w", err)
	}
	return &job, nil
}

func (s *pgStore) ListBatchJobs(ctx context.Context, limit int) ([]schema.BatchJob, error) {
	var jobs []schema.BatchJob
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list batch jobs: %w", err)
	}
	return jobs, nil
}
