// Package seed loads a small, deterministic development dataset: a handful of
// accounts, cataloged debris, observations with decisions, and mirrored
// ledger entries. Seeding is idempotent; existing rows are skipped.
package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/ledger"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/logger"
)

// Seeder populates the database with development fixtures
type Seeder struct {
	identity  *identity.Service
	catalog   *catalog.Service
	lifecycle *lifecycle.Manager
	ledger    *ledger.Mirror
}

// NewSeeder creates a seeder over the domain services so every seeded row
// goes through the same validation as API writes
func NewSeeder(id *identity.Service, cat *catalog.Service, lc *lifecycle.Manager, lg *ledger.Mirror) *Seeder {
	return &Seeder{identity: id, catalog: cat, lifecycle: lc, ledger: lg}
}

// Run seeds users, debris, observations, moderations and ledger entries in
// dependency order
func (s *Seeder) Run(ctx context.Context) error {
	users, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}

	debris, err := s.seedDebris(ctx)
	if err != nil {
		return err
	}

	if err := s.seedObservations(ctx, users, debris); err != nil {
		return err
	}

	if err := s.seedLedger(ctx, debris); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Seeding completed",
		zap.Int("users", len(users)),
		zap.Int("debris", len(debris)),
	)
	return nil
}

type seedUser struct {
	wallet   string
	email    string
	password string
	role     domain.Role
	points   int
}

func (s *Seeder) seedUsers(ctx context.Context) (map[string]string, error) {
	fixtures := []seedUser{
		{"0x1234567890123456789012345678901234567890", "admin@orbitwatch.io", "admin123", domain.RoleAdmin, 1000},
		{"0x2345678901234567890123456789012345678901", "moderator@orbitwatch.io", "moderator123", domain.RoleModerator, 500},
		{"0x3456789012345678901234567890123456789012", "user1@orbitwatch.io", "user123", domain.RoleUser, 100},
		{"0x4567890123456789012345678901234567890123", "user2@orbitwatch.io", "user123", domain.RoleUser, 50},
		{"0x5678901234567890123456789012345678901234", "researcher@orbitwatch.io", "researcher123", domain.RoleUser, 200},
		{"0x6789012345678901234567890123456789012345", "observer@orbitwatch.io", "observer123", domain.RoleUser, 75},
	}

	// wallet -> user ID, for wiring observations later
	ids := make(map[string]string, len(fixtures))
	for _, f := range fixtures {
		existing, err := s.identity.ByWallet(ctx, f.wallet)
		if err == nil {
			logger.InfoCtx(ctx, "User already exists, skipping", zap.String("email", f.email))
			ids[f.wallet] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		email := f.email
		password := f.password
		user, err := s.identity.Create(ctx, identity.CreateInput{
			WalletAddress: f.wallet,
			Email:         &email,
			Password:      &password,
			Role:          f.role,
		})
		if err != nil {
			return nil, err
		}
		if f.points > 0 {
			if _, err := s.identity.AddPoints(ctx, user.ID, f.points); err != nil {
				return nil, err
			}
		}
		ids[f.wallet] = user.ID
		logger.InfoCtx(ctx, "Created user", zap.String("email", f.email), zap.String("role", string(f.role)))
	}
	return ids, nil
}

func (s *Seeder) seedDebris(ctx context.Context) (map[string]string, error) {
	fixtures := debrisFixtures()

	// catalog ID -> debris ID
	ids := make(map[string]string, len(fixtures))
	for _, f := range fixtures {
		existing, err := s.catalog.ByCatalogID(ctx, f.CatalogID)
		if err == nil {
			logger.InfoCtx(ctx, "Debris already exists, skipping", zap.String("catalog_id", f.CatalogID))
			ids[f.CatalogID] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		d, err := s.catalog.Create(ctx, f)
		if err != nil {
			return nil, err
		}
		ids[f.CatalogID] = d.ID
		logger.InfoCtx(ctx, "Created debris", zap.String("catalog_id", f.CatalogID), zap.Float64("risk_score", f.RiskScore))
	}
	return ids, nil
}

func (s *Seeder) seedObservations(ctx context.Context, users, debris map[string]string) error {
	moderatorID, ok := users["0x2345678901234567890123456789012345678901"]
	if !ok {
		return errors.New("seed moderator missing")
	}

	fixtures := []struct {
		userWallet      string
		debrisCatalogID string
		note            string
		lat, lon, alt   float64
		decision        *bool
	}{
		{"0x3456789012345678901234567890123456789012", "25544", "Bright flare observed during transit", 51.5, 123.2, 401.0, boolPtr(true)},
		{"0x3456789012345678901234567890123456789012", "25547", "Tumbling object, period roughly 4 seconds", 54.1, 126.5, 601.2, boolPtr(true)},
		{"0x4567890123456789012345678901234567890123", "25545", "Faint track, possible fragmentation debris", 52.0, 124.3, 350.0, boolPtr(false)},
		{"0x5678901234567890123456789012345678901234", "25551", "Confirmed against published ephemeris", 58.6, 130.0, 420.4, nil},
		{"0x6789012345678901234567890123456789012345", "25548", "Single pass, low confidence", 55.2, 127.7, 451.1, nil},
	}

	for _, f := range fixtures {
		userID, ok := users[f.userWallet]
		if !ok {
			continue
		}
		debrisID, ok := debris[f.debrisCatalogID]
		if !ok {
			continue
		}

		note := f.note
		observation, err := s.lifecycle.Submit(ctx, lifecycle.SubmitInput{
			UserID:      userID,
			DebrisID:    debrisID,
			Note:        &note,
			LocationLat: f.lat,
			LocationLon: f.lon,
			LocationAlt: f.alt,
		})
		if err != nil {
			return err
		}

		if f.decision != nil {
			if _, err := s.lifecycle.RecordModeration(ctx, observation.ID, moderatorID, *f.decision); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedLedger(ctx context.Context, debris map[string]string) error {
	fixtures := []struct {
		debrisCatalogID string
		txHash          string
		blockNumber     int64
	}{
		{"25544", "0xabc123def456789012345678901234567890123456789012345678901234567890", 19000001},
		{"25545", "0xdef456abc789012345678901234567890123456789012345678901234567890123", 19000002},
		{"25547", "0xjkl012mno345678901234567890123456789012345678901234567890123456789", 19000005},
		{"25551", "0xvwx234yza567890123456789012345678901234567890123456789012345678901", 19000009},
	}

	for _, f := range fixtures {
		debrisID, ok := debris[f.debrisCatalogID]
		if !ok {
			continue
		}

		_, err := s.ledger.Record(ctx, ledger.RecordInput{
			DebrisID:    debrisID,
			TxHash:      f.txHash,
			BlockNumber: f.blockNumber,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				logger.InfoCtx(ctx, "Ledger entry already exists, skipping", zap.String("tx_hash", f.txHash))
				continue
			}
			return err
		}
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
