// Package catalog manages the debris catalog: unique catalog ids, orbital
// elements and risk metadata.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// CreateInput carries the fields for a new catalog entry
type CreateInput struct {
	CatalogID string
	Source    string
	Epoch     time.Time
	TLELine1  string
	TLELine2  string
	Lat       float64
	Lon       float64
	Alt       float64
	RiskScore float64
	OnChainTx *string
}

// UpdateInput carries optional in-place changes; nil fields are left untouched
type UpdateInput struct {
	CatalogID *string
	Source    *string
	Epoch     *time.Time
	TLELine1  *string
	TLELine2  *string
	Lat       *float64
	Lon       *float64
	Alt       *float64
	RiskScore *float64
	OnChainTx *string
}

// Service owns the debris catalog
type Service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates a catalog service
func NewService(s store.Store, clock adapter.Clock) *Service {
	return &Service{store: s, clock: clock}
}

// Create catalogs a new debris object. A duplicate catalog id fails with
// domain.ErrConflict and leaves the existing record untouched.
func (s *Service) Create(ctx context.Context, in CreateInput) (*schema.Debris, error) {
	if in.CatalogID == "" {
		return nil, fmt.Errorf("%w: catalog id is required", domain.ErrInvalidInput)
	}

	existing, err := s.store.GetDebrisByCatalogID(ctx, in.CatalogID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: catalog id %s already exists", domain.ErrConflict, in.CatalogID)
	}

	now := s.clock.Now()
	debris := &schema.Debris{
		ID:        uuid.NewString(),
		CatalogID: in.CatalogID,
		Source:    in.Source,
		Epoch:     in.Epoch,
		TLELine1:  in.TLELine1,
		TLELine2:  in.TLELine2,
		Lat:       in.Lat,
		Lon:       in.Lon,
		Alt:       in.Alt,
		RiskScore: in.RiskScore,
		OnChainTx: in.OnChainTx,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateDebris(ctx, debris); err != nil {
		return nil, err
	}
	return debris, nil
}

// Get loads a debris record by id, domain.ErrNotFound when absent
func (s *Service) Get(ctx context.Context, id string) (*schema.Debris, error) {
	debris, err := s.store.GetDebrisByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debris == nil {
		return nil, fmt.Errorf("%w: debris %s", domain.ErrNotFound, id)
	}
	return debris, nil
}

// ByCatalogID loads a debris record by its catalog designation
func (s *Service) ByCatalogID(ctx context.Context, catalogID string) (*schema.Debris, error) {
	debris, err := s.store.GetDebrisByCatalogID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if debris == nil {
		return nil, fmt.Errorf("%w: catalog id %s", domain.ErrNotFound, catalogID)
	}
	return debris, nil
}

// List returns the whole catalog
func (s *Service) List(ctx context.Context) ([]schema.Debris, error) {
	return s.store.ListDebris(ctx)
}

// Update applies in-place changes. A new catalog id must not collide with
// another record.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*schema.Debris, error) {
	debris, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CatalogID != nil && *in.CatalogID != debris.CatalogID {
		existing, err := s.store.GetDebrisByCatalogID(ctx, *in.CatalogID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: catalog id %s already in use", domain.ErrConflict, *in.CatalogID)
		}
		debris.CatalogID = *in.CatalogID
	}
	if in.Source != nil {
		debris.Source = *in.Source
	}
	if in.Epoch != nil {
		debris.Epoch = *in.Epoch
	}
	if in.TLELine1 != nil {
		debris.TLELine1 = *in.TLELine1
	}
	if in.TLELine2 != nil {
		debris.TLELine2 = *in.TLELine2
	}
	if in.Lat != nil {
		debris.Lat = *in.Lat
	}
	if in.Lon != nil {
		debris.Lon = *in.Lon
	}
	if in.Alt != nil {
		debris.Alt = *in.Alt
	}
	if in.RiskScore != nil {
		debris.RiskScore = *in.RiskScore
	}
	if in.OnChainTx != nil {
		debris.OnChainTx = in.OnChainTx
	}

	debris.UpdatedAt = s.clock.Now()
	if err := s.store.UpdateDebris(ctx, debris); err != nil {
		return nil, err
	}
	return debris, nil
}

// Delete removes a catalog entry
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteDebris(ctx, id)
}

// ByMinRisk returns debris at or above the risk threshold, most dangerous
// first
func (s *Service) ByMinRisk(ctx context.Context, minRisk float64, limit int) ([]schema.Debris, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.store.ListDebrisByMinRisk(ctx, minRisk, limit)
}
