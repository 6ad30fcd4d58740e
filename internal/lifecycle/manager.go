// Package lifecycle mediates the observation approval workflow and keeps
// Observation and Moderation consistent: at most one recorded decision per
// observation, with unrestricted approve/reject transitions.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/messaging"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// SubmitInput carries the validated fields for a new observation
type SubmitInput struct {
	UserID      string
	DebrisID    string
	ImageURL    *string
	Note        *string
	LocationLat float64
	LocationLon float64
	LocationAlt float64
	TxHash      *string
}

// Manager owns the observation lifecycle
type Manager struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
}

// NewManager creates a lifecycle manager
func NewManager(s store.Store, clock adapter.Clock, publisher messaging.Publisher) *Manager {
	return &Manager{store: s, clock: clock, publisher: publisher}
}

// Submit validates the user and debris references and persists a new pending
// observation. Dangling references fail with domain.ErrNotFound.
func (m *Manager) Submit(ctx context.Context, in SubmitInput) (*schema.Observation, error) {
	user, err := m.store.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, in.UserID)
	}

	debris, err := m.store.GetDebrisByID(ctx, in.DebrisID)
	if err != nil {
		return nil, err
	}
	if debris == nil {
		return nil, fmt.Errorf("%w: debris %s", domain.ErrNotFound, in.DebrisID)
	}

	now := m.clock.Now()
	observation := &schema.Observation{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		DebrisID:    in.DebrisID,
		ImageURL:    in.ImageURL,
		Note:        in.Note,
		LocationLat: in.LocationLat,
		LocationLon: in.LocationLon,
		LocationAlt: in.LocationAlt,
		Status:      domain.StatusPending,
		TxHash:      in.TxHash,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	if err := m.store.CreateObservation(ctx, observation); err != nil {
		return nil, err
	}

	m.publishObservation(ctx, observation)
	return observation, nil
}

// Get loads a single observation, domain.ErrNotFound when absent
func (m *Manager) Get(ctx context.Context, id string) (*schema.Observation, error) {
	observation, err := m.store.GetObservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if observation == nil {
		return nil, fmt.Errorf("%w: observation %s", domain.ErrNotFound, id)
	}
	return observation, nil
}

// Approve flips the observation to approved. It does not record a
// moderation; RecordModeration is the canonical decide-and-audit path.
func (m *Manager) Approve(ctx context.Context, id string) (*schema.Observation, error) {
	return m.transition(ctx, id, domain.StatusApproved)
}

// Reject flips the observation to rejected without recording a moderation
func (m *Manager) Reject(ctx context.Context, id string) (*schema.Observation, error) {
	return m.transition(ctx, id, domain.StatusRejected)
}

// transition applies a status change. Transitions are always permitted;
// there is no terminal state and the last operation wins.
func (m *Manager) transition(ctx context.Context, id string, status domain.ApprovalStatus) (*schema.Observation, error) {
	observation, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	observation.Status = status
	observation.UpdatedAt = m.clock.Now()
	if err := m.store.UpdateObservation(ctx, observation); err != nil {
		return nil, err
	}

	m.publishObservation(ctx, observation)
	return observation, nil
}

// RecordModeration records a moderator's decision and applies it to the
// observation. A second decision for the same observation fails with
// domain.ErrConflict.
func (m *Manager) RecordModeration(ctx context.Context, observationID, moderatorID string, approved bool) (*schema.Moderation, error) {
	observation, err := m.Get(ctx, observationID)
	if err != nil {
		return nil, err
	}

	moderator, err := m.store.GetUserByID(ctx, moderatorID)
	if err != nil {
		return nil, err
	}
	if moderator == nil {
		return nil, fmt.Errorf("%w: moderator %s", domain.ErrNotFound, moderatorID)
	}

	existing, err := m.store.GetModerationByObservation(ctx, observationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: observation %s already moderated", domain.ErrConflict, observationID)
	}

	moderation := &schema.Moderation{
		ID:            uuid.NewString(),
		ObservationID: observationID,
		ModeratorID:   moderatorID,
		Approved:      approved,
		DecidedAt:     m.clock.Now(),
	}
	if err := m.store.CreateModeration(ctx, moderation); err != nil {
		return nil, err
	}

	status := domain.StatusRejected
	if approved {
		status = domain.StatusApproved
	}
	observation.Status = status
	observation.UpdatedAt = moderation.DecidedAt
	if err := m.store.UpdateObservation(ctx, observation); err != nil {
		return nil, err
	}

	m.publishObservation(ctx, observation)
	return moderation, nil
}

// AmendModeration flips an existing decision in place and re-applies it to
// the observation. The decision row is amended, never duplicated.
func (m *Manager) AmendModeration(ctx context.Context, moderationID string, approved bool) (*schema.Moderation, error) {
	moderation, err := m.store.GetModerationByID(ctx, moderationID)
	if err != nil {
		return nil, err
	}
	if moderation == nil {
		return nil, fmt.Errorf("%w: moderation %s", domain.ErrNotFound, moderationID)
	}

	moderation.Approved = approved
	moderation.DecidedAt = m.clock.Now()
	if err := m.store.UpdateModeration(ctx, moderation); err != nil {
		return nil, err
	}

	if _, err := m.transition(ctx, moderation.ObservationID, decisionStatus(approved)); err != nil {
		return nil, err
	}
	return moderation, nil
}

// ModerationFor returns the recorded decision for an observation,
// domain.ErrNotFound when none exists
func (m *Manager) ModerationFor(ctx context.Context, observationID string) (*schema.Moderation, error) {
	moderation, err := m.store.GetModerationByObservation(ctx, observationID)
	if err != nil {
		return nil, err
	}
	if moderation == nil {
		return nil, fmt.Errorf("%w: no moderation for observation %s", domain.ErrNotFound, observationID)
	}
	return moderation, nil
}

// ByUser lists a user's observations
func (m *Manager) ByUser(ctx context.Context, userID string) ([]schema.Observation, error) {
	return m.store.ListObservationsByUser(ctx, userID)
}

// ByDebris lists observations of a debris object
func (m *Manager) ByDebris(ctx context.Context, debrisID string) ([]schema.Observation, error) {
	return m.store.ListObservationsByDebris(ctx, debrisID)
}

// Pending lists observations not yet decided
func (m *Manager) Pending(ctx context.Context) ([]schema.Observation, error) {
	return m.store.ListObservationsByStatus(ctx, domain.StatusPending)
}

// Approved lists accepted observations
func (m *Manager) Approved(ctx context.Context) ([]schema.Observation, error) {
	return m.store.ListObservationsByStatus(ctx, domain.StatusApproved)
}

func decisionStatus(approved bool) domain.ApprovalStatus {
	if approved {
		return domain.StatusApproved
	}
	return domain.StatusRejected
}

// publishObservation emits a state-change event; failures are logged, not
// propagated, because the store is the source of truth
func (m *Manager) publishObservation(ctx context.Context, o *schema.Observation) {
	event := &messaging.ObservationEvent{
		ObservationID: o.ID,
		DebrisID:      o.DebrisID,
		UserID:        o.UserID,
		Status:        string(o.Status),
		OccurredAt:    o.UpdatedAt,
	}
	if err := m.publisher.PublishObservationEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("observation_id", o.ID))
	}
}
