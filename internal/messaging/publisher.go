package messaging

import (
	"context"
	"time"
)

// ObservationEvent is published when an observation's moderation state changes
type ObservationEvent struct {
	ObservationID string    `json:"observation_id"`
	DebrisID      string    `json:"debris_id"`
	UserID        string    `json:"user_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// LedgerEvent is published when an on-chain confirmation is recorded
type LedgerEvent struct {
	LogID       string    `json:"log_id"`
	DebrisID    string    `json:"debris_id"`
	TxHash      string    `json:"tx_hash"`
	BlockNumber int64     `json:"block_number"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher defines the interface for publishing platform events to the
// message broker. Publishing is best effort: lifecycle operations log
// publish failures but do not roll back.
//
//go:generate mockgen -destination=../mocks/publisher.go -package=mocks github.com/orbitwatch/debris-tracker/internal/messaging Publisher
type Publisher interface {
	// PublishObservationEvent publishes a moderation state change
	PublishObservationEvent(ctx context.Context, event *ObservationEvent) error
	// PublishLedgerEvent publishes a recorded on-chain confirmation
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error
	// Close closes the connection
	Close()
}

// NoopPublisher discards all events; used when no broker is configured
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event
func NewNoopPublisher() Publisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishObservationEvent(ctx context.Context, event *ObservationEvent) error {
	return nil
}

func (p *NoopPublisher) PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error {
	return nil
}

func (p *NoopPublisher) Close() {}
