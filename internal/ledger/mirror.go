// Package ledger mirrors confirmed on-chain transactions as append-only log
// rows keyed by transaction hash.
package ledger

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

// RecordInput carries the fields of a confirmed transaction
type RecordInput struct {
	DebrisID    string
	TxHash      string
	BlockNumber int64
}

// TransactionStats summarizes the mirrored ledger
type TransactionStats struct {
	Total        int64 `json:"total"`
	UniqueDebris int64 `json:"uniqueDebris"`
	LatestBlock  int64 `json:"latestBlock"`
}

// Mirror owns the blockchain log
type Mirror struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
}

// NewMirror creates a ledger mirror
func NewMirror(s store.Store, clock adapter.Clock, publisher messaging.Publisher) *Mirror {
	return &Mirror{store: s, clock: clock, publisher: publisher}
}

// Record appends a confirmation. The debris reference must resolve and the
// transaction hash must be new; a duplicate hash fails with
// domain.ErrConflict.
func (m *Mirror) Record(ctx context.Context, in RecordInput) (*schema.BlockchainLog, error) {
	debris, err := m.store.GetDebrisByID(ctx, in.DebrisID)
	if err != nil {
		return nil, err
	}
	if debris == nil {
		return nil, fmt.Errorf("%w: debris %s", domain.ErrNotFound, in.DebrisID)
	}

	existing, err := m.store.GetBlockchainLogByTxHash(ctx, in.TxHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: transaction %s already recorded", domain.ErrConflict, in.TxHash)
	}

	log := &schema.BlockchainLog{
		ID:          uuid.NewString(),
		DebrisID:    in.DebrisID,
		TxHash:      in.TxHash,
		BlockNumber: in.BlockNumber,
		CommittedAt: m.clock.Now(),
	}
	if err := m.store.CreateBlockchainLog(ctx, log); err != nil {
		return nil, err
	}

	event := &messaging.LedgerEvent{
		LogID:       log.ID,
		DebrisID:    log.DebrisID,
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
		OccurredAt:  log.CommittedAt,
	}
	if err := m.publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", log.TxHash))
	}

	return log, nil
}

// Get loads a log row by id, domain.ErrNotFound when absent
func (m *Mirror) Get(ctx context.Context, id string) (*schema.BlockchainLog, error) {
	log, err := m.store.GetBlockchainLogByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("%w: blockchain log %s", domain.ErrNotFound, id)
	}
	return log, nil
}

// ByTxHash loads the log row for a transaction hash; unambiguous because the
// hash is globally unique
func (m *Mirror) ByTxHash(ctx context.Context, txHash string) (*schema.BlockchainLog, error) {
	log, err := m.store.GetBlockchainLogByTxHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("%w: transaction %s", domain.ErrNotFound, txHash)
	}
	return log, nil
}

// ByDebris lists a debris object's confirmations, newest first
func (m *Mirror) ByDebris(ctx context.Context, debrisID string) ([]schema.BlockchainLog, error) {
	return m.store.ListBlockchainLogsByDebris(ctx, debrisID)
}

// ByBlock lists confirmations at a block number
func (m *Mirror) ByBlock(ctx context.Context, blockNumber int64) ([]schema.BlockchainLog, error) {
	return m.store.ListBlockchainLogsByBlock(ctx, blockNumber)
}

// LatestBlockNumber returns the highest committed block, 0 when the ledger
// is empty
func (m *Mirror) LatestBlockNumber(ctx context.Context) (int64, error) {
	return m.store.LatestBlockNumber(ctx, nil)
}

// Stats summarizes the mirrored ledger
func (m *Mirror) Stats(ctx context.Context) (*TransactionStats, error) {
	total, err := m.store.CountBlockchainLogs(ctx, nil)
	if err != nil {
		return nil, err
	}
	unique, err := m.store.CountLedgerDebris(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := m.store.LatestBlockNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionStats{Total: total, UniqueDebris: unique, LatestBlock: latest}, nil
}
