// Package batch applies bulk mutations item by item, accumulating per-item
// success and failure without aborting the batch. Batches are best effort
// and non-transactional: items run sequentially, a failed item never stops
// the rest, and a process crash can leave a batch partially applied.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// ItemError reports one failed batch item. For imports Item carries the
// offending input; for id-list operations ID carries the offending id.
// Entries appear in input order.
type ItemError struct {
	Item    any    `json:"item,omitempty"`
	ID      string `json:"id,omitempty"`
	Message string `json:"error"`
}

// Result is the per-item accounting of a finished batch
type Result struct {
	JobID   string      `json:"jobId"`
	Total   int         `json:"total"`
	Success int         `json:"successCount"`
	Failed  int         `json:"errorCount"`
	Errors  []ItemError `json:"errors"`
}

// CleanupResult reports a retention cleanup run. Only observations are
// deleted in the current scope; moderation and blockchain-log cascade
// cleanup is not implemented and their counters stay zero.
type CleanupResult struct {
	JobID          string    `json:"jobId"`
	CutoffDate     time.Time `json:"cutoffDate"`
	Observations   int       `json:"observations"`
	Moderations    int       `json:"moderations"`
	BlockchainLogs int       `json:"blockchainLogs"`
}

// SyncResult is the well-typed stub response of the chain sync operation
type SyncResult struct {
	FromBlock int64 `json:"fromBlock"`
	ToBlock   int64 `json:"toBlock"`
	Synced    int   `json:"synced"`
}

// Engine owns the batch operations
type Engine struct {
	store     store.Store
	catalog   *catalog.Service
	identity  *identity.Service
	lifecycle *lifecycle.Manager
	clock     adapter.Clock
}

// NewEngine creates a batch engine
func NewEngine(s store.Store, cat *catalog.Service, id *identity.Service, lc *lifecycle.Manager, clock adapter.Clock) *Engine {
	return &Engine{store: s, catalog: cat, identity: id, lifecycle: lc, clock: clock}
}

// ImportDebris creates each catalog entry in isolation; duplicates and other
// per-item failures are collected, not propagated
func (e *Engine) ImportDebris(ctx context.Context, items []catalog.CreateInput) (*Result, error) {
	result := newResult(len(items))
	for _, item := range items {
		if _, err := e.catalog.Create(ctx, item); err != nil {
			result.fail(ItemError{Item: item, Message: err.Error()})
			continue
		}
		result.Success++
	}
	e.recordJob(ctx, schema.BatchJobImportDebris, result)
	return result, nil
}

// ImportUsers creates each user account in isolation
func (e *Engine) ImportUsers(ctx context.Context, items []identity.CreateInput) (*Result, error) {
	result := newResult(len(items))
	for _, item := range items {
		if _, err := e.identity.Create(ctx, item); err != nil {
			result.fail(ItemError{Item: item, Message: err.Error()})
			continue
		}
		result.Success++
	}
	e.recordJob(ctx, schema.BatchJobImportUsers, result)
	return result, nil
}

// Approve resolves each observation id and flips it to approved; a missing
// id is a per-item error, never a batch failure
func (e *Engine) Approve(ctx context.Context, observationIDs []string) (*Result, error) {
	return e.decide(ctx, schema.BatchJobApprove, observationIDs, e.lifecycle.Approve)
}

// Reject resolves each observation id and flips it to rejected
func (e *Engine) Reject(ctx context.Context, observationIDs []string) (*Result, error) {
	return e.decide(ctx, schema.BatchJobReject, observationIDs, e.lifecycle.Reject)
}

func (e *Engine) decide(ctx context.Context, kind schema.BatchJobKind, ids []string, op func(context.Context, string) (*schema.Observation, error)) (*Result, error) {
	result := newResult(len(ids))
	for _, id := range ids {
		if _, err := op(ctx, id); err != nil {
			result.fail(ItemError{ID: id, Message: err.Error()})
			continue
		}
		result.Success++
	}
	e.recordJob(ctx, kind, result)
	return result, nil
}

// CleanupOldData deletes observations submitted before now - thresholdDays.
// Deletions are per-item; one failure does not stop the sweep.
func (e *Engine) CleanupOldData(ctx context.Context, thresholdDays int) (*CleanupResult, error) {
	if thresholdDays <= 0 {
		return nil, fmt.Errorf("%w: threshold days must be positive", domain.ErrInvalidInput)
	}

	cutoff := e.clock.Now().Add(-time.Duration(thresholdDays) * 24 * time.Hour)
	old, err := e.store.ListObservationsBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := newResult(len(old))
	cleanup := &CleanupResult{CutoffDate: cutoff}
	for _, observation := range old {
		if err := e.store.DeleteObservation(ctx, observation.ID); err != nil {
			result.fail(ItemError{ID: observation.ID, Message: err.Error()})
			continue
		}
		result.Success++
		cleanup.Observations++
	}

	e.recordJob(ctx, schema.BatchJobCleanup, result)
	cleanup.JobID = result.JobID
	return cleanup, nil
}

// SyncChain is a stub: connecting to a chain node is out of scope, so the
// operation reports zero synced blocks instead of erroring
func (e *Engine) SyncChain(ctx context.Context, fromBlock, toBlock int64) (*SyncResult, error) {
	logger.InfoCtx(ctx, "chain sync requested but not implemented",
		zap.Int64("from_block", fromBlock),
		zap.Int64("to_block", toBlock),
	)
	return &SyncResult{FromBlock: fromBlock, ToBlock: toBlock, Synced: 0}, nil
}

// JobStatus loads a recorded batch job, domain.ErrNotFound when absent
func (e *Engine) JobStatus(ctx context.Context, jobID string) (*schema.BatchJob, error) {
	job, err := e.store.GetBatchJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: batch job %s", domain.ErrNotFound, jobID)
	}
	return job, nil
}

// JobHistory lists recent batch jobs, newest first
func (e *Engine) JobHistory(ctx context.Context, limit int) ([]schema.BatchJob, error) {
	if limit <= 0 {
		limit = 50
	}
	return e.store.ListBatchJobs(ctx, limit)
}

func newResult(total int) *Result {
	return &Result{
		JobID:  ulid.Make().String(),
		Total:  total,
		Errors: []ItemError{},
	}
}

func (r *Result) fail(itemErr ItemError) {
	r.Failed++
	r.Errors = append(r.Errors, itemErr)
}

// recordJob persists the batch outcome for later inspection; the record is
// advisory, so failures are logged and swallowed
func (e *Engine) recordJob(ctx context.Context, kind schema.BatchJobKind, result *Result) {
	errorsJSON, err := json.Marshal(result.Errors)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("job_id", result.JobID))
		return
	}

	job := &schema.BatchJob{
		ID:        result.JobID,
		Kind:      kind,
		Total:     result.Total,
		Success:   result.Success,
		Failed:    result.Failed,
		Errors:    errorsJSON,
		CreatedAt: e.clock.Now(),
	}
	if err := e.store.CreateBatchJob(ctx, job); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("job_id", result.JobID))
	}
}
