package schema

import (
	"time"

	"gorm.io/datatypes"
)

// BatchJobKind identifies which batch operation a job record belongs to
type BatchJobKind string

const (
	// BatchJobImportDebris is a bulk debris catalog import
	BatchJobImportDebris BatchJobKind = "import_debris"
	// BatchJobImportUsers is a bulk user import
	BatchJobImportUsers BatchJobKind = "import_users"
	// BatchJobApprove is a bulk observation approval
	BatchJobApprove BatchJobKind = "batch_approve"
	// BatchJobReject is a bulk observation rejection
	BatchJobReject BatchJobKind = "batch_reject"
	// BatchJobCleanup is a retention cleanup run
	BatchJobCleanup BatchJobKind = "cleanup"
)

// BatchJob represents the batch_jobs table - one row per completed batch
// run. Batches are best-effort and non-transactional, so these records are
// the only durable account of partial completion.
type BatchJob struct {
	// ID is a ULID, sortable by creation time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Kind identifies the batch operation
	Kind BatchJobKind `gorm:"column:kind;not null;type:text;index"`
	// Total, Success and Failed are the per-item outcome counters
	Total   int `gorm:"column:total;not null"`
	Success int `gorm:"column:success;not null"`
	Failed  int `gorm:"column:failed;not null"`
	// Errors holds the per-item error list as JSON, in input order
	Errors datatypes.JSON `gorm:"column:errors;type:jsonb"`
	// CreatedAt is the timestamp the batch finished
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BatchJob model
func (BatchJob) TableName() string {
	return "batch_jobs"
}
