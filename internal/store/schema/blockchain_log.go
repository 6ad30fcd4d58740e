package schema

import (
	"time"
)

// BlockchainLog represents the blockchain_logs table - an append-only mirror
// of confirmed on-chain transactions per debris object. Rows are never
// updated beyond metadata corrections.
type BlockchainLog struct {
	// ID is the opaque unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// DebrisID references the anchored debris object
	DebrisID string `gorm:"column:debris_id;not null;index;type:uuid"`
	// TxHash is the confirmed transaction hash, globally unique
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// BlockNumber is the ledger position of the confirmation
	BlockNumber int64 `gorm:"column:block_number;not null;type:bigint"`
	// CommittedAt is the timestamp the confirmation was recorded
	CommittedAt time.Time `gorm:"column:committed_at;not null;default:now();type:timestamptz"`

	// Associations
	Debris Debris `gorm:"foreignKey:DebrisID"`
}

// TableName specifies the table name for the BlockchainLog model
func (BlockchainLog) TableName() string {
	return "blockchain_logs"
}
