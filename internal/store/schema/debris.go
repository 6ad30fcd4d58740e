package schema

import (
	"time"
)

// Debris represents the debris table - cataloged space objects tracked by
// orbital elements and last known position
type Debris struct {
	// ID is the opaque unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// CatalogID is the external catalog designation, globally unique
	CatalogID string `gorm:"column:catalog_id;not null;uniqueIndex;type:text"`
	// Source labels the catalog or sensor network the record came from
	Source string `gorm:"column:source;not null;type:text"`
	// Epoch is the reference time of the orbital elements
	Epoch time.Time `gorm:"column:epoch;not null;type:timestamptz"`
	// TLELine1 and TLELine2 are the two-line element set
	TLELine1 string `gorm:"column:tle_line1;not null;type:text"`
	TLELine2 string `gorm:"column:tle_line2;not null;type:text"`
	// Lat, Lon, Alt are the last propagated position (degrees, degrees, km)
	Lat float64 `gorm:"column:lat;not null;type:decimal(10,7)"`
	Lon float64 `gorm:"column:lon;not null;type:decimal(10,7)"`
	Alt float64 `gorm:"column:alt;not null;type:decimal(10,2)"`
	// RiskScore is the collision risk estimate, nominally 0-10
	RiskScore float64 `gorm:"column:risk_score;not null;default:0;type:decimal(5,2)"`
	// OnChainTx references the transaction that anchored this record, if any
	OnChainTx *string `gorm:"column:on_chain_tx;type:text"`
	// CreatedAt is the timestamp when this record was cataloged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last in-place update
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Observations   []Observation   `gorm:"foreignKey:DebrisID"`
	BlockchainLogs []BlockchainLog `gorm:"foreignKey:DebrisID"`
}

// TableName specifies the table name for the Debris model
func (Debris) TableName() string {
	return "debris"
}
