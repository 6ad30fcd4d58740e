package schema

import (
	"time"

	"github.com/orbitwatch/debris-tracker/internal/domain"
)

// Observation represents the observations table - user-submitted sightings
// of cataloged debris. User and debris references are immutable after
// creation; the status field carries the moderation state machine.
type Observation struct {
	// ID is the opaque unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID references the submitting user
	UserID string `gorm:"column:user_id;not null;index;type:uuid"`
	// DebrisID references the observed debris object
	DebrisID string `gorm:"column:debris_id;not null;index;type:uuid"`
	// ImageURL is an opaque stored-file reference
	ImageURL *string `gorm:"column:image_url;type:text"`
	// Note is free-text commentary from the observer
	Note *string `gorm:"column:note;type:text"`
	// LocationLat, LocationLon, LocationAlt locate the sighting
	LocationLat float64 `gorm:"column:location_lat;not null;type:decimal(10,7)"`
	LocationLon float64 `gorm:"column:location_lon;not null;type:decimal(10,7)"`
	LocationAlt float64 `gorm:"column:location_alt;not null;type:decimal(10,2)"`
	// Status is pending until a moderator decides; rejection is explicit,
	// not the pending default
	Status domain.ApprovalStatus `gorm:"column:status;not null;default:pending;type:text;index"`
	// TxHash references an on-chain confirmation of the observation, if any
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// SubmittedAt is the timestamp the observation was created
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last status or metadata change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User       User        `gorm:"foreignKey:UserID"`
	Debris     Debris      `gorm:"foreignKey:DebrisID"`
	Moderation *Moderation `gorm:"foreignKey:ObservationID"`
}

// TableName specifies the table name for the Observation model
func (Observation) TableName() string {
	return "observations"
}
