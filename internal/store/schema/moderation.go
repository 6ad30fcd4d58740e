package schema

import (
	"time"
)

// Moderation represents the moderations table - one recorded decision per
// observation. The unique index on observation_id is the hard invariant: a
// decision may later be amended in place but never duplicated.
type Moderation struct {
	// ID is the opaque unique identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ObservationID references the decided observation, exactly one decision each
	ObservationID string `gorm:"column:observation_id;not null;uniqueIndex;type:uuid"`
	// ModeratorID references the user who made the decision
	ModeratorID string `gorm:"column:moderator_id;not null;index;type:uuid"`
	// Approved is the decision
	Approved bool `gorm:"column:approved;not null"`
	// DecidedAt is the decision timestamp
	DecidedAt time.Time `gorm:"column:decided_at;not null;default:now();type:timestamptz"`

	// Associations
	Moderator   User        `gorm:"foreignKey:ModeratorID"`
	Observation Observation `gorm:"foreignKey:ObservationID"`
}

// TableName specifies the table name for the Moderation model
func (Moderation) TableName() string {
	return "moderations"
}
