// Package dto defines the REST request and response shapes.
package dto

import "time"

// CreateUserRequest registers a new observer account
type CreateUserRequest struct {
	WalletAddress string  `json:"walletAddress" binding:"required"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Role          string  `json:"role"`
	AvatarURL     *string `json:"avatarUrl"`
}

// UpdateUserRequest changes profile fields in place; omitted fields are left
// untouched. Points are not updatable here.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatarUrl"`
}

// AddPointsRequest awards points to a user
type AddPointsRequest struct {
	Points int `json:"points" binding:"required,gt=0"`
}

// CreateDebrisRequest catalogs a new tracked object
type CreateDebrisRequest struct {
	CatalogID string    `json:"catalogId" binding:"required"`
	Source    string    `json:"source" binding:"required"`
	Epoch     time.Time `json:"epoch"`
	TLELine1  string    `json:"tleLine1"`
	TLELine2  string    `json:"tleLine2"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Alt       float64   `json:"alt"`
	RiskScore float64   `json:"riskScore"`
	OnChainTx *string   `json:"onChainTx"`
}

// UpdateDebrisRequest changes catalog fields in place
type UpdateDebrisRequest struct {
	CatalogID *string    `json:"catalogId"`
	Source    *string    `json:"source"`
	Epoch     *time.Time `json:"epoch"`
	TLELine1  *string    `json:"tleLine1"`
	TLELine2  *string    `json:"tleLine2"`
	Lat       *float64   `json:"lat"`
	Lon       *float64   `json:"lon"`
	Alt       *float64   `json:"alt"`
	RiskScore *float64   `json:"riskScore"`
	OnChainTx *string    `json:"onChainTx"`
}

// SubmitObservationRequest files a new sighting
type SubmitObservationRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	DebrisID    string  `json:"debrisId" binding:"required"`
	ImageURL    *string `json:"imageUrl"`
	Note        *string `json:"note"`
	LocationLat float64 `json:"locationLat"`
	LocationLon float64 `json:"locationLon"`
	LocationAlt float64 `json:"locationAlt"`
	TxHash      *string `json:"txHash"`
}

// ModerationRequest records a moderator decision for an observation
type ModerationRequest struct {
	ModeratorID string `json:"moderatorId" binding:"required"`
	Approved    *bool  `json:"approved" binding:"required"`
}

// AmendModerationRequest flips an existing decision
type AmendModerationRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// RecordLogRequest mirrors a confirmed on-chain transaction
type RecordLogRequest struct {
	DebrisID    string `json:"debrisId" binding:"required"`
	TxHash      string `json:"txHash" binding:"required"`
	BlockNumber int64  `json:"blockNumber"`
}

// ImportDebrisRequest bulk-loads catalog entries
type ImportDebrisRequest struct {
	Items []CreateDebrisRequest `json:"items" binding:"required,min=1,dive"`
}

// ImportUsersRequest bulk-loads user accounts
type ImportUsersRequest struct {
	Items []CreateUserRequest `json:"items" binding:"required,min=1,dive"`
}

// BatchDecideRequest approves or rejects observations in bulk
type BatchDecideRequest struct {
	ObservationIDs []string `json:"observationIds" binding:"required,min=1"`
}

// CleanupRequest deletes observations older than the threshold
type CleanupRequest struct {
	ThresholdDays int `json:"thresholdDays" binding:"required,gt=0"`
}

// SyncChainRequest requests an on-chain backfill over a block range
type SyncChainRequest struct {
	FromBlock int64 `json:"fromBlock"`
	ToBlock   int64 `json:"toBlock"`
}
