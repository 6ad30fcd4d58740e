package dto

import (
	"time"

	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// UserResponse is the public projection of an account; the password hash
// never leaves the API
type UserResponse struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	Email         *string   `json:"email"`
	Role          string    `json:"role"`
	Points        int       `json:"points"`
	AvatarURL     *string   `json:"avatarUrl"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// DebrisResponse is the projection of a cataloged object
type DebrisResponse struct {
	ID        string    `json:"id"`
	CatalogID string    `json:"catalogId"`
	Source    string    `json:"source"`
	Epoch     time.Time `json:"epoch"`
	TLELine1  string    `json:"tleLine1"`
	TLELine2  string    `json:"tleLine2"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Alt       float64   `json:"alt"`
	RiskScore float64   `json:"riskScore"`
	OnChainTx *string   `json:"onChainTx"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ObservationResponse is the projection of a sighting
type ObservationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	DebrisID    string    `json:"debrisId"`
	ImageURL    *string   `json:"imageUrl"`
	Note        *string   `json:"note"`
	LocationLat float64   `json:"locationLat"`
	LocationLon float64   `json:"locationLon"`
	LocationAlt float64   `json:"locationAlt"`
	Status      string    `json:"status"`
	TxHash      *string   `json:"txHash"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ModerationResponse is the projection of a recorded decision
type ModerationResponse struct {
	ID            string    `json:"id"`
	ObservationID string    `json:"observationId"`
	ModeratorID   string    `json:"moderatorId"`
	Approved      bool      `json:"approved"`
	DecidedAt     time.Time `json:"decidedAt"`
}

// BlockchainLogResponse is the projection of a mirrored confirmation
type BlockchainLogResponse struct {
	ID          string    `json:"id"`
	DebrisID    string    `json:"debrisId"`
	TxHash      string    `json:"txHash"`
	BlockNumber int64     `json:"blockNumber"`
	CommittedAt time.Time `json:"committedAt"`
}

// FromUser maps a stored user to its public projection
func FromUser(u *schema.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		WalletAddress: u.WalletAddress,
		Email:         u.Email,
		Role:          string(u.Role),
		Points:        u.Points,
		AvatarURL:     u.AvatarURL,
		JoinedAt:      u.JoinedAt,
	}
}

// FromUsers maps a list of stored users
func FromUsers(users []schema.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

// FromDebris maps a stored debris record
func FromDebris(d *schema.Debris) DebrisResponse {
	return DebrisResponse{
		ID:        d.ID,
		CatalogID: d.CatalogID,
		Source:    d.Source,
		Epoch:     d.Epoch,
		TLELine1:  d.TLELine1,
		TLELine2:  d.TLELine2,
		Lat:       d.Lat,
		Lon:       d.Lon,
		Alt:       d.Alt,
		RiskScore: d.RiskScore,
		OnChainTx: d.OnChainTx,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FromDebrisList maps a list of stored debris records
func FromDebrisList(items []schema.Debris) []DebrisResponse {
	out := make([]DebrisResponse, 0, len(items))
	for i := range items {
		out = append(out, FromDebris(&items[i]))
	}
	return out
}

// FromObservation maps a stored observation
func FromObservation(o *schema.Observation) ObservationResponse {
	return ObservationResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		DebrisID:    o.DebrisID,
		ImageURL:    o.ImageURL,
		Note:        o.Note,
		LocationLat: o.LocationLat,
		LocationLon: o.LocationLon,
		LocationAlt: o.LocationAlt,
		Status:      string(o.Status),
		TxHash:      o.TxHash,
		SubmittedAt: o.SubmittedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromObservations maps a list of stored observations
func FromObservations(items []schema.Observation) []ObservationResponse {
	out := make([]ObservationResponse, 0, len(items))
	for i := range items {
		out = append(out, FromObservation(&items[i]))
	}
	return out
}

// FromModeration maps a stored decision
func FromModeration(m *schema.Moderation) ModerationResponse {
	return ModerationResponse{
		ID:            m.ID,
		ObservationID: m.ObservationID,
		ModeratorID:   m.ModeratorID,
		Approved:      m.Approved,
		DecidedAt:     m.DecidedAt,
	}
}

// FromBlockchainLog maps a stored confirmation
func FromBlockchainLog(l *schema.BlockchainLog) BlockchainLogResponse {
	return BlockchainLogResponse{
		ID:          l.ID,
		DebrisID:    l.DebrisID,
		TxHash:      l.TxHash,
		BlockNumber: l.BlockNumber,
		CommittedAt: l.CommittedAt,
	}
}

// FromBlockchainLogs maps a list of stored confirmations
func FromBlockchainLogs(items []schema.BlockchainLog) []BlockchainLogResponse {
	out := make([]BlockchainLogResponse, 0, len(items))
	for i := range items {
		out = append(out, FromBlockchainLog(&items[i]))
	}
	return out
}
