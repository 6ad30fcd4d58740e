// Package search provides paginated text search over debris, observations
// and users. Filters are explicit typed structs; there is no free-form
// filter parsing.
package search

import (
	"context"
	"time"

	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	suggestionLimit = 5
	// suggestions below this query length would match too broadly
	minSuggestionQueryLength = 2
)

// DebrisFilters narrows a debris search
type DebrisFilters struct {
	Source      *string
	MinRisk     *float64
	MaxRisk     *float64
	MinAltitude *float64
	MaxAltitude *float64
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ObservationFilters narrows an observation search
type ObservationFilters struct {
	Status        *domain.ApprovalStatus
	UserID        *string
	DebrisID      *string
	SubmittedFrom *time.Time
	SubmittedTo   *time.Time
}

// PageInfo carries the pagination window back alongside the matches
type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// DebrisResults is a page of debris matches ordered by risk score descending
type DebrisResults struct {
	Items []schema.Debris `json:"items"`
	PageInfo
}

// ObservationResults is a page of observation matches ordered by submission
// time descending
type ObservationResults struct {
	Items []schema.Observation `json:"items"`
	PageInfo
}

// UserMatch is the public projection of a matched user; password hashes
// never leave the store through search
type UserMatch struct {
	ID            string    `json:"id"`
	Email         *string   `json:"email"`
	WalletAddress string    `json:"walletAddress"`
	Role          string    `json:"role"`
	Points        int       `json:"points"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// UserResults is a page of user matches ordered by points descending
type UserResults struct {
	Items []UserMatch `json:"items"`
	PageInfo
}

// SuggestionKind selects which entity a suggestion query completes against
type SuggestionKind string

const (
	SuggestDebris       SuggestionKind = "debris"
	SuggestObservations SuggestionKind = "observations"
	SuggestUsers        SuggestionKind = "users"
)

// Service runs searches against the store
type Service struct {
	store store.Store
}

// NewService creates a search service
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Debris searches the catalog by catalog id or source substring
func (s *Service) Debris(ctx context.Context, query string, page, limit int, filters DebrisFilters) (*DebrisResults, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.store.SearchDebris(ctx, store.DebrisSearchFilter{
		Query:       query,
		Source:      filters.Source,
		MinRisk:     filters.MinRisk,
		MaxRisk:     filters.MaxRisk,
		MinAltitude: filters.MinAltitude,
		MaxAltitude: filters.MaxAltitude,
		CreatedFrom: filters.CreatedFrom,
		CreatedTo:   filters.CreatedTo,
		Page:        store.Page{Limit: limit, Offset: (page - 1) * limit},
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []schema.Debris{}
	}
	return &DebrisResults{Items: items, PageInfo: pageInfo(total, page, limit)}, nil
}

// Observations searches observation notes
func (s *Service) Observations(ctx context.Context, query string, page, limit int, filters ObservationFilters) (*ObservationResults, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.store.SearchObservations(ctx, store.ObservationSearchFilter{
		Query:         query,
		Status:        filters.Status,
		UserID:        filters.UserID,
		DebrisID:      filters.DebrisID,
		SubmittedFrom: filters.SubmittedFrom,
		SubmittedTo:   filters.SubmittedTo,
		Page:          store.Page{Limit: limit, Offset: (page - 1) * limit},
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []schema.Observation{}
	}
	return &ObservationResults{Items: items, PageInfo: pageInfo(total, page, limit)}, nil
}

// Users searches accounts by email or wallet address substring
func (s *Service) Users(ctx context.Context, query string, page, limit int) (*UserResults, error) {
	page, limit = normalizePage(page, limit)
	users, total, err := s.store.SearchUsers(ctx, store.UserSearchFilter{
		Query: query,
		Page:  store.Page{Limit: limit, Offset: (page - 1) * limit},
	})
	if err != nil {
		return nil, err
	}
	items := make([]UserMatch, 0, len(users))
	for _, u := range users {
		items = append(items, UserMatch{
			ID:            u.ID,
			Email:         u.Email,
			WalletAddress: u.WalletAddress,
			Role:          string(u.Role),
			Points:        u.Points,
			JoinedAt:      u.JoinedAt,
		})
	}
	return &UserResults{Items: items, PageInfo: pageInfo(total, page, limit)}, nil
}

// Suggestions returns up to five completion strings for the query. Queries
// shorter than two characters return nothing.
func (s *Service) Suggestions(ctx context.Context, query string, kind SuggestionKind) ([]string, error) {
	if len(query) < minSuggestionQueryLength {
		return []string{}, nil
	}
	page := store.Page{Limit: suggestionLimit}

	switch kind {
	case SuggestDebris:
		items, _, err := s.store.SearchDebris(ctx, store.DebrisSearchFilter{Query: query, Page: page})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(items))
		for _, d := range items {
			out = append(out, d.CatalogID)
		}
		return out, nil
	case SuggestObservations:
		items, _, err := s.store.SearchObservations(ctx, store.ObservationSearchFilter{Query: query, Page: page})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(items))
		for _, o := range items {
			if o.Note != nil {
				out = append(out, *o.Note)
			}
		}
		return out, nil
	case SuggestUsers:
		users, _, err := s.store.SearchUsers(ctx, store.UserSearchFilter{Query: query, Page: page})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(users))
		for _, u := range users {
			if u.Email != nil {
				out = append(out, *u.Email)
			} else {
				out = append(out, u.WalletAddress)
			}
		}
		return out, nil
	default:
		return []string{}, nil
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func pageInfo(total int64, page, limit int) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
