package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Role represents a user's authorization role
type Role string

const (
	// RoleUser is a regular observer account
	RoleUser Role = "user"
	// RoleModerator may decide observations
	RoleModerator Role = "moderator"
	// RoleAdmin has full access
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// ApprovalStatus is the three-valued moderation state of an observation.
// A freshly submitted observation is pending until a moderator decides it;
// rejection is an explicit state, not the absence of approval.
type ApprovalStatus string

const (
	// StatusPending means no decision has been made yet
	StatusPending ApprovalStatus = "pending"
	// StatusApproved means the observation was accepted
	StatusApproved ApprovalStatus = "approved"
	// StatusRejected means the observation was declined
	StatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether the status is one of the known values
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DefaultTimeframeDays is used when a timeframe token is absent or unknown
const DefaultTimeframeDays = 30

// timeframeDays maps symbolic timeframe tokens to day counts
var timeframeDays = map[string]int{
	"1d":  1,
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// ParseTimeframe maps a symbolic timeframe token ("7d", "1y", ...) to a day
// count. Unknown or empty tokens fall back to DefaultTimeframeDays rather
// than erroring; leniency here is intentional.
func ParseTimeframe(token string) int {
	if days, ok := timeframeDays[token]; ok {
		return days
	}
	return DefaultTimeframeDays
}

// TimeframeCutoff returns the inclusive lower bound for records that fall
// inside the timeframe window ending at now.
func TimeframeCutoff(token string, now time.Time) time.Time {
	days := ParseTimeframe(token)
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// Bounds is a rectangular geospatial filter. Boundary values are inclusive.
type Bounds struct {
	Lat1 float64
	Lng1 float64
	Lat2 float64
	Lng2 float64
}

// ParseBounds parses a "lat1,lng1,lat2,lng2" string into Bounds.
// Returns ErrInvalidInput when the string is not four decimal numbers.
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("%w: bounds must be \"lat1,lng1,lat2,lng2\"", ErrInvalidInput)
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("%w: bounds component %q is not a number", ErrInvalidInput, part)
		}
		values[i] = v
	}

	return Bounds{Lat1: values[0], Lng1: values[1], Lat2: values[2], Lng2: values[3]}, nil
}
