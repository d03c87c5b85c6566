package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a savings or spending goal the user tracks on the dashboard.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Progress returns goal completion as a fraction in [0, 1].
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	progress := g.CurrentAmount / g.TargetAmount
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}

	return progress
}
