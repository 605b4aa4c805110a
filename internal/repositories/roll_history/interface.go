package roll_history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rolld/internal/repositories/roll_history Repository

import (
	"context"
)

// Repository defines the interface for roll history persistence
type Repository interface {
	// SaveRoll records a roll at the head of its channel history
	SaveRoll(ctx context.Context, input *SaveRollInput) error

	// GetRecentRolls retrieves the newest rolls of a channel, newest first
	GetRecentRolls(ctx context.Context, input *GetRecentRollsInput) (*GetRecentRollsOutput, error)

	// ClearHistory removes every recorded roll of a channel
	ClearHistory(ctx context.Context, input *ClearHistoryInput) error
}
