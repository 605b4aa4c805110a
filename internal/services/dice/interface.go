package dice

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rolld/internal/services/dice Service

// Service defines the interface for dice operations
type Service interface {
	// Roll parses the arguments and evaluates them once
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// CreateRoller parses the arguments once and returns a reusable roller
	CreateRoller(ctx context.Context, input *CreateRollerInput) (*CreateRollerOutput, error)

	// ParseNotation normalizes the arguments without rolling
	ParseNotation(ctx context.Context, input *ParseNotationInput) (*ParseNotationOutput, error)

	// GetHistory returns the recent rolls of a channel
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
