package dice

import (
	"github.com/KirkDiggler/rolld/internal/common/clock"
	"github.com/KirkDiggler/rolld/internal/common/uuid"
	diceRoller "github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/models"
	"github.com/KirkDiggler/rolld/internal/notation"
	historyRepo "github.com/KirkDiggler/rolld/internal/repositories/roll_history"
	"go.uber.org/zap"
)

// Config holds configuration for the dice service
type Config struct {
	// DiceRoller evaluates parsed specs
	DiceRoller diceRoller.Roller

	// HistoryRepo records rolls, optional
	HistoryRepo historyRepo.Repository

	// Clock and UUIDGenerator stamp recorded rolls, they default to the system ones
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger *zap.Logger

	// MaxDiceCount caps the dice in one roll, zero means DefaultMaxDiceCount
	MaxDiceCount int
}

// DefaultMaxDiceCount is the dice cap used when Config.MaxDiceCount is zero
const DefaultMaxDiceCount = 1000

// RollInput contains parameters for a one-shot roll
type RollInput struct {
	// Args are notation or positional arguments, at most three are read
	Args []notation.Arg

	// ChannelID is the Discord channel the roll is made in. Rolls without a
	// channel are not recorded.
	ChannelID string

	// UserID is the Discord user ID of the roller
	UserID string

	// UserName is the display name of the roller
	UserName string
}

// RollOutput contains the result of a one-shot roll
type RollOutput struct {
	// Value is the rolled total, modifier included
	Value int

	// Notation is the canonical notation of what was rolled
	Notation string

	// Spec is the parsed rule
	Spec models.RollSpec

	// Roll is the recorded roll, nil when history is disabled or the roll had no channel
	Roll *models.Roll
}

// CreateRollerInput contains parameters for creating a roller
type CreateRollerInput struct {
	Args []notation.Arg
}

// CreateRollerOutput contains the created roller
type CreateRollerOutput struct {
	Roller *Roller
}

// ParseNotationInput contains parameters for parsing
type ParseNotationInput struct {
	Args []notation.Arg
}

// ParseNotationOutput contains the parsed rule and its canonical notation
type ParseNotationOutput struct {
	Spec     models.RollSpec
	Notation string
}

// GetHistoryInput contains parameters for reading roll history
type GetHistoryInput struct {
	// ChannelID is the channel to read
	ChannelID string

	// UserID optionally restricts the history to one user
	UserID string

	// Limit caps the number of rolls, zero means the repository maximum
	Limit int
}

// GetHistoryOutput contains recent rolls, newest first
type GetHistoryOutput struct {
	Rolls []*models.Roll
}
