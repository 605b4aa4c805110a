package messaging

import (
	"github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneCommiseration is used for the worst possible roll
	ToneCommiseration MessageTone = "commiseration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks among message variants
	DiceRoller dice.Roller
}

// GetRollResultMessageInput contains parameters for a roll result message
type GetRollResultMessageInput struct {
	// PlayerName is the name of the player who rolled
	PlayerName string

	// Notation is the canonical notation that was rolled
	Notation string

	// Spec is the parsed rule, used to spot the best and worst results
	Spec models.RollSpec

	// Value is the rolled total
	Value int

	// PreferredTone overrides the tone for ordinary results (optional)
	PreferredTone MessageTone
}

// GetRollResultMessageOutput contains a roll result message
type GetRollResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// Err is the error to explain
	Err error

	// Input is the raw text the user supplied, if any
	Input string
}

// GetErrorMessageOutput contains an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// GetHistoryMessageInput contains parameters for a history listing
type GetHistoryMessageInput struct {
	Rolls []*models.Roll
}

// GetHistoryMessageOutput contains a history listing
type GetHistoryMessageOutput struct {
	Title   string
	Message string
}
