package dice

// DiceError is a custom error type for dice service errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       DiceError = "config cannot be nil"
	ErrNilDiceRoller   DiceError = "dice roller cannot be nil"
	ErrNegativeMaxDice DiceError = "max dice count cannot be negative"
	ErrNilInput        DiceError = "input cannot be nil"
	ErrHistoryDisabled DiceError = "roll history is not configured"
	ErrMissingChannel  DiceError = "channel ID cannot be empty"
)
