package notation

// NotationError is a custom error type for notation parsing errors
type NotationError string

// Error implements the error interface
func (e NotationError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidArgument is returned when a value that must be a number is not one
	ErrInvalidArgument NotationError = "invalid argument"

	// ErrInvalidRange is returned when the dice or face count is below one
	ErrInvalidRange NotationError = "invalid range"
)
