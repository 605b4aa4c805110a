package models

import (
	"time"
)

// Roll represents a recorded dice roll
type Roll struct {
	// ID is the unique identifier for the roll
	ID string

	// Notation is the canonical dice notation that was rolled
	Notation string

	// Spec is the parsed rule behind Notation
	Spec RollSpec

	// Value is the result of the dice roll, modifier included
	Value int

	// ChannelID is the Discord channel the roll was made in
	ChannelID string

	// UserID is the Discord user who made the roll
	UserID string

	// UserName is the display name of the user at roll time
	UserName string

	// Timestamp is when the roll was made
	Timestamp time.Time
}
