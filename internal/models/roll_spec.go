package models

// RollSpec is the canonical form of a dice-throw rule.
//
// A RollSpec produced by the notation parser always has DiceCount >= 1 and
// FaceCount >= 1. Treat it as a value; nothing mutates it after parsing.
type RollSpec struct {
	// DiceCount is the number of dice thrown
	DiceCount int

	// FaceCount is the number of faces on each die
	FaceCount int

	// Modifier is added to the sum of the dice, it may be negative
	Modifier int
}

// Min returns the lowest total the spec can produce
func (s RollSpec) Min() int {
	return s.DiceCount + s.Modifier
}

// Max returns the highest total the spec can produce
func (s RollSpec) Max() int {
	return s.DiceCount*s.FaceCount + s.Modifier
}
