package dice

import (
	diceRoller "github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/models"
)

// Roller re-rolls one fixed spec. It holds no mutable state, so a Roller can
// be shared between goroutines as long as its dice roller can.
type Roller struct {
	spec     models.RollSpec
	notation string
	dice     diceRoller.Roller
}

// Roll evaluates the captured spec and returns a fresh total
func (r *Roller) Roll() int {
	return r.dice.Evaluate(r.spec)
}

// Notation returns the canonical notation rendered when the roller was created
func (r *Roller) Notation() string {
	return r.notation
}

// Spec returns the captured spec
func (r *Roller) Spec() models.RollSpec {
	return r.spec
}

// String implements fmt.Stringer
func (r *Roller) String() string {
	return r.notation
}
