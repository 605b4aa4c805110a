// Package dice provides the random side of rolling: single dice and whole
// roll specs.
package dice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/rolld/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/rolld/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int

	// Evaluate sums DiceCount rolls of a FaceCount sided die and adds the modifier
	Evaluate(spec models.RollSpec) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandRoller is a Roller backed by math/rand. It is safe for concurrent use.
type RandRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// Evaluate rolls every die in spec and returns the total with the modifier
// applied. The result lies in [spec.Min(), spec.Max()].
func (r *RandRoller) Evaluate(spec models.RollSpec) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum := 0
	for i := 0; i < spec.DiceCount; i++ {
		sum += r.random.Intn(spec.FaceCount) + 1
	}

	return sum + spec.Modifier
}
