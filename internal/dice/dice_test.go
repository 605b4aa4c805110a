package dice

import (
	"sync"
	"testing"

	"github.com/KirkDiggler/rolld/internal/models"
	"github.com/stretchr/testify/suite"
)

type RollerTestSuite struct {
	suite.Suite
	roller *RandRoller
}

func (s *RollerTestSuite) SetupTest() {
	s.roller = New(&Config{Seed: 42})
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestRollStaysInRange() {
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		value := s.roller.Roll(6)
		s.GreaterOrEqual(value, 1)
		s.LessOrEqual(value, 6)
		seen[value] = true
	}

	// 1000 rolls of a d6 should show every face
	s.Len(seen, 6)
}

func (s *RollerTestSuite) TestRollDefaultsToSixSides() {
	for i := 0; i < 100; i++ {
		value := s.roller.Roll(0)
		s.GreaterOrEqual(value, 1)
		s.LessOrEqual(value, 6)
	}
}

func (s *RollerTestSuite) TestEvaluateStaysInRange() {
	specs := []models.RollSpec{
		{DiceCount: 1, FaceCount: 6},
		{DiceCount: 2, FaceCount: 6, Modifier: 3},
		{DiceCount: 3, FaceCount: 7, Modifier: -2},
		{DiceCount: 5, FaceCount: 1, Modifier: -10},
		{DiceCount: 10, FaceCount: 100},
	}

	for _, spec := range specs {
		for i := 0; i < 1000; i++ {
			value := s.roller.Evaluate(spec)
			s.GreaterOrEqual(value, spec.Min())
			s.LessOrEqual(value, spec.Max())
		}
	}
}

func (s *RollerTestSuite) TestEvaluateSingleFacedDiceIsConstant() {
	spec := models.RollSpec{DiceCount: 4, FaceCount: 1, Modifier: 2}
	s.Equal(6, s.roller.Evaluate(spec))
}

func (s *RollerTestSuite) TestSameSeedSameSequence() {
	other := New(&Config{Seed: 42})
	spec := models.RollSpec{DiceCount: 3, FaceCount: 20, Modifier: 1}

	for i := 0; i < 50; i++ {
		s.Equal(s.roller.Evaluate(spec), other.Evaluate(spec))
	}
}

func (s *RollerTestSuite) TestNilConfigIsTimeSeeded() {
	roller := New(nil)
	value := roller.Roll(20)
	s.GreaterOrEqual(value, 1)
	s.LessOrEqual(value, 20)
}

func (s *RollerTestSuite) TestConcurrentEvaluate() {
	spec := models.RollSpec{DiceCount: 2, FaceCount: 6, Modifier: 3}

	var wg sync.WaitGroup
	results := make(chan int, 800)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				results <- s.roller.Evaluate(spec)
			}
		}()
	}
	wg.Wait()
	close(results)

	for value := range results {
		s.GreaterOrEqual(value, 5)
		s.LessOrEqual(value, 15)
	}
}
