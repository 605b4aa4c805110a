package dice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/rolld/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/rolld/internal/common/uuid/mocks"
	diceRoller "github.com/KirkDiggler/rolld/internal/dice"
	diceMocks "github.com/KirkDiggler/rolld/internal/dice/mocks"
	"github.com/KirkDiggler/rolld/internal/models"
	"github.com/KirkDiggler/rolld/internal/notation"
	historyRepo "github.com/KirkDiggler/rolld/internal/repositories/roll_history"
	historyMocks "github.com/KirkDiggler/rolld/internal/repositories/roll_history/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiceServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockDiceRoller  *diceMocks.MockRoller
	mockHistoryRepo *historyMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	diceService     Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testRollID    string
	testChannelID string
	testUserID    string
	testUserName  string
	testSpec      models.RollSpec
}

func (s *DiceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockHistoryRepo = historyMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testRollID = "test-roll-id"
	s.testChannelID = "test-channel-id"
	s.testUserID = "test-user-id"
	s.testUserName = "Test User"
	s.testSpec = models.RollSpec{DiceCount: 2, FaceCount: 6, Modifier: 3}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		HistoryRepo:   s.mockHistoryRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.diceService = svc
}

func (s *DiceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiceServiceTestSuite))
}

func (s *DiceServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDiceRoller)

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
	s.NotNil(svc.clock)
	s.NotNil(svc.uuidGenerator)
	s.NotNil(svc.logger)
}

func (s *DiceServiceTestSuite) TestRollRecordsHistory() {
	s.mockDiceRoller.EXPECT().Evaluate(s.testSpec).Return(11)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID)

	expectedRoll := &models.Roll{
		ID:        s.testRollID,
		Notation:  "2d6+3",
		Spec:      s.testSpec,
		Value:     11,
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
		Timestamp: s.testTime,
	}
	s.mockHistoryRepo.EXPECT().SaveRoll(s.ctx, &historyRepo.SaveRollInput{
		Roll: expectedRoll,
	}).Return(nil)

	output, err := s.diceService.Roll(s.ctx, &RollInput{
		Args:      []notation.Arg{notation.Text("2d6+3")},
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		UserName:  s.testUserName,
	})
	s.Require().NoError(err)
	s.Equal(11, output.Value)
	s.Equal("2d6+3", output.Notation)
	s.Equal(s.testSpec, output.Spec)
	s.Equal(expectedRoll, output.Roll)
}

func (s *DiceServiceTestSuite) TestRollWithoutChannelSkipsHistory() {
	s.mockDiceRoller.EXPECT().Evaluate(models.RollSpec{DiceCount: 1, FaceCount: 20}).Return(17)

	output, err := s.diceService.Roll(s.ctx, &RollInput{
		Args: []notation.Arg{notation.Int(20)},
	})
	s.Require().NoError(err)
	s.Equal(17, output.Value)
	s.Equal("1d20", output.Notation)
	s.Nil(output.Roll)
}

func (s *DiceServiceTestSuite) TestRollDefaults() {
	s.mockDiceRoller.EXPECT().Evaluate(models.RollSpec{DiceCount: 1, FaceCount: 6}).Return(4)

	output, err := s.diceService.Roll(s.ctx, &RollInput{})
	s.Require().NoError(err)
	s.Equal(4, output.Value)
	s.Equal("1d6", output.Notation)
}

func (s *DiceServiceTestSuite) TestRollHistoryFailureStillRolls() {
	s.mockDiceRoller.EXPECT().Evaluate(s.testSpec).Return(9)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRollID)
	s.mockHistoryRepo.EXPECT().SaveRoll(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	output, err := s.diceService.Roll(s.ctx, &RollInput{
		Args:      []notation.Arg{notation.Int(2), notation.Int(6), notation.Int(3)},
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal(9, output.Value)
	s.Nil(output.Roll)
}

func (s *DiceServiceTestSuite) TestRollInvalidArguments() {
	_, err := s.diceService.Roll(s.ctx, &RollInput{
		Args: []notation.Arg{notation.Text("blabla")},
	})
	s.ErrorIs(err, notation.ErrInvalidArgument)

	_, err = s.diceService.Roll(s.ctx, &RollInput{
		Args: []notation.Arg{notation.Int(-10), notation.Int(10)},
	})
	s.ErrorIs(err, notation.ErrInvalidRange)

	_, err = s.diceService.Roll(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *DiceServiceTestSuite) TestCreateRoller() {
	output, err := s.diceService.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Text("2d6+3")},
	})
	s.Require().NoError(err)

	roller := output.Roller
	s.Equal("2d6+3", roller.Notation())
	s.Equal("2d6+3", roller.String())
	s.Equal(s.testSpec, roller.Spec())

	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Evaluate(s.testSpec).Return(5),
		s.mockDiceRoller.EXPECT().Evaluate(s.testSpec).Return(15),
	)
	s.Equal(5, roller.Roll())
	s.Equal(15, roller.Roll())
}

func (s *DiceServiceTestSuite) TestCreateRollerFromPositional() {
	output, err := s.diceService.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Int(3), notation.Int(12), notation.Int(-5)},
	})
	s.Require().NoError(err)
	s.Equal("3d12-5", output.Roller.Notation())
}

func (s *DiceServiceTestSuite) TestCreateRollerFailsAtCreation() {
	_, err := s.diceService.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Int(10), notation.Int(-10)},
	})
	s.ErrorIs(err, notation.ErrInvalidRange)

	_, err = s.diceService.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Text("1f20+10")},
	})
	s.ErrorIs(err, notation.ErrInvalidArgument)
}

func (s *DiceServiceTestSuite) TestRollerWithRealDice() {
	svc, err := New(&Config{DiceRoller: diceRoller.New(&diceRoller.Config{Seed: 7})})
	s.Require().NoError(err)

	output, err := svc.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Text("2d6+3")},
	})
	s.Require().NoError(err)
	roller := output.Roller
	s.Equal("2d6+3", roller.Notation())

	var wg sync.WaitGroup
	results := make(chan int, 10000)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2500; i++ {
				results <- roller.Roll()
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for value := range results {
		count++
		s.GreaterOrEqual(value, 5)
		s.LessOrEqual(value, 15)
	}
	s.Equal(10000, count)
}

func (s *DiceServiceTestSuite) TestParseNotation() {
	output, err := s.diceService.ParseNotation(s.ctx, &ParseNotationInput{
		Args: []notation.Arg{notation.Text("2D6")},
	})
	s.Require().NoError(err)
	s.Equal(models.RollSpec{DiceCount: 2, FaceCount: 6}, output.Spec)
	s.Equal("2d6", output.Notation)

	_, err = s.diceService.ParseNotation(s.ctx, &ParseNotationInput{
		Args: []notation.Arg{notation.Text("2d6+")},
	})
	s.ErrorIs(err, notation.ErrInvalidArgument)
}

func (s *DiceServiceTestSuite) TestGetHistory() {
	rolls := []*models.Roll{
		{ID: "roll-2", Notation: "1d20", Value: 12, ChannelID: s.testChannelID},
		{ID: "roll-1", Notation: "2d6+3", Value: 8, ChannelID: s.testChannelID},
	}

	s.mockHistoryRepo.EXPECT().GetRecentRolls(s.ctx, &historyRepo.GetRecentRollsInput{
		ChannelID: s.testChannelID,
		Limit:     2,
	}).Return(&historyRepo.GetRecentRollsOutput{Rolls: rolls}, nil)

	output, err := s.diceService.GetHistory(s.ctx, &GetHistoryInput{
		ChannelID: s.testChannelID,
		Limit:     2,
	})
	s.Require().NoError(err)
	s.Equal(rolls, output.Rolls)
}

func (s *DiceServiceTestSuite) TestGetHistoryErrors() {
	_, err := s.diceService.GetHistory(s.ctx, &GetHistoryInput{})
	s.ErrorIs(err, ErrMissingChannel)

	repoErr := errors.New("redis down")
	s.mockHistoryRepo.EXPECT().GetRecentRolls(s.ctx, gomock.Any()).Return(nil, repoErr)
	_, err = s.diceService.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, repoErr)

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
	_, err = svc.GetHistory(s.ctx, &GetHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrHistoryDisabled)
}

func (s *DiceServiceTestSuite) TestRollRejectsTooManyDice() {
	// No Evaluate expectation: the roll must be refused before any die is thrown
	_, err := s.diceService.Roll(s.ctx, &RollInput{
		Args:      []notation.Arg{notation.Text("9999999999999d6")},
		ChannelID: s.testChannelID,
	})
	s.ErrorIs(err, notation.ErrInvalidRange)
	s.Contains(err.Error(), "1000")

	_, err = s.diceService.CreateRoller(s.ctx, &CreateRollerInput{
		Args: []notation.Arg{notation.Int(1001), notation.Int(6)},
	})
	s.ErrorIs(err, notation.ErrInvalidRange)

	_, err = s.diceService.ParseNotation(s.ctx, &ParseNotationInput{
		Args: []notation.Arg{notation.Text("1001d6")},
	})
	s.ErrorIs(err, notation.ErrInvalidRange)
}

func (s *DiceServiceTestSuite) TestRollAtDiceCap() {
	spec := models.RollSpec{DiceCount: DefaultMaxDiceCount, FaceCount: 6}
	s.mockDiceRoller.EXPECT().Evaluate(spec).Return(3500)

	output, err := s.diceService.Roll(s.ctx, &RollInput{
		Args: []notation.Arg{notation.Text("1000d6")},
	})
	s.Require().NoError(err)
	s.Equal(3500, output.Value)
}

func (s *DiceServiceTestSuite) TestCustomDiceCap() {
	_, err := New(&Config{DiceRoller: s.mockDiceRoller, MaxDiceCount: -1})
	s.ErrorIs(err, ErrNegativeMaxDice)

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller, MaxDiceCount: 10})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().Evaluate(models.RollSpec{DiceCount: 10, FaceCount: 6}).Return(35)
	output, err := svc.Roll(s.ctx, &RollInput{Args: []notation.Arg{notation.Text("10d6")}})
	s.Require().NoError(err)
	s.Equal(35, output.Value)

	_, err = svc.Roll(s.ctx, &RollInput{Args: []notation.Arg{notation.Text("11d6")}})
	s.ErrorIs(err, notation.ErrInvalidRange)
}

func (s *DiceServiceTestSuite) TestHugeRollDoesNotBlockOtherRolls() {
	roller := diceRoller.New(&diceRoller.Config{Seed: 7})
	svc, err := New(&Config{DiceRoller: roller})
	s.Require().NoError(err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Roll(s.ctx, &RollInput{Args: []notation.Arg{notation.Text("9999999999999d6")}})
		done <- err
	}()

	select {
	case err := <-done:
		s.ErrorIs(err, notation.ErrInvalidRange)
	case <-time.After(3 * time.Second):
		s.FailNow("huge roll was not rejected")
	}

	value := roller.Roll(6)
	s.GreaterOrEqual(value, 1)
	s.LessOrEqual(value, 6)
}
