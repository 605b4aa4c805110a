package dice

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rolld/internal/common/clock"
	"github.com/KirkDiggler/rolld/internal/common/logger"
	"github.com/KirkDiggler/rolld/internal/common/uuid"
	diceRoller "github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/models"
	"github.com/KirkDiggler/rolld/internal/notation"
	historyRepo "github.com/KirkDiggler/rolld/internal/repositories/roll_history"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	diceRoller    diceRoller.Roller
	historyRepo   historyRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
	maxDiceCount  int
}

// New creates a new dice service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.MaxDiceCount < 0 {
		return nil, ErrNegativeMaxDice
	}

	s := &service{
		diceRoller:    cfg.DiceRoller,
		historyRepo:   cfg.HistoryRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.OrNop(cfg.Logger),
		maxDiceCount:  cfg.MaxDiceCount,
	}

	if s.maxDiceCount == 0 {
		s.maxDiceCount = DefaultMaxDiceCount
	}

	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.uuidGenerator == nil {
		s.uuidGenerator = uuid.New()
	}

	return s, nil
}

// parse normalizes args and caps the dice count. Evaluation holds the dice
// roller for every die, so an unbounded count would stall all other rolls.
func (s *service) parse(args []notation.Arg) (models.RollSpec, error) {
	spec, err := notation.Parse(args...)
	if err != nil {
		return models.RollSpec{}, err
	}

	if spec.DiceCount > s.maxDiceCount {
		return models.RollSpec{}, fmt.Errorf("%w: cannot roll more than %d dice (got %d)", notation.ErrInvalidRange, s.maxDiceCount, spec.DiceCount)
	}

	return spec, nil
}

// Roll parses the arguments and evaluates them once
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	spec, err := s.parse(input.Args)
	if err != nil {
		return nil, err
	}

	output := &RollOutput{
		Value:    s.diceRoller.Evaluate(spec),
		Notation: notation.Render(spec),
		Spec:     spec,
	}

	s.logger.Debug("rolled dice",
		zap.String("notation", output.Notation),
		zap.Int("value", output.Value),
		zap.String("channel_id", input.ChannelID),
		zap.String("user_id", input.UserID),
	)

	if s.historyRepo == nil || input.ChannelID == "" {
		return output, nil
	}

	roll := &models.Roll{
		ID:        s.uuidGenerator.NewUUID(),
		Notation:  output.Notation,
		Spec:      spec,
		Value:     output.Value,
		ChannelID: input.ChannelID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Timestamp: s.clock.Now(),
	}

	// The roll already happened, a failed write only loses the history entry
	if err := s.historyRepo.SaveRoll(ctx, &historyRepo.SaveRollInput{Roll: roll}); err != nil {
		s.logger.Warn("failed to record roll",
			zap.String("roll_id", roll.ID),
			zap.String("channel_id", roll.ChannelID),
			zap.Error(err),
		)
		return output, nil
	}

	output.Roll = roll
	return output, nil
}

// CreateRoller parses the arguments once and binds them to a Roller
func (s *service) CreateRoller(ctx context.Context, input *CreateRollerInput) (*CreateRollerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	spec, err := s.parse(input.Args)
	if err != nil {
		return nil, err
	}

	return &CreateRollerOutput{
		Roller: &Roller{
			spec:     spec,
			notation: notation.Render(spec),
			dice:     s.diceRoller,
		},
	}, nil
}

// ParseNotation normalizes the arguments without rolling
func (s *service) ParseNotation(ctx context.Context, input *ParseNotationInput) (*ParseNotationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	spec, err := s.parse(input.Args)
	if err != nil {
		return nil, err
	}

	return &ParseNotationOutput{
		Spec:     spec,
		Notation: notation.Render(spec),
	}, nil
}

// GetHistory returns the recent rolls of a channel
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.historyRepo == nil {
		return nil, ErrHistoryDisabled
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	output, err := s.historyRepo.GetRecentRolls(ctx, &historyRepo.GetRecentRollsInput{
		ChannelID: input.ChannelID,
		UserID:    input.UserID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get roll history: %w", err)
	}

	return &GetHistoryOutput{
		Rolls: output.Rolls,
	}, nil
}
