package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/notation"
)

// service implements the Service interface
type service struct {
	// Dice roller for selecting random messages
	dice dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	if config.DiceRoller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &service{
		dice: config.DiceRoller,
	}, nil
}

// pick returns one of messages at random
func (s *service) pick(messages []string) string {
	return messages[s.dice.Roll(len(messages))-1]
}

// GetRollResultMessage returns a message for a roll result
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	if name == "" {
		name = "Someone"
	}

	title := fmt.Sprintf("%s rolled %s", name, input.Notation)
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var flavor string
	spec := input.Spec

	// A spec with a single outcome is neither lucky nor unlucky
	switch {
	case spec.Min() == spec.Max():
		flavor = "Only one way this could go."
	case input.Value == spec.Max():
		tone = ToneCelebration
		flavor = s.pick([]string{
			"Maximum roll! The dice gods smile upon you.",
			"Can't do better than that!",
			"Every die came up on top.",
			"Perfect roll!",
		})
	case input.Value == spec.Min():
		tone = ToneCommiseration
		flavor = s.pick([]string{
			"The lowest roll possible. Ouch.",
			"Snake eyes would be jealous.",
			"The dice have chosen violence, against you.",
			"It can only go up from here.",
		})
	case tone == ToneFunny:
		flavor = s.pick([]string{
			"The dice have spoken.",
			"Not bad, not great.",
			"Could be worse. Could be better.",
		})
	}

	message := fmt.Sprintf("🎲 **%d**", input.Value)
	if flavor != "" {
		message = fmt.Sprintf("%s\n%s", message, flavor)
	}

	return &GetRollResultMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var title, hint string
	switch {
	case errors.Is(input.Err, notation.ErrInvalidArgument):
		title = "That's not dice notation"
		hint = "Try something like `2d6+3`, `d20` or `4d`."
	case errors.Is(input.Err, notation.ErrInvalidRange):
		title = "Those dice can't exist"
		hint = "You need at least one die with at least one face, and not too many dice."
	default:
		title = "Something went wrong"
		hint = "The dice rolled off the table. Try again in a moment."
	}

	lines := []string{hint}
	if input.Input != "" {
		lines = append(lines, fmt.Sprintf("You asked for: `%s`", input.Input))
	}
	lines = append(lines, fmt.Sprintf("Details: %v", input.Err))

	return &GetErrorMessageOutput{
		Title:   title,
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetHistoryMessage returns a listing of recent rolls
func (s *service) GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Rolls) == 0 {
		return &GetHistoryMessageOutput{
			Title:   "Roll History",
			Message: "No rolls yet. Use `/roll` to get started!",
		}, nil
	}

	var b strings.Builder
	for i, roll := range input.Rolls {
		name := roll.UserName
		if name == "" {
			name = "Someone"
		}

		fmt.Fprintf(&b, "%d. %s rolled %s for **%d**", i+1, name, roll.Notation, roll.Value)
		if !roll.Timestamp.IsZero() {
			fmt.Fprintf(&b, " <t:%d:R>", roll.Timestamp.Unix())
		}
		b.WriteString("\n")
	}

	return &GetHistoryMessageOutput{
		Title:   fmt.Sprintf("Last %d Rolls", len(input.Rolls)),
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}
