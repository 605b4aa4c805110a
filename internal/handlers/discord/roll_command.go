package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rolld/internal/notation"
	"github.com/KirkDiggler/rolld/internal/services/dice"
	"github.com/KirkDiggler/rolld/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommand and option names of /roll
const (
	subcommandNotation = "notation"
	subcommandNumbers  = "numbers"
	subcommandHistory  = "history"

	optionText   = "text"
	optionFirst  = "first"
	optionSecond = "second"
	optionThird  = "third"
	optionLimit  = "limit"
	optionMine   = "mine"
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	diceService      dice.Service
	messagingService messaging.Service
	logger           *zap.Logger
}

// NewRollCommand creates a new roll command handler
func NewRollCommand(diceService dice.Service, messagingService messaging.Service, logger *zap.Logger) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll some dice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandNotation,
					Description: "Roll dice notation like 2d6+3",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionText,
							Description: "Dice notation: [count]d[faces][+/-modifier]",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandNumbers,
					Description: "One number N rolls a dN, more are count, faces and modifier",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionFirst,
							Description: "Faces when alone, otherwise the number of dice",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionSecond,
							Description: "Faces per die",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionThird,
							Description: "Modifier added to the total",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandHistory,
					Description: "Show recent rolls in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionLimit,
							Description: "How many rolls to show",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        optionMine,
							Description: "Only show your own rolls",
						},
					},
				},
			},
		},
		diceService:      diceService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Missing subcommand")
	}

	response, err := c.respond(context.Background(), i, data.Options[0])
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, response)
}

// HandleReroll rolls the notation carried by a "Roll Again" button
func (c *RollCommand) HandleReroll(s *discordgo.Session, i *discordgo.InteractionCreate, rollNotation string) error {
	userID, userName := interactionUser(i)

	response, err := c.rollResponse(context.Background(), &dice.RollInput{
		Args:      []notation.Arg{notation.Text(rollNotation)},
		ChannelID: i.ChannelID,
		UserID:    userID,
		UserName:  userName,
	}, rollNotation)
	if err != nil {
		return err
	}

	return s.InteractionRespond(i.Interaction, response)
}

// respond builds the response for one /roll subcommand
func (c *RollCommand) respond(ctx context.Context, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	userID, userName := interactionUser(i)

	switch sub.Name {
	case subcommandNotation:
		text := ""
		if opt := findOption(sub.Options, optionText); opt != nil {
			text = strings.TrimSpace(opt.StringValue())
		}
		return c.rollResponse(ctx, &dice.RollInput{
			Args:      []notation.Arg{notation.Text(text)},
			ChannelID: i.ChannelID,
			UserID:    userID,
			UserName:  userName,
		}, text)

	case subcommandNumbers:
		args := positionalArgs(sub.Options)
		return c.rollResponse(ctx, &dice.RollInput{
			Args:      args,
			ChannelID: i.ChannelID,
			UserID:    userID,
			UserName:  userName,
		}, describeArgs(args))

	case subcommandHistory:
		input := &dice.GetHistoryInput{
			ChannelID: i.ChannelID,
		}
		if opt := findOption(sub.Options, optionLimit); opt != nil {
			input.Limit = int(opt.IntValue())
		}
		if opt := findOption(sub.Options, optionMine); opt != nil && opt.BoolValue() {
			input.UserID = userID
		}
		return c.historyResponse(ctx, input)

	default:
		return errorResponse("Error", fmt.Sprintf("Unknown subcommand: %s", sub.Name)), nil
	}
}

// rollResponse rolls and renders the result. Bad input is answered with an
// ephemeral explanation rather than returned as an error.
func (c *RollCommand) rollResponse(ctx context.Context, input *dice.RollInput, rawInput string) (*discordgo.InteractionResponse, error) {
	output, err := c.diceService.Roll(ctx, input)
	if err != nil {
		c.logger.Debug("roll rejected", zap.String("input", rawInput), zap.Error(err))
		return c.errorResponse(ctx, err, rawInput)
	}

	message, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: input.UserName,
		Notation:   output.Notation,
		Spec:       output.Spec,
		Value:      output.Value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build roll message: %w", err)
	}

	return renderRollResponse(output.Notation, message), nil
}

func (c *RollCommand) historyResponse(ctx context.Context, input *dice.GetHistoryInput) (*discordgo.InteractionResponse, error) {
	output, err := c.diceService.GetHistory(ctx, input)
	if err != nil {
		if errors.Is(err, dice.ErrHistoryDisabled) {
			return errorResponse("Roll History", "Roll history is turned off for this bot."), nil
		}
		c.logger.Error("failed to get roll history", zap.String("channel_id", input.ChannelID), zap.Error(err))
		return c.errorResponse(ctx, err, "")
	}

	message, err := c.messagingService.GetHistoryMessage(ctx, &messaging.GetHistoryMessageInput{
		Rolls: output.Rolls,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build history message: %w", err)
	}

	return renderHistoryResponse(message), nil
}

func (c *RollCommand) errorResponse(ctx context.Context, cause error, rawInput string) (*discordgo.InteractionResponse, error) {
	message, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:   cause,
		Input: rawInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build error message: %w", err)
	}

	return errorResponse(message.Title, message.Message), nil
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// positionalArgs maps the numbers subcommand onto the parser's positional
// arguments. Options the user left out stay omitted, which is not the same
// as zero.
func positionalArgs(options []*discordgo.ApplicationCommandInteractionDataOption) []notation.Arg {
	names := []string{optionFirst, optionSecond, optionThird}
	args := make([]notation.Arg, len(names))
	for idx, name := range names {
		if opt := findOption(options, name); opt != nil {
			args[idx] = notation.Int(int(opt.IntValue()))
		}
	}
	return args
}

func describeArgs(args []notation.Arg) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.IsOmitted() {
			continue
		}
		parts = append(parts, arg.String())
	}
	return strings.Join(parts, " ")
}
