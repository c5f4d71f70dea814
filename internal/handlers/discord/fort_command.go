package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/services/guild"
)

// FortCommand handles the /fort command
type FortCommand struct {
	BaseCommand
	bot *Bot
}

// NewFortCommand creates a new fort command handler
func NewFortCommand(bot *Bot) *FortCommand {
	altOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "alt",
		Description: "Alt character name",
	}

	return &FortCommand{
		BaseCommand: BaseCommand{
			Name:        "fort",
			Description: "Fort attendance commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mark",
					Description: "Record fort attendance for today, or withdraw it",
					Options:     []*discordgo.ApplicationCommandOption{altOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "check",
					Description: "Show your attendance count",
					Options:     []*discordgo.ApplicationCommandOption{altOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "report",
					Description: "Show everyone's attendance counts",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Discard all attendance data for this guild",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster",
					Description: "Show the ranked fort roster",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the fort command
func (c *FortCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "mark":
		return c.handleMark(s, i, optionString(sub.Options, "alt"))
	case "check":
		return c.handleCheck(s, i, optionString(sub.Options, "alt"))
	case "report":
		return c.handleReport(s, i)
	case "reset":
		return c.handleReset(s, i)
	case "roster":
		return c.handleRoster(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleMark records attendance, or withdraws it on a repeat mark.
func (c *FortCommand) handleMark(s *discordgo.Session, i *discordgo.InteractionCreate, alt string) error {
	ctx := context.Background()
	identity := identityFromInteraction(i, alt)

	_, err := c.bot.guildService.MarkFort(ctx, &guild.MarkFortInput{
		ChannelID: i.ChannelID,
		Identity:  identity,
	})
	if errors.Is(err, models.ErrAlreadyMarked) {
		if _, unmarkErr := c.bot.guildService.UnmarkFort(ctx, &guild.UnmarkFortInput{
			ChannelID: i.ChannelID,
			Identity:  identity,
		}); unmarkErr != nil {
			return RespondWithError(s, i, c.bot.logger, unmarkErr)
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Fort attendance withdrawn for %s.", identity.DisplayName()))
	}
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Fort attendance recorded for %s. 🏰", identity.DisplayName()))
}

func (c *FortCommand) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate, alt string) error {
	identity := identityFromInteraction(i, alt)

	status, err := c.bot.guildService.FortStatus(context.Background(), &guild.FortStatusInput{
		ChannelID: i.ChannelID,
		Identity:  identity,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	if status.MarkedToday {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s: %d fort days, including today.",
			identity.DisplayName(), status.History+1))
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s: %d fort days.", identity.DisplayName(), status.History))
}

func (c *FortCommand) handleReport(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.bot.guildService.FortReport(context.Background(), &guild.FortReportInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	// The report is for the whole channel, not just the caller
	return RespondWithMessage(s, i, renderFortReport(output.Records))
}

func (c *FortCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.bot.guildService.ResetFort(context.Background(), &guild.ResetFortInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Fort attendance for %s wiped.", output.Guild.Title))
}

func (c *FortCommand) handleRoster(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.bot.rosterClient == nil {
		return RespondWithEphemeralMessage(s, i, "No fort roster source is configured.")
	}

	output, err := c.bot.rosterClient.GetFortRoster(context.Background())
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithMessage(s, i, renderFortRoster(output.Entries))
}
