package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/services/guild"
)

// ExpedCommand handles the /exped command
type ExpedCommand struct {
	BaseCommand
	bot *Bot
}

// NewExpedCommand creates a new exped command handler
func NewExpedCommand(bot *Bot) *ExpedCommand {
	teamOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "team",
			Description: "Expedition name",
			Required:    required,
		}
	}
	altOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "alt",
		Description: "Alt character name",
	}

	return &ExpedCommand{
		BaseCommand: BaseCommand{
			Name:        "exped",
			Description: "Expedition sign-up commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Create an expedition",
					Options: []*discordgo.ApplicationCommandOption{
						teamOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "time",
							Description: "Start time, HHMM (e.g. 2130)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Optional description",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete an expedition",
					Options:     []*discordgo.ApplicationCommandOption{teamOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename an expedition, keeping its rosters",
					Options: []*discordgo.ApplicationCommandOption{
						teamOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "newname",
							Description: "New expedition name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "time",
					Description: "Change an expedition's start time",
					Options: []*discordgo.ApplicationCommandOption{
						teamOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "time",
							Description: "Start time, HHMM (e.g. 2130)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "desc",
					Description: "Change an expedition's description",
					Options: []*discordgo.ApplicationCommandOption{
						teamOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "New description",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reg",
					Description: "Join an expedition, or leave it if already joined",
					Options:     []*discordgo.ApplicationCommandOption{teamOption(true), altOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "daily",
					Description: "Toggle a recurring sign-up that survives the daily reset",
					Options:     []*discordgo.ApplicationCommandOption{teamOption(true), altOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ready",
					Description: "Toggle your ready mark for an expedition",
					Options:     []*discordgo.ApplicationCommandOption{teamOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Show one expedition's roster",
					Options:     []*discordgo.ApplicationCommandOption{teamOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "viewall",
					Description: "Show all of today's expeditions",
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the exped command
func (c *ExpedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	team := optionString(sub.Options, "team")

	switch sub.Name {
	case "new":
		return c.handleNew(s, i, team, optionString(sub.Options, "time"), optionString(sub.Options, "description"))
	case "delete":
		return c.handleDelete(s, i, team)
	case "rename":
		return c.handleRename(s, i, team, optionString(sub.Options, "newname"))
	case "time":
		return c.handleTime(s, i, team, optionString(sub.Options, "time"))
	case "desc":
		return c.handleDesc(s, i, team, optionString(sub.Options, "description"))
	case "reg":
		return c.handleReg(s, i, team, optionString(sub.Options, "alt"))
	case "daily":
		return c.handleDaily(s, i, team, optionString(sub.Options, "alt"))
	case "ready":
		return c.handleReady(s, i, team)
	case "view":
		return c.handleView(s, i, team)
	case "viewall":
		return c.handleViewAll(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *ExpedCommand) handleNew(s *discordgo.Session, i *discordgo.InteractionCreate, team, startTime, description string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.CreateExpedition(ctx, &guild.CreateExpeditionInput{
		ChannelID:   i.ChannelID,
		Title:       team,
		Time:        startTime,
		Description: description,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Expedition %s created for %s.",
		output.Expedition.Title, renderHumanTime(output.Expedition.TimeOfDay())))
}

func (c *ExpedCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, team string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.DeleteExpedition(ctx, &guild.DeleteExpeditionInput{
		ChannelID: i.ChannelID,
		Title:     team,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Expedition %s deleted.", team))
}

func (c *ExpedCommand) handleRename(s *discordgo.Session, i *discordgo.InteractionCreate, team, newName string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.RenameExpedition(ctx, &guild.RenameExpeditionInput{
		ChannelID: i.ChannelID,
		OldTitle:  team,
		NewTitle:  newName,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Expedition renamed to %s.", output.Expedition.Title))
}

func (c *ExpedCommand) handleTime(s *discordgo.Session, i *discordgo.InteractionCreate, team, startTime string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.SetExpeditionTime(ctx, &guild.SetExpeditionTimeInput{
		ChannelID: i.ChannelID,
		Title:     team,
		Time:      startTime,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s now starts at %s.",
		output.Expedition.Title, renderHumanTime(output.Expedition.TimeOfDay())))
}

func (c *ExpedCommand) handleDesc(s *discordgo.Session, i *discordgo.InteractionCreate, team, description string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.SetExpeditionDescription(ctx, &guild.SetExpeditionDescriptionInput{
		ChannelID:   i.ChannelID,
		Title:       team,
		Description: description,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s description updated.", output.Expedition.Title))
}

// handleReg joins, or leaves on a repeat registration. Members register the
// same alt twice to undo a mistake.
func (c *ExpedCommand) handleReg(s *discordgo.Session, i *discordgo.InteractionCreate, team, alt string) error {
	ctx := context.Background()
	identity := identityFromInteraction(i, alt)

	checkIn, err := c.bot.guildService.CheckIn(ctx, &guild.CheckInInput{
		ChannelID: i.ChannelID,
		Title:     team,
		Identity:  identity,
	})
	if errors.Is(err, models.ErrAlreadyCheckedIn) {
		checkOut, outErr := c.bot.guildService.CheckOut(ctx, &guild.CheckOutInput{
			ChannelID: i.ChannelID,
			Title:     team,
			Identity:  identity,
		})
		if outErr != nil {
			return RespondWithError(s, i, c.bot.logger, outErr)
		}
		c.bot.refreshSummary(ctx, checkOut.Guild)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s left %s.", identity.DisplayName(), checkOut.Expedition.Title))
	}
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, checkIn.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s joined %s (%s).",
		identity.DisplayName(), checkIn.Expedition.Title, renderHumanTime(checkIn.Expedition.TimeOfDay())))
}

func (c *ExpedCommand) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate, team, alt string) error {
	ctx := context.Background()
	identity := identityFromInteraction(i, alt)

	output, err := c.bot.guildService.ToggleDaily(ctx, &guild.ToggleDailyInput{
		ChannelID: i.ChannelID,
		Title:     team,
		Identity:  identity,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	if output.Added {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s will be signed up for %s every day.",
			identity.DisplayName(), output.Expedition.Title))
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s is no longer a daily member of %s.",
		identity.DisplayName(), output.Expedition.Title))
}

func (c *ExpedCommand) handleReady(s *discordgo.Session, i *discordgo.InteractionCreate, team string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.ToggleReady(ctx, &guild.ToggleReadyInput{
		ChannelID: i.ChannelID,
		Title:     team,
		Identity:  identityFromInteraction(i, ""),
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	if output.Added {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Marked ready for %s.", output.Expedition.Title))
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Ready mark removed for %s.", output.Expedition.Title))
}

func (c *ExpedCommand) handleView(s *discordgo.Session, i *discordgo.InteractionCreate, team string) error {
	output, err := c.bot.guildService.GetGuild(context.Background(), &guild.GetGuildInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	e, err := output.Guild.Expedition(team)
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}
	return RespondWithEphemeralMessage(s, i, renderExpedition(e))
}

func (c *ExpedCommand) handleViewAll(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.bot.guildService.GetGuild(context.Background(), &guild.GetGuildInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, renderExpeditions(output.Guild, c.bot.clock.Now()))
}
