package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wangandai/ascentbot/internal/services/guild"
)

// GuildCommand handles the /guild command
type GuildCommand struct {
	BaseCommand
	bot *Bot
}

// NewGuildCommand creates a new guild command handler
func NewGuildCommand(bot *Bot) *GuildCommand {
	return &GuildCommand{
		BaseCommand: BaseCommand{
			Name:        "guild",
			Description: "Guild administration commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "init",
					Description: "Start tracking this channel's guild",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Guild name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop tracking this channel's guild; state is kept",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "refresh",
					Description: "Re-render the pinned summary message",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resethour",
					Description: "Set the hour the daily reset runs",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hour",
							Description: "Hour of day, 0-23",
							Required:    true,
						},
					},
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the guild command
func (c *GuildCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "init":
		return c.handleInit(s, i, optionString(sub.Options, "title"))
	case "stop":
		return c.handleStop(s, i)
	case "refresh":
		return c.handleRefresh(s, i)
	case "resethour":
		return c.handleResetHour(s, i, optionInt(sub.Options, "hour", -1))
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *GuildCommand) handleInit(s *discordgo.Session, i *discordgo.InteractionCreate, title string) error {
	ctx := context.Background()

	output, err := c.bot.guildService.InitGuild(ctx, &guild.InitGuildInput{
		ChannelID: i.ChannelID,
		Title:     title,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	c.bot.refreshSummary(ctx, output.Guild)

	if output.Reactivated {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Guild %s reactivated, previous rosters restored.", output.Guild.Title))
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Guild %s initialized.", output.Guild.Title))
}

func (c *GuildCommand) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.bot.guildService.StopGuild(context.Background(), &guild.StopGuildInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Guild %s stopped. `/guild init` brings it back with its state intact.", output.Guild.Title))
}

func (c *GuildCommand) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.bot.guildService.GetGuild(ctx, &guild.GetGuildInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	if err := c.bot.RefreshPinnedSummary(ctx, output.Guild); err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}
	return RespondWithEphemeralMessage(s, i, "Summary refreshed.")
}

func (c *GuildCommand) handleResetHour(s *discordgo.Session, i *discordgo.InteractionCreate, hour int) error {
	output, err := c.bot.guildService.SetDailyResetHour(context.Background(), &guild.SetDailyResetHourInput{
		ChannelID: i.ChannelID,
		Hour:      hour,
	})
	if err != nil {
		return RespondWithError(s, i, c.bot.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Daily reset now runs at %02d:00.", output.Guild.ResetHour()))
}
