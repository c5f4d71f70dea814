package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/wangandai/ascentbot/internal/models"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithMessage sends a text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEphemeralMessage sends a reply only the acting user sees.
// Confirmation chatter goes through this so channels stay uncluttered.
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithError converts a failed operation into a user reply. Domain
// errors surface their own message; anything else is logged in full and
// replaced with a generic reply so internals never reach the channel.
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, logger zerolog.Logger, err error) error {
	var guildErr models.GuildError
	if errors.As(err, &guildErr) {
		return RespondWithEphemeralMessage(s, i, guildErr.Error())
	}

	logger.Error().Err(err).Msg("unexpected error handling command")
	return RespondWithEphemeralMessage(s, i, "Something went wrong, try again later.")
}

// optionString pulls a named string option out of a subcommand's options,
// returning "" when absent.
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// optionInt pulls a named integer option, returning the fallback when absent.
func optionInt(options []*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	for _, opt := range options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return fallback
}

// identityFromInteraction builds the acting identity. Label carries the
// optional alt-character name. DM interactions carry the user directly
// instead of a channel member.
func identityFromInteraction(i *discordgo.InteractionCreate, label string) models.Identity {
	user := i.User
	handle := ""
	if i.Member != nil {
		user = i.Member.User
		handle = i.Member.Nick
	}
	if user == nil {
		return models.Identity{Label: label}
	}
	if handle == "" {
		handle = user.Username
	}
	return models.Identity{
		ExternalID: user.ID,
		Handle:     handle,
		Label:      label,
	}
}
