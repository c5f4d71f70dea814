package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/wangandai/ascentbot/internal/common/clock"
	"github.com/wangandai/ascentbot/internal/common/uuid"
	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/services/guild"
	"github.com/wangandai/ascentbot/internal/services/roster"
)

// Button custom IDs. The expedition IDs are prefixes joined with the
// expedition slug.
const (
	ButtonExpeditionJoin  = "exped_join:"
	ButtonExpeditionReady = "exped_ready:"
	ButtonFortMark        = "fort_mark"
	ButtonFortCheck       = "fort_check"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	guildService guild.Service
	rosterClient roster.Client
	clock        clock.Clock
	uuider       uuid.UUID
	logger       zerolog.Logger
	config       *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Guild service
	GuildService guild.Service

	// Roster client; optional, /fort roster is disabled without it
	RosterClient roster.Client

	// Clock pinned to the deployment zone
	Clock clock.Clock

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GuildService == nil {
		return nil, errors.New("guild service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		guildService: cfg.GuildService,
		rosterClient: cfg.RosterClient,
		clock:        cfg.Clock,
		uuider:       uuid.New(),
		logger:       cfg.Logger.With().Str("component", "discord").Logger(),
		config:       cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewGuildCommand(b),
		NewExpedCommand(b),
		NewFortCommand(b),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided the command is registered for that guild
	// only; global registration takes up to an hour to propagate
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions. Every interaction gets a
// correlation ID so its log lines can be tied together.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := b.logger.With().
		Str("interaction_id", b.uuider.NewUUID()).
		Str("channel_id", i.ChannelID).
		Logger()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				logger.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			logger.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction routes button clicks by custom ID. Expedition
// buttons carry the slug after the prefix.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, ButtonExpeditionJoin):
		return b.handleExpeditionJoinButton(s, i, strings.TrimPrefix(customID, ButtonExpeditionJoin))
	case strings.HasPrefix(customID, ButtonExpeditionReady):
		return b.handleExpeditionReadyButton(s, i, strings.TrimPrefix(customID, ButtonExpeditionReady))
	case customID == ButtonFortMark:
		return b.handleFortMarkButton(s, i)
	case customID == ButtonFortCheck:
		return b.handleFortCheckButton(s, i)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleExpeditionJoinButton toggles membership: a second click on the same
// button checks the member back out.
func (b *Bot) handleExpeditionJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, slug string) error {
	ctx := context.Background()
	identity := identityFromInteraction(i, "")

	checkIn, err := b.guildService.CheckIn(ctx, &guild.CheckInInput{
		ChannelID: i.ChannelID,
		Title:     slug,
		Identity:  identity,
	})
	if errors.Is(err, models.ErrAlreadyCheckedIn) {
		checkOut, outErr := b.guildService.CheckOut(ctx, &guild.CheckOutInput{
			ChannelID: i.ChannelID,
			Title:     slug,
			Identity:  identity,
		})
		if outErr != nil {
			return RespondWithError(s, i, b.logger, outErr)
		}
		b.refreshSummary(ctx, checkOut.Guild)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You left %s.", checkOut.Expedition.Title))
	}
	if err != nil {
		return RespondWithError(s, i, b.logger, err)
	}

	b.refreshSummary(ctx, checkIn.Guild)
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You joined %s (%s).",
		checkIn.Expedition.Title, renderHumanTime(checkIn.Expedition.TimeOfDay())))
}

// handleExpeditionReadyButton toggles the ready mark and re-renders the
// reminder message in place.
func (b *Bot) handleExpeditionReadyButton(s *discordgo.Session, i *discordgo.InteractionCreate, slug string) error {
	ctx := context.Background()

	output, err := b.guildService.ToggleReady(ctx, &guild.ToggleReadyInput{
		ChannelID: i.ChannelID,
		Title:     slug,
		Identity:  identityFromInteraction(i, ""),
	})
	if err != nil {
		return RespondWithError(s, i, b.logger, err)
	}

	content := renderExpeditionReminder(output.Expedition)
	components := reminderComponents(output.Expedition)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
}

// handleFortMarkButton toggles today's fort attendance.
func (b *Bot) handleFortMarkButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	identity := identityFromInteraction(i, "")

	_, err := b.guildService.MarkFort(ctx, &guild.MarkFortInput{
		ChannelID: i.ChannelID,
		Identity:  identity,
	})
	if errors.Is(err, models.ErrAlreadyMarked) {
		if _, unmarkErr := b.guildService.UnmarkFort(ctx, &guild.UnmarkFortInput{
			ChannelID: i.ChannelID,
			Identity:  identity,
		}); unmarkErr != nil {
			return RespondWithError(s, i, b.logger, unmarkErr)
		}
		return RespondWithEphemeralMessage(s, i, "Fort attendance withdrawn for today.")
	}
	if err != nil {
		return RespondWithError(s, i, b.logger, err)
	}

	return RespondWithEphemeralMessage(s, i, "Fort attendance recorded. 🏰")
}

// handleFortCheckButton replies with the caller's attendance count.
func (b *Bot) handleFortCheckButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	status, err := b.guildService.FortStatus(ctx, &guild.FortStatusInput{
		ChannelID: i.ChannelID,
		Identity:  identityFromInteraction(i, ""),
	})
	if err != nil {
		return RespondWithError(s, i, b.logger, err)
	}

	total := status.History
	line := fmt.Sprintf("Your fort count: %d.", total)
	if status.MarkedToday {
		line = fmt.Sprintf("Your fort count: %d, including today.", total+1)
	}
	return RespondWithEphemeralMessage(s, i, line)
}

// SendExpeditionReminder posts the reminder message with the ready button.
// It implements scheduler.Notifier.
func (b *Bot) SendExpeditionReminder(ctx context.Context, g *models.Guild, e *models.Expedition) error {
	_, err := b.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content:    renderExpeditionReminder(e),
		Components: reminderComponents(e),
	})
	if err != nil {
		return fmt.Errorf("failed to send reminder for %s: %w", e.Title, err)
	}
	return nil
}

// RefreshPinnedSummary re-renders the guild's standing summary message,
// editing in place when possible. The first refresh (or a deleted pin)
// sends and pins a fresh message and records its ID.
func (b *Bot) RefreshPinnedSummary(ctx context.Context, g *models.Guild) error {
	content := renderGuildSummary(g, b.clock.Now())
	components := summaryComponents(g, b.clock.Now())

	if pinned := g.PinnedMessage(); pinned != "" {
		_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    g.ChannelID,
			ID:         pinned,
			Content:    &content,
			Components: &components,
		})
		if err == nil {
			return nil
		}
		b.logger.Warn().Err(err).Str("channel_id", g.ChannelID).Msg("failed to edit pinned summary, sending a new one")
	}

	msg, err := b.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content:    content,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("failed to send summary message: %w", err)
	}

	if err := b.session.ChannelMessagePin(g.ChannelID, msg.ID); err != nil {
		b.logger.Warn().Err(err).Str("channel_id", g.ChannelID).Msg("failed to pin summary message")
	}

	if _, err := b.guildService.SetPinnedMessage(ctx, &guild.SetPinnedMessageInput{
		ChannelID: g.ChannelID,
		MessageID: msg.ID,
	}); err != nil {
		return fmt.Errorf("failed to record pinned message: %w", err)
	}
	return nil
}

// refreshSummary is the fire-and-forget variant used after mutations;
// failures are logged and the interaction reply still goes out.
func (b *Bot) refreshSummary(ctx context.Context, g *models.Guild) {
	if err := b.RefreshPinnedSummary(ctx, g); err != nil {
		b.logger.Error().Err(err).Str("channel_id", g.ChannelID).Msg("failed to refresh summary")
	}
}
