package guild

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/repositories/storage"
)

// Config holds configuration for the guild service
type Config struct {
	// Storage is the blob store the registry round-trips through
	Storage storage.Repository

	// RegistryKey is the blob key, qualified by deployment mode
	RegistryKey string

	Logger zerolog.Logger
}

// registryDocument is the serialized form of the whole registry. Guild locks
// are unexported and never part of the blob.
type registryDocument struct {
	Guilds map[string]*models.Guild `json:"guilds"`
}

// service implements the Service interface
type service struct {
	storage     storage.Repository
	registryKey string
	logger      zerolog.Logger

	// mu guards the guilds map itself; each guild carries its own lock
	mu     sync.RWMutex
	guilds map[string]*models.Guild
}

// New creates a new guild service with an empty registry. Call Load to pull
// persisted state before serving commands.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Storage == nil {
		return nil, errors.New("storage repository cannot be nil")
	}
	if cfg.RegistryKey == "" {
		return nil, errors.New("registry key cannot be empty")
	}

	return &service{
		storage:     cfg.Storage,
		registryKey: cfg.RegistryKey,
		logger:      cfg.Logger,
		guilds:      map[string]*models.Guild{},
	}, nil
}

// Load replaces the in-memory registry with the persisted blob. A missing
// blob leaves the registry empty.
func (s *service) Load(ctx context.Context) error {
	output, err := s.storage.Load(ctx, &storage.LoadInput{Key: s.registryKey})
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if !output.Found {
		s.logger.Info().Str("key", s.registryKey).Msg("no registry blob found, starting empty")
		return nil
	}

	var doc registryDocument
	if err := json.Unmarshal(output.Blob, &doc); err != nil {
		return fmt.Errorf("failed to decode registry: %w", err)
	}

	guilds := doc.Guilds
	if guilds == nil {
		guilds = map[string]*models.Guild{}
	}
	for channelID, g := range guilds {
		g.Normalize()
		if g.ChannelID == "" {
			g.ChannelID = channelID
		}
	}

	s.mu.Lock()
	s.guilds = guilds
	s.mu.Unlock()

	s.logger.Info().Int("guilds", len(guilds)).Str("key", s.registryKey).Msg("registry loaded")
	return nil
}

// Save persists the whole registry under the configured key.
func (s *service) Save(ctx context.Context) error {
	s.mu.RLock()
	blob, err := json.Marshal(registryDocument{Guilds: s.guilds})
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}

	if err := s.storage.Save(ctx, &storage.SaveInput{Key: s.registryKey, Blob: blob}); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	return nil
}

// persist saves after a mutation. The mutation is already applied in memory
// and is deliberately not rolled back when the save fails.
func (s *service) persist(ctx context.Context, op string) error {
	if err := s.Save(ctx); err != nil {
		s.logger.Error().Err(err).Str("op", op).Msg("registry save failed after mutation")
		return err
	}
	return nil
}

// resolve returns the guild for a channel. Stopped guilds resolve only when
// includeInactive is set.
func (s *service) resolve(channelID string, includeInactive bool) (*models.Guild, error) {
	s.mu.RLock()
	g, ok := s.guilds[channelID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrGuildNotFound
	}
	if !g.IsActive() && !includeInactive {
		return nil, ErrGuildNotFound
	}
	return g, nil
}

// InitGuild creates a guild for a channel, or reactivates a stopped one.
func (s *service) InitGuild(ctx context.Context, input *InitGuildInput) (*InitGuildOutput, error) {
	s.mu.Lock()
	g, exists := s.guilds[input.ChannelID]
	if exists && g.IsActive() {
		s.mu.Unlock()
		return nil, ErrGuildAlreadyActive
	}

	reactivated := false
	if exists {
		g.Reactivate(input.Title)
		reactivated = true
	} else {
		g = models.NewGuild(input.Title, input.ChannelID)
		s.guilds[input.ChannelID] = g
	}
	s.mu.Unlock()

	if err := s.persist(ctx, "init_guild"); err != nil {
		return nil, err
	}
	return &InitGuildOutput{Guild: g, Reactivated: reactivated}, nil
}

// StopGuild marks a guild inactive without discarding its state.
func (s *service) StopGuild(ctx context.Context, input *StopGuildInput) (*StopGuildOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	g.Deactivate()
	if err := s.persist(ctx, "stop_guild"); err != nil {
		return nil, err
	}
	return &StopGuildOutput{Guild: g}, nil
}

// GetGuild resolves a guild by channel.
func (s *service) GetGuild(_ context.Context, input *GetGuildInput) (*GetGuildOutput, error) {
	g, err := s.resolve(input.ChannelID, input.IncludeInactive)
	if err != nil {
		return nil, err
	}
	return &GetGuildOutput{Guild: g}, nil
}

// ListGuilds returns all guilds in stable channel order.
func (s *service) ListGuilds(_ context.Context, input *ListGuildsInput) (*ListGuildsOutput, error) {
	s.mu.RLock()
	guilds := make([]*models.Guild, 0, len(s.guilds))
	for _, g := range s.guilds {
		if g.IsActive() || input.IncludeInactive {
			guilds = append(guilds, g)
		}
	}
	s.mu.RUnlock()

	sort.Slice(guilds, func(i, j int) bool {
		return guilds[i].ChannelID < guilds[j].ChannelID
	})
	return &ListGuildsOutput{Guilds: guilds}, nil
}

// SetDailyResetHour changes the hour the daily reset runs for a guild.
func (s *service) SetDailyResetHour(ctx context.Context, input *SetDailyResetHourInput) (*SetDailyResetHourOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}
	if err := g.SetDailyResetHour(input.Hour); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "set_daily_reset_hour"); err != nil {
		return nil, err
	}
	return &SetDailyResetHourOutput{Guild: g}, nil
}

// SetPinnedMessage records the guild's standing summary message.
func (s *service) SetPinnedMessage(ctx context.Context, input *SetPinnedMessageInput) (*SetPinnedMessageOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	g.SetPinnedMessage(input.MessageID)
	if err := s.persist(ctx, "set_pinned_message"); err != nil {
		return nil, err
	}
	return &SetPinnedMessageOutput{Guild: g}, nil
}

// CreateExpedition adds a new expedition with empty rosters.
func (s *service) CreateExpedition(ctx context.Context, input *CreateExpeditionInput) (*CreateExpeditionOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.CreateExpedition(input.Title, input.Time, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "create_expedition"); err != nil {
		return nil, err
	}
	return &CreateExpeditionOutput{Guild: g, Expedition: e}, nil
}

// RenameExpedition retitles an expedition, keeping its rosters.
func (s *service) RenameExpedition(ctx context.Context, input *RenameExpeditionInput) (*RenameExpeditionOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.RenameExpedition(input.OldTitle, input.NewTitle)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "rename_expedition"); err != nil {
		return nil, err
	}
	return &RenameExpeditionOutput{Guild: g, Expedition: e}, nil
}

// SetExpeditionTime changes an expedition's schedule.
func (s *service) SetExpeditionTime(ctx context.Context, input *SetExpeditionTimeInput) (*SetExpeditionTimeOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.SetExpeditionTime(input.Title, input.Time)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "set_expedition_time"); err != nil {
		return nil, err
	}
	return &SetExpeditionTimeOutput{Guild: g, Expedition: e}, nil
}

// SetExpeditionDescription changes an expedition's description.
func (s *service) SetExpeditionDescription(ctx context.Context, input *SetExpeditionDescriptionInput) (*SetExpeditionDescriptionOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.SetExpeditionDescription(input.Title, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "set_expedition_description"); err != nil {
		return nil, err
	}
	return &SetExpeditionDescriptionOutput{Guild: g, Expedition: e}, nil
}

// DeleteExpedition removes an expedition.
func (s *service) DeleteExpedition(ctx context.Context, input *DeleteExpeditionInput) (*DeleteExpeditionOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	if err := g.DeleteExpedition(input.Title); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "delete_expedition"); err != nil {
		return nil, err
	}
	return &DeleteExpeditionOutput{Guild: g}, nil
}

// CheckIn adds an identity to an expedition roster.
func (s *service) CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.CheckIn(input.Title, input.Identity)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "check_in"); err != nil {
		return nil, err
	}
	return &CheckInOutput{Guild: g, Expedition: e}, nil
}

// CheckOut removes an identity from an expedition roster.
func (s *service) CheckOut(ctx context.Context, input *CheckOutInput) (*CheckOutOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, err := g.CheckOut(input.Title, input.Identity)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "check_out"); err != nil {
		return nil, err
	}
	return &CheckOutOutput{Guild: g, Expedition: e}, nil
}

// ToggleDaily flips an identity's recurring sign-up.
func (s *service) ToggleDaily(ctx context.Context, input *ToggleDailyInput) (*ToggleDailyOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, added, err := g.ToggleDaily(input.Title, input.Identity)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "toggle_daily"); err != nil {
		return nil, err
	}
	return &ToggleDailyOutput{Guild: g, Expedition: e, Added: added}, nil
}

// ToggleReady flips an identity's ready state.
func (s *service) ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	e, added, err := g.ToggleReady(input.Title, input.Identity)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "toggle_ready"); err != nil {
		return nil, err
	}
	return &ToggleReadyOutput{Guild: g, Expedition: e, Added: added}, nil
}

// MarkFort records fort attendance for today.
func (s *service) MarkFort(ctx context.Context, input *MarkFortInput) (*MarkFortOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	if err := g.MarkFort(input.Identity); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "mark_fort"); err != nil {
		return nil, err
	}
	return &MarkFortOutput{Guild: g}, nil
}

// UnmarkFort withdraws today's fort attendance.
func (s *service) UnmarkFort(ctx context.Context, input *UnmarkFortInput) (*UnmarkFortOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	if err := g.UnmarkFort(input.Identity); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "unmark_fort"); err != nil {
		return nil, err
	}
	return &UnmarkFortOutput{Guild: g}, nil
}

// FortStatus reports today's mark and the folded history count. Returns
// ErrNoHistory when the identity has neither a mark today nor any history.
func (s *service) FortStatus(_ context.Context, input *FortStatusInput) (*FortStatusOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	marked := g.FortMarkedToday(input.Identity)
	history, err := g.FortHistoryFor(input.Identity)
	if err != nil {
		if !marked {
			return nil, err
		}
		history = 0
	}
	return &FortStatusOutput{MarkedToday: marked, History: history}, nil
}

// FortReport returns the combined attendance report for a guild.
func (s *service) FortReport(_ context.Context, input *FortReportInput) (*FortReportOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}
	return &FortReportOutput{Records: g.FortReport()}, nil
}

// ResetFort discards a guild's attendance tracker entirely.
func (s *service) ResetFort(ctx context.Context, input *ResetFortInput) (*ResetFortOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	g.ResetFort()
	if err := s.persist(ctx, "reset_fort"); err != nil {
		return nil, err
	}
	return &ResetFortOutput{Guild: g}, nil
}

// ApplyDailyReset rolls expeditions over and folds fort attendance for one
// guild. No save here; the scheduler saves once after iterating all guilds.
func (s *service) ApplyDailyReset(_ context.Context, input *ApplyDailyResetInput) (*ApplyDailyResetOutput, error) {
	g, err := s.resolve(input.ChannelID, false)
	if err != nil {
		return nil, err
	}

	g.ResetExpeditions()
	g.FoldFortHistory()
	return &ApplyDailyResetOutput{Guild: g}, nil
}
