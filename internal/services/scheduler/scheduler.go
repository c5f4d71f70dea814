package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wangandai/ascentbot/internal/common/clock"
	guildService "github.com/wangandai/ascentbot/internal/services/guild"
)

const (
	// DefaultReminderInterval is how often upcoming expeditions are checked
	DefaultReminderInterval = 60 * time.Second

	// DefaultResetInterval is how often guild reset hours are checked
	DefaultResetInterval = time.Hour

	// reminderLead is how far ahead of the scheduled time a reminder fires
	reminderLead = 2 * time.Minute
)

// Config holds configuration for the scheduler
type Config struct {
	// Guilds is the guild registry service
	Guilds guildService.Service

	// Notifier delivers reminders and pinned summary refreshes
	Notifier Notifier

	Clock  clock.Clock
	Logger zerolog.Logger

	// ReminderInterval overrides DefaultReminderInterval, mostly for tests
	ReminderInterval time.Duration

	// ResetInterval overrides DefaultResetInterval, mostly for tests
	ResetInterval time.Duration
}

// Scheduler runs the two background loops: per-minute expedition reminders
// and the hourly daily-reset check. Both are best effort; a missed tick is
// not backfilled.
type Scheduler struct {
	guilds           guildService.Service
	notifier         Notifier
	clock            clock.Clock
	logger           zerolog.Logger
	reminderInterval time.Duration
	resetInterval    time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Guilds == nil {
		return nil, errors.New("guild service cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	reminderInterval := cfg.ReminderInterval
	if reminderInterval == 0 {
		reminderInterval = DefaultReminderInterval
	}
	resetInterval := cfg.ResetInterval
	if resetInterval == 0 {
		resetInterval = DefaultResetInterval
	}

	return &Scheduler{
		guilds:           cfg.Guilds,
		notifier:         cfg.Notifier,
		clock:            cfg.Clock,
		logger:           cfg.Logger,
		reminderInterval: reminderInterval,
		resetInterval:    resetInterval,
	}, nil
}

// Start launches both loops. They run until Stop is called.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(2)
	go s.runLoop(ctx, s.reminderInterval, s.ReminderPass)
	go s.runLoop(ctx, s.resetInterval, s.ResetPass)

	s.logger.Info().
		Dur("reminder_interval", s.reminderInterval).
		Dur("reset_interval", s.resetInterval).
		Msg("scheduler started")
}

// Stop terminates both loops and waits for them to drain.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, interval time.Duration, pass func(context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pass(ctx)
		}
	}
}

// ReminderPass sends a reminder for every expedition in every active guild
// whose scheduled time matches now plus the reminder lead, to the minute.
// Exact-minute matching means a slow tick can skip a reminder; accepted.
func (s *Scheduler) ReminderPass(ctx context.Context) {
	target := s.clock.Now().Add(reminderLead)

	output, err := s.guilds.ListGuilds(ctx, &guildService.ListGuildsInput{})
	if err != nil {
		s.logger.Error().Err(err).Msg("reminder pass: listing guilds failed")
		return
	}

	for _, g := range output.Guilds {
		for _, e := range g.ExpeditionList() {
			at := e.TimeOfDay()
			if at.Hour() != target.Hour() || at.Minute() != target.Minute() {
				continue
			}
			if err := s.notifier.SendExpeditionReminder(ctx, g, e); err != nil {
				s.logger.Error().Err(err).
					Str("channel_id", g.ChannelID).
					Str("expedition", e.Title).
					Msg("failed to send expedition reminder")
			}
		}
	}
}

// ResetPass applies the daily reset to every active guild whose configured
// reset hour matches the current hour, refreshes each guild's pinned
// summary, and saves the registry once at the end.
func (s *Scheduler) ResetPass(ctx context.Context) {
	hour := s.clock.Now().Hour()

	output, err := s.guilds.ListGuilds(ctx, &guildService.ListGuildsInput{})
	if err != nil {
		s.logger.Error().Err(err).Msg("reset pass: listing guilds failed")
		return
	}

	resetAny := false
	for _, g := range output.Guilds {
		if g.ResetHour() != hour {
			continue
		}

		if _, err := s.guilds.ApplyDailyReset(ctx, &guildService.ApplyDailyResetInput{ChannelID: g.ChannelID}); err != nil {
			s.logger.Error().Err(err).Str("channel_id", g.ChannelID).Msg("daily reset failed")
			continue
		}
		resetAny = true

		if err := s.notifier.RefreshPinnedSummary(ctx, g); err != nil {
			s.logger.Error().Err(err).Str("channel_id", g.ChannelID).Msg("failed to refresh pinned summary")
		}
		s.logger.Info().Str("channel_id", g.ChannelID).Int("hour", hour).Msg("daily reset applied")
	}

	if resetAny {
		if err := s.guilds.Save(ctx); err != nil {
			s.logger.Error().Err(err).Msg("reset pass: registry save failed")
		}
	}
}
