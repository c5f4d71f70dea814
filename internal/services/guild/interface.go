package guild

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/wangandai/ascentbot/internal/services/guild Service

// Service owns the guild registry: it resolves guilds by channel, applies
// guild mutations, and persists the whole registry after every mutating
// call. Domain errors pass through unchanged for the dispatch boundary to
// render; a failed save is surfaced but the in-memory mutation is kept.
type Service interface {
	// Load reads the registry blob from storage; a missing blob is an empty registry
	Load(ctx context.Context) error

	// Save persists the whole registry under the configured key
	Save(ctx context.Context) error

	// InitGuild creates a guild for a channel, or reactivates a stopped one
	InitGuild(ctx context.Context, input *InitGuildInput) (*InitGuildOutput, error)

	// StopGuild marks a guild inactive; its state is retained
	StopGuild(ctx context.Context, input *StopGuildInput) (*StopGuildOutput, error)

	// GetGuild resolves a guild by channel
	GetGuild(ctx context.Context, input *GetGuildInput) (*GetGuildOutput, error)

	// ListGuilds returns all guilds, optionally including stopped ones
	ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error)

	// SetDailyResetHour changes the hour the daily reset runs for a guild
	SetDailyResetHour(ctx context.Context, input *SetDailyResetHourInput) (*SetDailyResetHourOutput, error)

	// SetPinnedMessage records the guild's standing summary message
	SetPinnedMessage(ctx context.Context, input *SetPinnedMessageInput) (*SetPinnedMessageOutput, error)

	// CreateExpedition adds a new expedition with empty rosters
	CreateExpedition(ctx context.Context, input *CreateExpeditionInput) (*CreateExpeditionOutput, error)

	// RenameExpedition retitles an expedition, keeping its rosters
	RenameExpedition(ctx context.Context, input *RenameExpeditionInput) (*RenameExpeditionOutput, error)

	// SetExpeditionTime changes an expedition's schedule
	SetExpeditionTime(ctx context.Context, input *SetExpeditionTimeInput) (*SetExpeditionTimeOutput, error)

	// SetExpeditionDescription changes an expedition's description
	SetExpeditionDescription(ctx context.Context, input *SetExpeditionDescriptionInput) (*SetExpeditionDescriptionOutput, error)

	// DeleteExpedition removes an expedition
	DeleteExpedition(ctx context.Context, input *DeleteExpeditionInput) (*DeleteExpeditionOutput, error)

	// CheckIn adds an identity to an expedition roster
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)

	// CheckOut removes an identity from an expedition roster
	CheckOut(ctx context.Context, input *CheckOutInput) (*CheckOutOutput, error)

	// ToggleDaily flips an identity's recurring sign-up
	ToggleDaily(ctx context.Context, input *ToggleDailyInput) (*ToggleDailyOutput, error)

	// ToggleReady flips an identity's ready state
	ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error)

	// MarkFort records fort attendance for today
	MarkFort(ctx context.Context, input *MarkFortInput) (*MarkFortOutput, error)

	// UnmarkFort withdraws today's fort attendance
	UnmarkFort(ctx context.Context, input *UnmarkFortInput) (*UnmarkFortOutput, error)

	// FortStatus reports today's mark and the folded history count
	FortStatus(ctx context.Context, input *FortStatusInput) (*FortStatusOutput, error)

	// FortReport returns the combined attendance report for a guild
	FortReport(ctx context.Context, input *FortReportInput) (*FortReportOutput, error)

	// ResetFort discards a guild's attendance tracker entirely
	ResetFort(ctx context.Context, input *ResetFortInput) (*ResetFortOutput, error)

	// ApplyDailyReset rolls expeditions over and folds fort attendance for
	// one guild. The scheduler calls this per guild and saves once per pass.
	ApplyDailyReset(ctx context.Context, input *ApplyDailyResetInput) (*ApplyDailyResetOutput, error)
}
