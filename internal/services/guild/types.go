package guild

import (
	"github.com/wangandai/ascentbot/internal/models"
)

// InitGuildInput holds the parameters for InitGuild
type InitGuildInput struct {
	ChannelID string
	Title     string
}

// InitGuildOutput holds the result of InitGuild
type InitGuildOutput struct {
	Guild *models.Guild

	// Reactivated is true when an existing stopped guild was revived
	// instead of a new one being created
	Reactivated bool
}

// StopGuildInput holds the parameters for StopGuild
type StopGuildInput struct {
	ChannelID string
}

// StopGuildOutput holds the result of StopGuild
type StopGuildOutput struct {
	Guild *models.Guild
}

// GetGuildInput holds the parameters for GetGuild
type GetGuildInput struct {
	ChannelID string

	// IncludeInactive resolves stopped guilds as well
	IncludeInactive bool
}

// GetGuildOutput holds the result of GetGuild
type GetGuildOutput struct {
	Guild *models.Guild
}

// ListGuildsInput holds the parameters for ListGuilds
type ListGuildsInput struct {
	IncludeInactive bool
}

// ListGuildsOutput holds the result of ListGuilds
type ListGuildsOutput struct {
	Guilds []*models.Guild
}

// SetDailyResetHourInput holds the parameters for SetDailyResetHour
type SetDailyResetHourInput struct {
	ChannelID string
	Hour      int
}

// SetDailyResetHourOutput holds the result of SetDailyResetHour
type SetDailyResetHourOutput struct {
	Guild *models.Guild
}

// SetPinnedMessageInput holds the parameters for SetPinnedMessage
type SetPinnedMessageInput struct {
	ChannelID string
	MessageID string
}

// SetPinnedMessageOutput holds the result of SetPinnedMessage
type SetPinnedMessageOutput struct {
	Guild *models.Guild
}

// CreateExpeditionInput holds the parameters for CreateExpedition
type CreateExpeditionInput struct {
	ChannelID   string
	Title       string
	Time        string
	Description string
}

// CreateExpeditionOutput holds the result of CreateExpedition
type CreateExpeditionOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// RenameExpeditionInput holds the parameters for RenameExpedition
type RenameExpeditionInput struct {
	ChannelID string
	OldTitle  string
	NewTitle  string
}

// RenameExpeditionOutput holds the result of RenameExpedition
type RenameExpeditionOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// SetExpeditionTimeInput holds the parameters for SetExpeditionTime
type SetExpeditionTimeInput struct {
	ChannelID string
	Title     string
	Time      string
}

// SetExpeditionTimeOutput holds the result of SetExpeditionTime
type SetExpeditionTimeOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// SetExpeditionDescriptionInput holds the parameters for SetExpeditionDescription
type SetExpeditionDescriptionInput struct {
	ChannelID   string
	Title       string
	Description string
}

// SetExpeditionDescriptionOutput holds the result of SetExpeditionDescription
type SetExpeditionDescriptionOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// DeleteExpeditionInput holds the parameters for DeleteExpedition
type DeleteExpeditionInput struct {
	ChannelID string
	Title     string
}

// DeleteExpeditionOutput holds the result of DeleteExpedition
type DeleteExpeditionOutput struct {
	Guild *models.Guild
}

// CheckInInput holds the parameters for CheckIn
type CheckInInput struct {
	ChannelID string
	Title     string
	Identity  models.Identity
}

// CheckInOutput holds the result of CheckIn
type CheckInOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// CheckOutInput holds the parameters for CheckOut
type CheckOutInput struct {
	ChannelID string
	Title     string
	Identity  models.Identity
}

// CheckOutOutput holds the result of CheckOut
type CheckOutOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition
}

// ToggleDailyInput holds the parameters for ToggleDaily
type ToggleDailyInput struct {
	ChannelID string
	Title     string
	Identity  models.Identity
}

// ToggleDailyOutput holds the result of ToggleDaily
type ToggleDailyOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition

	// Added is true when the identity was added to the daily roster,
	// false when it was removed
	Added bool
}

// ToggleReadyInput holds the parameters for ToggleReady
type ToggleReadyInput struct {
	ChannelID string
	Title     string
	Identity  models.Identity
}

// ToggleReadyOutput holds the result of ToggleReady
type ToggleReadyOutput struct {
	Guild      *models.Guild
	Expedition *models.Expedition

	// Added is true when the identity was added to the ready roster
	Added bool
}

// MarkFortInput holds the parameters for MarkFort
type MarkFortInput struct {
	ChannelID string
	Identity  models.Identity
}

// MarkFortOutput holds the result of MarkFort
type MarkFortOutput struct {
	Guild *models.Guild
}

// UnmarkFortInput holds the parameters for UnmarkFort
type UnmarkFortInput struct {
	ChannelID string
	Identity  models.Identity
}

// UnmarkFortOutput holds the result of UnmarkFort
type UnmarkFortOutput struct {
	Guild *models.Guild
}

// FortStatusInput holds the parameters for FortStatus
type FortStatusInput struct {
	ChannelID string
	Identity  models.Identity
}

// FortStatusOutput holds the result of FortStatus
type FortStatusOutput struct {
	// MarkedToday is true when the identity is in today's attendance
	MarkedToday bool

	// History is the folded cumulative count, excluding today's mark
	History int
}

// FortReportInput holds the parameters for FortReport
type FortReportInput struct {
	ChannelID string
}

// FortReportOutput holds the result of FortReport
type FortReportOutput struct {
	// Records maps identity keys to combined counts (history plus today)
	Records map[string]*models.FortRecord
}

// ResetFortInput holds the parameters for ResetFort
type ResetFortInput struct {
	ChannelID string
}

// ResetFortOutput holds the result of ResetFort
type ResetFortOutput struct {
	Guild *models.Guild
}

// ApplyDailyResetInput holds the parameters for ApplyDailyReset
type ApplyDailyResetInput struct {
	ChannelID string
}

// ApplyDailyResetOutput holds the result of ApplyDailyReset
type ApplyDailyResetOutput struct {
	Guild *models.Guild
}
