package scheduler

import (
	"context"

	"github.com/wangandai/ascentbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/wangandai/ascentbot/internal/services/scheduler Notifier

// Notifier delivers scheduler-driven messages. The Discord handler
// implements it; failures are logged and never retried.
type Notifier interface {
	// SendExpeditionReminder announces an expedition starting shortly
	SendExpeditionReminder(ctx context.Context, guild *models.Guild, expedition *models.Expedition) error

	// RefreshPinnedSummary re-renders the guild's standing summary message
	RefreshPinnedSummary(ctx context.Context, guild *models.Guild) error
}
