package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/wangandai/ascentbot/internal/services/roster Client

// Client fetches the external fort roster, a ranked read-only list kept
// outside the bot. Display only; never part of guild state.
type Client interface {
	// GetFortRoster returns the ranked fort roster
	GetFortRoster(ctx context.Context) (*GetFortRosterOutput, error)
}
