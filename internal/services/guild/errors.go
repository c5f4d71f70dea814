package guild

import "github.com/wangandai/ascentbot/internal/models"

// Registry-level domain errors. Typed as models.GuildError so the dispatch
// boundary renders them to the user like any other guild error.
const (
	ErrGuildNotFound      models.GuildError = "no guild in this channel"
	ErrGuildAlreadyActive models.GuildError = "guild already initialized in this channel"
)
