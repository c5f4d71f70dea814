package models

// GuildError is a domain error surfaced to the chat user as-is. Anything that
// is not a GuildError is treated as unexpected by the command dispatcher and
// replaced with a generic reply.
type GuildError string

// Error implements the error interface
func (e GuildError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrExpeditionExists   GuildError = "expedition already exists"
	ErrExpeditionNotFound GuildError = "expedition not found"
	ErrExpeditionFull     GuildError = "expedition is full"
	ErrAlreadyCheckedIn   GuildError = "member already in expedition"
	ErrNotCheckedIn       GuildError = "member not found in expedition"
	ErrInvalidTime        GuildError = "time must be a valid 24h HHMM value"
	ErrAlreadyMarked      GuildError = "fort attendance already marked today"
	ErrNotMarked          GuildError = "fort attendance not marked today"
	ErrNoHistory          GuildError = "no fort attendance history"
	ErrInvalidResetHour   GuildError = "reset hour must be between 0 and 23"
)
