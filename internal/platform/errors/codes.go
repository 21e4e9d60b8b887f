// Package errors provides structured errors for command boundaries.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Deck errors
	CodeUnknownCardKind Code = "UNKNOWN_CARD_KIND"

	// Player errors
	CodePlayerNameEmpty    Code = "PLAYER_NAME_EMPTY"
	CodePlayerDuplicate    Code = "PLAYER_DUPLICATE"
	CodePlayerCountInvalid Code = "PLAYER_COUNT_INVALID"

	// Output errors
	CodeOutputFormatInvalid Code = "OUTPUT_FORMAT_INVALID"
	CodeOutputWrite         Code = "OUTPUT_WRITE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"
)

// Exit codes returned by commands.
const (
	ExitInternal = 1
	ExitUsage    = 2
)

// ExitCode maps codes to process exit statuses.
func (c Code) ExitCode() int {
	switch c {
	// Usage - the caller supplied bad input
	case CodeUnknownCardKind,
		CodePlayerNameEmpty,
		CodePlayerDuplicate,
		CodePlayerCountInvalid,
		CodeOutputFormatInvalid:
		return ExitUsage

	default:
		return ExitInternal
	}
}
