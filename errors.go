package walletdex

import (
	"fmt"
	"strings"
)

// ValidationError reports a wallet record missing required fields. It carries
// every failure at once, not just the first.
type ValidationError struct {
	ID   string // offending wallet id, may be empty when the name itself is missing
	Errs []string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return "invalid wallet: " + strings.Join(e.Errs, "; ")
	}
	return fmt.Sprintf("invalid wallet %q: %s", e.ID, strings.Join(e.Errs, "; "))
}

// DuplicateIDError reports id collisions found while loading a collection.
// The load is recoverable: the caller may keep the deduplicated collection or
// reject it.
type DuplicateIDError struct {
	IDs []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate wallet ids: %s", strings.Join(e.IDs, ", "))
}

// NotFoundError reports an operation on an unknown id.
type NotFoundError struct {
	Kind string // "wallet" or "preset"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// UnsupportedFormatError reports an export requested with an unrecognized
// format tag.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

// DecodeError reports an entirely unparsable import: no header, or no row
// yielded a valid wallet. Per-row failures are not DecodeErrors, they are
// collected as warnings in the ImportResult.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode error: " + e.Reason
}
