package usecase

import (
	"github.com/zoneboard/zoneboard/domain/entity"
)

// AddCustomInput describes a custom timezone candidate
type AddCustomInput struct {
	// IANAZone is the IANA timezone identifier to track
	IANAZone string

	// DisplayName is the label to show; defaults to the zone identifier
	DisplayName string

	// FlagGlyph is an optional decorative marker
	FlagGlyph string
}

// RegistryService owns the set of tracked timezone entries: the four shipped
// builtins plus user-added custom entries. Mutations persist through the
// settings repository; a persistence failure is reported to the caller but
// never rolls back the in-memory change.
type RegistryService interface {
	// AddCustom appends a custom entry. Fails with a DUPLICATE error when a
	// surviving custom entry already tracks the same zone.
	AddCustom(input AddCustomInput) (*entity.TimezoneEntry, error)

	// RemoveCustom deletes a custom entry permanently. Builtin ids fail with
	// INVALID_OPERATION; unknown ids with NOT_FOUND.
	RemoveCustom(id string) error

	// HideBuiltin hides a builtin entry from the board. Idempotent.
	HideBuiltin(id string) error

	// RestoreBuiltin makes a hidden builtin visible again. Idempotent; a
	// never-hidden id is a no-op.
	RestoreBuiltin(id string) error

	// ListVisible returns the visible entries: builtins in fixed catalog
	// order first, then custom entries in insertion order.
	ListVisible() []*entity.TimezoneEntry

	// SetLabel replaces an entry's display name
	SetLabel(id, label string) error

	// SetNote replaces an entry's free-form note
	SetNote(id, note string) error
}
