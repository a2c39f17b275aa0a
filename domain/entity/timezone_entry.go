package entity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/zoneboard/zoneboard/domain"
)

// EntryOrigin identifies how a timezone entry came to exist
type EntryOrigin string

const (
	// OriginBuiltin marks one of the shipped default entries. Builtin entries
	// can be hidden but never deleted.
	OriginBuiltin EntryOrigin = "builtin"

	// OriginCustom marks a user-added entry. Custom entries can be deleted.
	OriginCustom EntryOrigin = "custom"
)

// TimezoneEntry is one tracked timezone on the board
type TimezoneEntry struct {
	// ID is stable and unique within the registry. Builtin entries use fixed
	// short codes ("est", "pst", ...), custom entries a generated UUID.
	ID string `json:"id"`

	// IANAZone is the IANA timezone identifier (e.g. "America/New_York").
	// Two entries may reference the same zone under different labels.
	IANAZone string `json:"iana_zone"`

	// DisplayName is the human-readable label shown on the board
	DisplayName string `json:"display_name"`

	// FlagGlyph is a decorative marker with no semantic meaning
	FlagGlyph string `json:"flag_glyph,omitempty"`

	// Note is free-form user text attached to the entry
	Note string `json:"note,omitempty"`

	// Origin tells builtin and custom entries apart
	Origin EntryOrigin `json:"origin"`
}

// NewBuiltinEntry creates one of the shipped default entries
func NewBuiltinEntry(id, ianaZone, displayName, flagGlyph string) *TimezoneEntry {
	return &TimezoneEntry{
		ID:          id,
		IANAZone:    ianaZone,
		DisplayName: displayName,
		FlagGlyph:   flagGlyph,
		Origin:      OriginBuiltin,
	}
}

// NewCustomEntry creates a user-added entry with a generated id. The display
// name falls back to the zone identifier when empty.
func NewCustomEntry(ianaZone, displayName, flagGlyph string) (*TimezoneEntry, error) {
	ianaZone = strings.TrimSpace(ianaZone)
	if ianaZone == "" {
		return nil, domain.ErrInvalidInput("ianaZone", "must not be empty")
	}
	if displayName == "" {
		displayName = ianaZone
	}
	return &TimezoneEntry{
		ID:          uuid.NewString(),
		IANAZone:    ianaZone,
		DisplayName: displayName,
		FlagGlyph:   flagGlyph,
		Origin:      OriginCustom,
	}, nil
}

// IsBuiltin reports whether the entry is one of the shipped defaults
func (e *TimezoneEntry) IsBuiltin() bool {
	return e.Origin == OriginBuiltin
}

// Label returns the display name, falling back to the zone identifier
func (e *TimezoneEntry) Label() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.IANAZone
}

// BuiltinEntries returns the four shipped default entries in catalog order.
// Callers receive fresh copies and may mutate them freely.
func BuiltinEntries() []*TimezoneEntry {
	return []*TimezoneEntry{
		NewBuiltinEntry("est", "America/New_York", "New York", "🇺🇸"),
		NewBuiltinEntry("pst", "America/Los_Angeles", "Los Angeles", "🇺🇸"),
		NewBuiltinEntry("brazil", "America/Sao_Paulo", "São Paulo", "🇧🇷"),
		NewBuiltinEntry("italy", "Europe/Rome", "Rome", "🇮🇹"),
	}
}
