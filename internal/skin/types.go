package skin

import (
	"errors"
	"fmt"
	"strings"
)

// SkinType identifies one of the fixed skin categories.
type SkinType string

// Skin types, in display order.
const (
	Dry         SkinType = "Dry"
	Oily        SkinType = "Oily"
	Combination SkinType = "Combination"
	Sensitive   SkinType = "Sensitive"
)

// ErrUnknownSkinType is returned by Parse and Lookup for names outside the fixed set.
var ErrUnknownSkinType = errors.New("unknown skin type")

var allTypes = []SkinType{Dry, Oily, Combination, Sensitive}

// All returns every skin type in display order.
func All() []SkinType {
	out := make([]SkinType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Parse matches name case-insensitively against the known skin types.
func Parse(name string) (SkinType, error) {
	name = strings.TrimSpace(name)
	for _, t := range allTypes {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownSkinType, name, names())
}

// Valid reports whether t is one of the fixed skin types.
func (t SkinType) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label is the human-readable name used in messages.
func (t SkinType) Label() string {
	return string(t)
}

func (t SkinType) String() string {
	return string(t)
}

func names() string {
	parts := make([]string, len(allTypes))
	for i, t := range allTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
