package id

import (
	"hash/maphash"
	"log/slog"
	"strconv"
	"strings"
)

// Erased is an identifier with no owner. It is used where the entity kind is
// unknown or irrelevant: generic caches, error values, logs.
type Erased struct {
	value string
}

// NewErased wraps raw as an owner-agnostic identifier.
func NewErased(raw string) Erased {
	return Erased{value: raw}
}

// WithOwner re-applies an owner to an erased identifier. The caller asserts
// that Owner is correct; nothing is checked.
func WithOwner[Owner any](e Erased) ID[Owner] {
	return ID[Owner]{value: e.value}
}

// String returns the underlying identifier text unmodified.
func (e Erased) String() string {
	return e.value
}

// GoString returns a diagnostic rendering, used by the %#v verb.
func (e Erased) GoString() string {
	return "Erased(" + strconv.Quote(e.value) + ")"
}

// IsZero reports whether the identifier holds the empty string.
func (e Erased) IsZero() bool {
	return e.value == ""
}

// Compare orders erased identifiers byte-wise, like ID.Compare.
func (e Erased) Compare(other Erased) int {
	return strings.Compare(e.value, other.value)
}

// Less reports whether e sorts before other.
func (e Erased) Less(other Erased) bool {
	return e.value < other.value
}

// Hash returns a hash of the identifier value. For the same seed it matches
// the hash of any ID holding the same value.
func (e Erased) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, e.value)
}

// MarshalText implements encoding.TextMarshaler.
func (e Erased) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (e *Erased) UnmarshalText(text []byte) error {
	e.value = string(text)
	return nil
}

// LogValue implements slog.LogValuer.
func (e Erased) LogValue() slog.Value {
	return slog.StringValue(e.value)
}
