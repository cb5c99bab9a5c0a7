// Package id provides branded identifiers: string identifiers tagged at
// compile time with the kind of entity they identify.
//
// An ID[Owner] is a plain string at runtime. The Owner type parameter exists
// only for the compiler, so identifiers of different entity kinds cannot be
// mixed up without an explicit conversion:
//
//	taskID := id.New[Task]("task-42")
//	projectID := id.Retag[Project](taskID) // explicit relabel
//	erased := taskID.Erase()               // owner-agnostic
//	back := id.WithOwner[Task](erased)     // re-assert an owner
//
// The package does not validate, generate, or deduplicate identifiers. Any
// string, including the empty string, is a legal value. Deciding whether an
// identifier resolves to a stored entity is the job of the storage layer.
//
// Both ID and Erased are immutable values and safe to share between
// goroutines without synchronization.
package id

import (
	"hash/maphash"
	"log/slog"
	"strconv"
	"strings"
)

// ID is an identifier of an entity of kind Owner.
//
// The zero-length array field carries the owner at the type level and takes
// no space. It is placed first because a trailing zero-size field would be
// padded. It also gives ID[A] and ID[B] different underlying types, so a
// plain conversion between them does not compile; use Retag instead.
type ID[Owner any] struct {
	_     [0]*Owner
	value string
}

// New wraps raw as an identifier owned by Owner. The string is kept verbatim.
func New[Owner any](raw string) ID[Owner] {
	return ID[Owner]{value: raw}
}

// Retag returns an identifier with the same value and a different owner.
//
// No check is made that the value means anything for To. Use it where the
// relabel is known to be correct, e.g. when two entity kinds share one key
// space. Call sites are meant to stand out in review.
func Retag[To, From any](i ID[From]) ID[To] {
	return ID[To]{value: i.value}
}

// String returns the underlying identifier text unmodified.
func (i ID[Owner]) String() string {
	return i.value
}

// GoString returns a diagnostic rendering, used by the %#v verb.
func (i ID[Owner]) GoString() string {
	return "ID(" + strconv.Quote(i.value) + ")"
}

// Erase discards the owner and returns an owner-agnostic identifier.
func (i ID[Owner]) Erase() Erased {
	return Erased{value: i.value}
}

// IsZero reports whether the identifier holds the empty string. The empty
// string is a legal identifier; IsZero only helps callers that use the zero
// value to mean "unset".
func (i ID[Owner]) IsZero() bool {
	return i.value == ""
}

// Compare returns -1, 0 or +1 depending on whether i sorts before, equal
// to, or after other. Ordering is byte-wise lexicographic.
func (i ID[Owner]) Compare(other ID[Owner]) int {
	return strings.Compare(i.value, other.value)
}

// Less reports whether i sorts before other.
func (i ID[Owner]) Less(other ID[Owner]) bool {
	return i.value < other.value
}

// Hash returns a hash of the identifier value. Equal identifiers hash
// identically under the same seed.
func (i ID[Owner]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, i.value)
}

// MarshalText implements encoding.TextMarshaler. The text form is the raw
// identifier, so JSON and YAML see a plain string.
func (i ID[Owner]) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (i *ID[Owner]) UnmarshalText(text []byte) error {
	i.value = string(text)
	return nil
}

// LogValue implements slog.LogValuer.
func (i ID[Owner]) LogValue() slog.Value {
	return slog.StringValue(i.value)
}
