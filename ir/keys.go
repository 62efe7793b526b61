// Package ir defines the arena-resident intermediate representation produced
// by lowering and validated by type resolution.  All cross references inside
// the IR go through opaque, generation-stamped arena keys rather than direct
// pointers, so cyclic and self-referential type graphs need no special
// handling.
package ir

// key is the common shape of all arena keys: an index into the owning arena
// plus a generation stamp.  Nothing is ever removed from an arena during a
// compilation run, so the generation only distinguishes a minted key from the
// zero value.
type key struct {
	idx uint32
	gen uint32
}

// liveGen is the generation stamp of every live arena slot.
const liveGen uint32 = 1

// TypeKey identifies a nominal type within a Program.
type TypeKey struct{ key }

// FuncKey identifies a function within a Program.
type FuncKey struct{ key }

// LiteralKey identifies an interned string literal within a Program.
type LiteralKey struct{ key }

// VarKey identifies a variable within one function's local arena.  Using a
// VarKey with any function other than the one that minted it is a defect.
type VarKey struct{ key }

// IsValid returns whether the key was minted by an arena (as opposed to being
// a zero value).
func (k key) IsValid() bool {
	return k.gen != 0
}
