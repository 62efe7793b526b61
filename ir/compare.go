package ir

// Equals returns whether two types are structurally equal: same variant and
// recursively equal payloads.  Direct references compare by key identity, not
// by expanding the referenced definition.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// Assignable returns whether a value of type src may be assigned into a
// location of type dst.  Assignment requires structural equality with two
// coercions: never assigns into anything (the assignment is unreachable), and
// the uninit marker assigns into anything (the target's static type is
// unchanged).  No implicit numeric widening exists.
//
// An undeclared type on either side is also accepted: it only arises after a
// failure that has already been reported, and letting it unify suppresses
// cascading mismatches.
func Assignable(src, dst Type) bool {
	switch src.(type) {
	case NeverType, UninitType, UndeclaredType:
		return true
	}

	if _, ok := dst.(UndeclaredType); ok {
		return true
	}

	return Equals(src, dst)
}
