package emission

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrLengthMismatch is returned by weighted-sum formulas when the activity
// and factor series are not the same length. Pairs are matched by
// position, so a mismatch has no meaningful result.
const ErrLengthMismatch = constError("activity and factor series differ in length")
