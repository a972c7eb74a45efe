package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
const (
	// ErrUnknownFormula indicates no formula is registered under an ID.
	ErrUnknownFormula = constError("unknown formula")

	// ErrDuplicateFormula indicates two formulas share an ID.
	ErrDuplicateFormula = constError("duplicate formula")

	// ErrMissingInput indicates a declared parameter was not supplied.
	ErrMissingInput = constError("missing input")

	// ErrUnknownInput indicates an input name the formula does not declare.
	ErrUnknownInput = constError("unknown input")

	// ErrKindMismatch indicates a scalar was given where a series is
	// declared, or the other way round.
	ErrKindMismatch = constError("input kind mismatch")

	// ErrNonFiniteInput indicates a NaN or infinite input value.
	ErrNonFiniteInput = constError("non-finite input")
)
