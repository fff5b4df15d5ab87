package errs

// Error kinds shared by the usecase layer. Concrete errors are marked with
// one of these so the transport layer can classify them with Is.
var (
	ErrNotFound          = New("not found")
	ErrValidation        = New("validation error")
	ErrConflict          = New("conflict")
	ErrInvalidTransition = New("invalid transition")
	ErrDuplicateKey      = New("duplicate key")
	// entity is still referenced by reservations
	ErrReferenced = New("entity is referenced")
)

var kinds = []error{
	ErrNotFound,
	ErrValidation,
	ErrConflict,
	ErrInvalidTransition,
	ErrDuplicateKey,
	ErrReferenced,
}
