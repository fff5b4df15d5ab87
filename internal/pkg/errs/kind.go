package errs

// kindError is a sentinel leaf classified under a kind. Unlike Mark, two
// sentinels of the same kind stay distinct under Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind returns a sentinel that satisfies Is(err, kind) and Is(err, itself),
// but not Is against other sentinels of that kind.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}
