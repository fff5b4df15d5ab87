package infra

import (
	"errors"
	"log/slog"

	"hotel-management/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err and logs it once. An explicit kind wins over
// the one derived from the PostgreSQL error code.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{slog.String("kind", string(k))}
	if constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	switch k {
	case KindDBFailure:
		slog.Error("Repository error: "+msg, logArgs...)
	default:
		slog.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// PostgreSQL SQLSTATE codes mapped to kinds
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

func classify(err error) (RepositoryErrorKind, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgExclusionViolation:
		return KindConflict, pgErr.ConstraintName
	default:
		return KindDBFailure, pgErr.ConstraintName
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
