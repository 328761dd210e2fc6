package infra

import (
	"errors"
	"log/slog"

	"ticket-monarch/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr logs failures other than misses and returns a classified error.
func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	if kind != KindNotFound && slogger != nil {
		logArgs := []any{
			slog.String("kind", string(kind)),
		}
		if err != nil {
			logArgs = append(logArgs, slog.String("error", err.Error()))
		}
		slogger.Error("Store error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound      StoreErrorKind = "NOT_FOUND"
	KindDBFailure     StoreErrorKind = "DB_FAILURE"
	KindCacheFailure  StoreErrorKind = "CACHE_FAILURE"
	KindEncodeFailure StoreErrorKind = "ENCODE_FAILURE"
)
