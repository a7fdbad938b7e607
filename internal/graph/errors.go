package graph

import (
	"context"
	"errors"
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/paulthomas2107/product-graphql/internal/apperr"
	"github.com/paulthomas2107/product-graphql/pkg/zerror"
)

// fieldError is what a failing resolver returns to the engine: the field is
// nulled, siblings are unaffected, and the response error entry carries a
// stable machine-readable code extension alongside the message.
type fieldError struct {
	code string
	msg  string
	err  error
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return e.err }

// Extensions implements the engine's extension hook.
func (e *fieldError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

// fieldFailure logs the failure and shapes it into a fieldError. The message
// stays the per-kind generic one; the code keeps kinds distinguishable.
func (r *Resolver) fieldFailure(ctx context.Context, field string, err error) *fieldError {
	fErr := toFieldError(err)

	logLevel := slog.LevelError
	if fErr.code == apperr.ProductNotFoundCode || fErr.code == apperr.ValidationErrorCode {
		logLevel = slog.LevelWarn
	}
	r.logger.Log(ctx, logLevel, "resolver error",
		slog.String("field", field),
		slog.String("code", fErr.code),
		slog.Any("error", err),
	)

	return fErr
}

func toFieldError(err error) *fieldError {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return &fieldError{code: zErr.Code(), msg: zErr.Msg(), err: err}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &fieldError{code: apperr.ValidationErrorCode, msg: err.Error(), err: err}
	}

	return &fieldError{code: "INTERNAL_SERVER_ERROR", msg: "internal server error", err: err}
}
