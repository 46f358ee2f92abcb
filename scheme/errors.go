package scheme

import "github.com/ghettovoice/gourl/internal/errorutil"

// Error represents a scheme registry error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	ErrInvalidArgument       = errorutil.ErrInvalidArgument
	ErrDuplicateScheme Error = "duplicate scheme"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
