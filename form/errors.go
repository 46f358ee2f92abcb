package form

import "github.com/ghettovoice/gourl/internal/errorutil"

// Error represents a form encoding error.
// See [errorutil.Error].
type Error = errorutil.Error

const ErrTargetFinished Error = "target already finished"
