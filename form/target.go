package form

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/formmock/target.go -package=formmock . Target

import (
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

// Handle is a mutable handle to the buffer of a [Target].
type Handle interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	// Len returns the number of bytes accumulated so far.
	Len() int
}

// Target is a single-use sink for encoders.
type Target interface {
	// Buffer returns the handle to the target buffer.
	Buffer() (Handle, error)
	// Finish consumes the target and returns the accumulated text.
	Finish() (string, error)
}

type targetState string

const (
	targetStateOpen     targetState = "open"
	targetStateFinished targetState = "finished"
)

const targetEvtFinish = "finish"

// StringTarget is a [Target] accumulating text in memory.
// The zero value is an empty open target. A StringTarget must not be used by concurrent writers.
type StringTarget struct {
	sb  strings.Builder
	fsm *stateless.StateMachine
}

// NewStringTarget creates an empty [StringTarget].
func NewStringTarget() *StringTarget { return NewStringTargetFrom("") }

// NewStringTargetFrom creates a [StringTarget] which buffer starts with prefix,
// for example a path to which the query is appended.
func NewStringTargetFrom(prefix string) *StringTarget {
	t := new(StringTarget)
	t.sb.WriteString(prefix)
	t.initFSM()
	return t
}

func (t *StringTarget) initFSM() {
	t.fsm = stateless.NewStateMachine(targetStateOpen)
	t.fsm.Configure(targetStateOpen).
		Permit(targetEvtFinish, targetStateFinished)
	t.fsm.Configure(targetStateFinished)
}

func (t *StringTarget) finished() bool {
	if t.fsm == nil {
		t.initFSM()
	}
	ok, _ := t.fsm.IsInState(targetStateFinished)
	return ok
}

// Buffer returns the handle to the target buffer.
func (t *StringTarget) Buffer() (Handle, error) {
	if t.finished() {
		return nil, errtrace.Wrap(ErrTargetFinished)
	}
	return stringHandle{t}, nil
}

// Finish consumes the target and returns the accumulated text.
func (t *StringTarget) Finish() (string, error) {
	if t.finished() {
		return "", errtrace.Wrap(ErrTargetFinished)
	}
	if err := t.fsm.Fire(targetEvtFinish); err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrTargetFinished, err))
	}
	s := t.sb.String()
	t.sb = strings.Builder{}
	return s, nil
}

func (t *StringTarget) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	state := targetStateOpen
	if t.finished() {
		state = targetStateFinished
	}
	return slog.GroupValue(
		slog.String("state", string(state)),
		slog.Int("len", t.sb.Len()),
	)
}

type stringHandle struct{ t *StringTarget }

func (h stringHandle) Write(p []byte) (int, error) {
	if h.t.finished() {
		return 0, errtrace.Wrap(ErrTargetFinished)
	}
	return errtrace.Wrap2(h.t.sb.Write(p))
}

func (h stringHandle) WriteString(s string) (int, error) {
	if h.t.finished() {
		return 0, errtrace.Wrap(ErrTargetFinished)
	}
	return errtrace.Wrap2(h.t.sb.WriteString(s))
}

func (h stringHandle) WriteByte(c byte) error {
	if h.t.finished() {
		return errtrace.Wrap(ErrTargetFinished)
	}
	return errtrace.Wrap(h.t.sb.WriteByte(c))
}

func (h stringHandle) Len() int { return h.t.sb.Len() }
