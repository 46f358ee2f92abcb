package form

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/ioutil"
)

// Serializer appends form-urlencoded pairs to a [Target].
// Pairs are separated with "&", the first pair written after the position
// where the serializer started gets no separator.
type Serializer struct {
	target   Target
	start    int
	finished bool
}

// NewSerializer creates a serializer over t starting at the current length of its buffer.
func NewSerializer(t Target) (*Serializer, error) {
	h, err := t.Buffer()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Serializer{target: t, start: h.Len()}, nil
}

// AppendPair appends the name=value pair.
func (s *Serializer) AppendPair(name, value string) error {
	return errtrace.Wrap(s.append(name, value, true))
}

// AppendKey appends the name without a value.
func (s *Serializer) AppendKey(name string) error {
	return errtrace.Wrap(s.append(name, "", false))
}

// ExtendPairs appends all pairs of seq, it stops at the first error.
func (s *Serializer) ExtendPairs(seq iter.Seq2[string, string]) error {
	for name, value := range seq {
		if err := s.AppendPair(name, value); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (s *Serializer) append(name, value string, hasValue bool) error {
	if s.finished {
		return errtrace.Wrap(ErrTargetFinished)
	}
	h, err := s.target.Buffer()
	if err != nil {
		return errtrace.Wrap(err)
	}

	cw := ioutil.GetCountingWriter(h)
	defer ioutil.FreeCountingWriter(cw)
	if h.Len() > s.start {
		cw.WriteByte('&')
	}
	cw.WriteString(Encode(name))
	if hasValue {
		cw.WriteByte('=')
		cw.WriteString(Encode(value))
	}
	_, err = cw.Result()
	return errtrace.Wrap(err)
}

// Finish finishes the underlying target and returns its text.
func (s *Serializer) Finish() (string, error) {
	if s.finished {
		return "", errtrace.Wrap(ErrTargetFinished)
	}
	s.finished = true
	return errtrace.Wrap2(s.target.Finish())
}
