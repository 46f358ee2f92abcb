// Package form writes and reads application/x-www-form-urlencoded query strings.
//
// Encoders write into a [Target], a single-use capability with two operations:
// [Target.Buffer] hands out a mutable [Handle] to the growing buffer and [Target.Finish]
// consumes the target and returns the accumulated text. A target can be finished once,
// afterwards both operations and writes through a previously obtained handle fail
// with [ErrTargetFinished].
//
// [Serializer] appends name=value pairs to a target:
//
//	s, _ := form.NewSerializer(form.NewStringTarget())
//	s.AppendPair("a", "1")
//	s.AppendPair("b", "x y")
//	q, _ := s.Finish() // "a=1&b=x+y"
package form
