// Package markup provides helpers for building UI markup: class name
// joining and event propagation stopping.
package markup

import (
	"strings"

	"github.com/samber/lo"

	"github.com/roach88/helpers/internal/check"
	"github.com/roach88/helpers/internal/value"
)

// Cn joins the non-empty string arguments with a single space, dropping
// anything unrelated to CSS class names.
//
//	Cn("foo", false, nil, "baz") // "foo baz"
//
// Function arguments are dropped without being called.
func Cn(classNames ...any) string {
	kept := lo.FilterMap(classNames, func(c any, _ int) (string, bool) {
		if !check.IsString(c) {
			return "", false
		}
		s := value.Indirect(c).String()
		return s, s != ""
	})
	return strings.Join(kept, " ")
}

// Propagator is an event whose propagation can be stopped.
type Propagator interface {
	StopPropagation()
}

// StopEventPropagation calls event.StopPropagation unless event is nil.
// A typed nil pointer counts as nil.
func StopEventPropagation(event Propagator) {
	if check.IsNullish(event) {
		return
	}
	event.StopPropagation()
}
