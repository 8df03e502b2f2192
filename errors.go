// seehuhn.de/go/polyraster - analytic coverage rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyraster

import (
	"errors"
	"fmt"
)

// ErrInvalidScene is wrapped by all errors returned from Scene.Validate.
var ErrInvalidScene = errors.New("invalid scene")

// InvariantError reports a violated geometric invariant inside the
// rasteriser, for example a polygon fragment with negative area.  Such
// errors indicate a defect in the construction of the scene, not a
// runtime condition, and the rasterisation call is aborted.
type InvariantError struct {
	Op     string // the operation which detected the problem
	Detail string // what went wrong
	State  string // offending ring or edge, for diagnosis
}

func (e *InvariantError) Error() string {
	msg := "polyraster: " + e.Op + ": " + e.Detail
	if e.State != "" {
		msg += " [" + e.State + "]"
	}
	return msg
}

// invariantf aborts the current rasterisation call.
func invariantf(op string, state any, format string, args ...any) {
	var s string
	if state != nil {
		s = fmt.Sprint(state)
	}
	panic(&InvariantError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		State:  s,
	})
}

// recoverInvariant converts an *InvariantError panic into an error
// return value.  It must be called via defer.  Other panics are passed on.
func recoverInvariant(err *error) {
	p := recover()
	if p == nil {
		return
	}
	ie, ok := p.(*InvariantError)
	if !ok {
		panic(p)
	}
	Logger().Error("rasterisation aborted", "op", ie.Op, "detail", ie.Detail, "state", ie.State)
	*err = ie
}
