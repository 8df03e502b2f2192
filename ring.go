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

import "fmt"

// Ring is a cyclic sequence of values stored in a flat buffer.
//
// The live elements occupy the physical range [Start(), End()) of the
// buffer.  New elements are appended at the end, old elements are
// consumed from the start without moving memory.  Clipping code reads the
// old contents of a ring while appending the new contents behind them, so
// physical indices stay valid for the duration of a pass.  Space is only
// reclaimed by Rewind, which must be called before a pass starts.
//
// The zero value is an empty ring without capacity.
type Ring[T any] struct {
	buf        []T
	start, end int
}

// NewRing returns an empty ring with room for capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{buf: make([]T, capacity)}
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int {
	return r.end - r.start
}

// Cap returns the size of the backing store.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Start returns the physical index of the first live element.
func (r *Ring[T]) Start() int {
	return r.start
}

// End returns the physical index one past the last live element.
// The value can be used as a marker for ConsumeAt.
func (r *Ring[T]) End() int {
	return r.end
}

// At returns the element at physical index i.
func (r *Ring[T]) At(i int) T {
	return r.buf[i]
}

// Set replaces the element at physical index i.
func (r *Ring[T]) Set(i int, v T) {
	r.buf[i] = v
}

// First returns the first live element.  The ring must not be empty.
func (r *Ring[T]) First() T {
	return r.buf[r.start]
}

// Last returns the last live element.  The ring must not be empty.
func (r *Ring[T]) Last() T {
	return r.buf[r.end-1]
}

// Values returns the live elements.  The slice aliases the ring's storage
// and is only valid until the next modification.
func (r *Ring[T]) Values() []T {
	return r.buf[r.start:r.end]
}

// Push appends v at the end of the ring.
// Running out of space is a programming error: callers must reserve room
// with Rewind before appending.
func (r *Ring[T]) Push(v T) {
	if r.end >= len(r.buf) {
		panic(&InvariantError{
			Op:     "push",
			Detail: fmt.Sprintf("ring capacity %d exhausted (start=%d)", len(r.buf), r.start),
			State:  fmt.Sprint(r.Values()),
		})
	}
	r.buf[r.end] = v
	r.end++
}

// Rewind guarantees that at least extra further elements can be pushed.
//
// If the space after the end of the ring is too small, the live elements
// are moved to the beginning of the buffer.  Only if this is still not
// enough, the buffer is grown.  Physical indices are invalidated whenever
// elements are moved.
func (r *Ring[T]) Rewind(extra int) {
	if len(r.buf)-r.end >= extra {
		return
	}

	n := r.end - r.start
	if n+extra > len(r.buf) {
		newCap := max(2*len(r.buf), n+extra)
		Logger().Debug("ring grown", "from", len(r.buf), "to", newCap)
		buf := make([]T, newCap)
		copy(buf, r.buf[r.start:r.end])
		r.buf = buf
	} else {
		copy(r.buf, r.buf[r.start:r.end])
	}
	r.start = 0
	r.end = n
}

// Consume discards the first live element.
func (r *Ring[T]) Consume() {
	if r.start < r.end {
		r.start++
	}
}

// ConsumeAt discards all elements before the physical index marker.
// Markers are normally obtained from End before appending new elements.
func (r *Ring[T]) ConsumeAt(marker int) {
	r.start = min(max(marker, r.start), r.end)
}

// Clear discards all live elements.
func (r *Ring[T]) Clear() {
	r.start = r.end
}

// dropLast discards the last live element, if any.
func (r *Ring[T]) dropLast() {
	if r.end > r.start {
		r.end--
	}
}

// NextIndex returns the physical index following i, treating the live
// range as circular.
func (r *Ring[T]) NextIndex(i int) int {
	i++
	if i >= r.end {
		i = r.start
	}
	return i
}

// PrevIndex returns the physical index preceding i, treating the live
// range as circular.
func (r *Ring[T]) PrevIndex(i int) int {
	if i <= r.start {
		return r.end - 1
	}
	return i - 1
}
