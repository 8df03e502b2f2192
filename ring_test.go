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
	"slices"
	"testing"
)

func TestRingPushConsume(t *testing.T) {
	r := NewRing[int](8)
	for i := range 5 {
		r.Push(i)
	}
	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	r.Consume()
	r.Consume()
	if got := r.Values(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("Values() = %v, want [2 3 4]", got)
	}
	if r.First() != 2 || r.Last() != 4 {
		t.Errorf("First, Last = %d, %d, want 2, 4", r.First(), r.Last())
	}

	marker := r.End()
	r.Push(10)
	r.Push(11)
	r.ConsumeAt(marker)
	if got := r.Values(); !slices.Equal(got, []int{10, 11}) {
		t.Errorf("after ConsumeAt: %v, want [10 11]", got)
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Clear", r.Len())
	}
	r.Consume() // no-op on an empty ring
	if r.Start() != r.End() {
		t.Errorf("Consume on empty ring moved start past end")
	}
}

func TestRingConsumeAtClamps(t *testing.T) {
	r := NewRing[int](4)
	r.Push(1)
	r.Push(2)
	r.ConsumeAt(100)
	if r.Len() != 0 || r.Start() != r.End() {
		t.Errorf("ConsumeAt beyond end: start=%d end=%d", r.Start(), r.End())
	}
	r.ConsumeAt(-5)
	if r.Start() != r.End() {
		t.Errorf("ConsumeAt before start moved the start backwards")
	}
}

func TestRingRewindCompacts(t *testing.T) {
	r := NewRing[int](8)
	for i := range 8 {
		r.Push(i)
	}
	for range 6 {
		r.Consume()
	}

	r.Rewind(6)
	if r.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8 (no growth needed)", r.Cap())
	}
	if r.Start() != 0 {
		t.Errorf("Start() = %d after compaction, want 0", r.Start())
	}
	if got := r.Values(); !slices.Equal(got, []int{6, 7}) {
		t.Errorf("Values() = %v, want [6 7]", got)
	}
	for i := range 6 {
		r.Push(100 + i)
	}
	if r.Len() != 8 {
		t.Errorf("Len() = %d, want 8", r.Len())
	}
}

func TestRingRewindNoop(t *testing.T) {
	r := NewRing[int](8)
	r.Push(1)
	r.Push(2)
	r.Consume()
	start := r.Start()
	r.Rewind(3)
	if r.Start() != start {
		t.Errorf("Rewind moved elements although there was room")
	}
}

func TestRingRewindGrows(t *testing.T) {
	r := NewRing[int](4)
	for i := range 4 {
		r.Push(i)
	}
	r.Rewind(3)
	if r.Cap() < 7 {
		t.Errorf("Cap() = %d, want at least 7", r.Cap())
	}
	if got := r.Values(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Values() = %v after growth", got)
	}

	var zero Ring[int]
	zero.Rewind(2)
	zero.Push(1)
	zero.Push(2)
	if zero.Len() != 2 {
		t.Errorf("zero ring: Len() = %d, want 2", zero.Len())
	}
}

func TestRingPushFull(t *testing.T) {
	r := NewRing[int](2)
	r.Push(1)
	r.Push(2)

	var err error
	func() {
		defer recoverInvariant(&err)
		r.Push(3)
	}()
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("push to full ring: got %v, want *InvariantError", err)
	}
	if ie.Op != "push" {
		t.Errorf("Op = %q, want \"push\"", ie.Op)
	}
}

func TestRingCircularIndex(t *testing.T) {
	r := NewRing[int](8)
	r.Push(0)
	r.Consume()
	for i := range 3 {
		r.Push(i)
	}
	// live range is [1, 4)
	if r.NextIndex(3) != 1 {
		t.Errorf("NextIndex(3) = %d, want 1", r.NextIndex(3))
	}
	if r.NextIndex(1) != 2 {
		t.Errorf("NextIndex(1) = %d, want 2", r.NextIndex(1))
	}
	if r.PrevIndex(1) != 3 {
		t.Errorf("PrevIndex(1) = %d, want 3", r.PrevIndex(1))
	}
	if r.PrevIndex(2) != 1 {
		t.Errorf("PrevIndex(2) = %d, want 1", r.PrevIndex(2))
	}
}

func TestRingDropLast(t *testing.T) {
	r := NewRing[int](4)
	r.dropLast()
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after dropLast on empty ring", r.Len())
	}
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.dropLast()
	if got := r.Values(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Values() = %v, want [1 2]", got)
	}
	r.Consume()
	r.Consume()
	r.dropLast()
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	r.Push(4)
	if r.Last() != 4 {
		t.Errorf("Last() = %d, want 4", r.Last())
	}
}
