// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow

// Action is the next-action tag a loop step requests for the step after it.
type Action uint8

const (
	// Continue requests the next step.
	Continue Action = iota

	// Break requests termination after the step that produced the state.
	Break
)

// State is one step of a [Loop]: the zero-based iteration index, the
// accumulator carried so far, and the action requested for the next step.
//
// States are immutable values. Derivations return a new State with the
// iteration index incremented by exactly one; the state they were derived
// from is unchanged. The accumulator keeps the static type A across all
// steps, so a body that changes the accumulator's type does not compile.
type State[A any] struct {
	iteration int
	acc       A
	next      Action
}

// Iteration returns the zero-based index of the current step.
// The first step of a loop observes iteration 0.
func (s State[A]) Iteration() int { return s.iteration }

// Accumulator returns the carried accumulator.
func (s State[A]) Accumulator() A { return s.acc }

// NextAction returns the action requested by the step that produced s.
func (s State[A]) NextAction() Action { return s.next }

// advance derives the successor state.
func (s State[A]) advance(acc A, next Action) State[A] {
	return State[A]{iteration: s.iteration + 1, acc: acc, next: next}
}

// ContinueWith derives the next state with a new accumulator.
func (s State[A]) ContinueWith(acc A) State[A] { return s.advance(acc, Continue) }

// Continue derives the next state keeping the current accumulator.
func (s State[A]) Continue() State[A] { return s.advance(s.acc, Continue) }

// BreakWith derives the next state with a new accumulator, requesting
// termination after this step.
func (s State[A]) BreakWith(acc A) State[A] { return s.advance(acc, Break) }

// Break derives the next state keeping the current accumulator, requesting
// termination after this step.
func (s State[A]) Break() State[A] { return s.advance(s.acc, Break) }
