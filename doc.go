// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package genflow provides instantiation-time control-flow primitives:
// branch selection and fold-style iteration whose branches and bodies are
// resolved before the surrounding computation runs.
//
// The core type [Branch] represents a then/else-if/else selection chain.
// The chain is built from type-level boolean constants and captures exactly
// one body; the captured body is not applied to the call arguments until
// [Branch.Apply], so a body that was not selected is never evaluated
// against them.
//
// # Design Philosophy
//
// genflow provides:
//   - Minimal but complete surfaces for branch selection, iteration, and
//     self-reference
//   - Immutable state threading: every loop step derives a new [State],
//     never mutates one
//   - Deferred application: selection and invocation are two distinct
//     stages, never collapsed
//
// # Type-Level Conditions
//
// Conditions are zero-sized tag values whose identity is their static type:
//
//   - [True], [False]: the two condition constants
//   - [Cond]: the marker interface they implement
//   - [CondOf]: lifts a statically-known boolean expression into a tag
//
// # Branch Selection
//
// [Select] begins a chain; the first arm whose condition holds wins, and
// every later chain call is an unconditional no-op:
//
//   - [Select]: begin a chain on a condition
//   - [Branch.Then]: capture the body for a held condition
//   - [Branch.ElseIf]: restart selection on a new condition
//   - [Branch.Else]: capture the fallback body
//   - [Branch.Apply]: invoke the captured body with the real arguments
//
// A chain that never matched applies as a no-op: arguments are discarded
// and Apply returns nil.
//
// # Deferred Instantiation
//
// Branch bodies have the uniform shape [Body]; concrete argument types are
// recovered by assertions inside the body, at the [Erased] boundary. The
// assertions of a non-selected body are never evaluated, so the body never
// has to hold for the applied arguments. Capturing the arguments in the
// body's closure instead of receiving them through Apply forfeits that
// guarantee.
//
// Typed adapters lift ordinary functions into [Body]:
//
//   - [Body0]: nullary body, arguments ignored
//   - [Body1]: unary body
//   - [Body2]: binary body
//
// # Iteration
//
// [Loop] folds a step function over a statically-known sequence of items,
// threading an iteration index, an accumulator, and a continue/break signal
// through an immutable [State]:
//
//   - [Loop]: build the fold; Loop(body)(initial)(items...) runs it
//   - [State.Iteration], [State.Accumulator], [State.NextAction]: projections
//   - [State.ContinueWith], [State.Continue]: derive the next state
//   - [State.BreakWith], [State.Break]: derive the next state and request
//     termination after this step
//   - [ForEach]: the stateless companion - in-order application with no
//     index, accumulator, or early exit
//
// Each step consumes exactly one item, so recursion depth equals the item
// count. A step whose result requests [Break], or that consumed the final
// item, terminates the loop and yields that result's accumulator. Applying
// a loop to zero items yields the initial accumulator without ever invoking
// the body. Requesting Break on the final item is observably identical to
// continuing on it.
//
// # Self-Reference
//
// The iteration engine recurses through an anonymous step function that
// receives itself as its leading parameter. The fixpoint combinators supply
// that self-reference without a named recursive binding:
//
//   - [Fix]: one-argument fixpoint; Fix(f)(a) evaluates f(self, a)
//   - [Fix2]: two-argument form
//
// The self parameter is a handle to the same combinator instance, not a
// copy, so nested self-calls terminate according to f's own base case.
//
// # Failure Model
//
// The package has no error returns. A matched body applied to arguments it
// cannot accept panics at the Apply site; non-matched bodies are never
// applied and therefore never checked. Accumulator type drift across steps
// and malformed fixpoint step functions are compile errors through the type
// parameters.
//
// Nil completion convention: a nil result crossing the [Erased] boundary is
// treated as "the zero value". Loops whose accumulator type is a pointer or
// interface cannot distinguish a nil accumulator from zero.
//
// # Example
//
//	sum := genflow.Loop(func(s genflow.State[int], x int) genflow.State[int] {
//		if x == -999 {
//			return s.Break()
//		}
//		return s.ContinueWith(s.Accumulator() + x)
//	})
//
//	result := sum(0)(5, 4, -999, 35)
//	// result == 9; the step function never observes 35
package genflow
