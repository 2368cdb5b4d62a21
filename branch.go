// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow

// Branch selection with deferred application.
// Select begins a then/else-if/else chain. The first arm whose condition
// holds captures its body and every later chain call is ignored. The body
// is not applied to the call arguments until Apply, so a body that was not
// selected is never evaluated against them.

// Erased marks a type-erased value crossing the deferred-application
// boundary. Concrete types are recovered via type assertions inside the
// selected body.
type Erased = any

// Body is an opaque branch body. It receives the arguments given to
// [Branch.Apply] and recovers their concrete types itself; a body that was
// not selected never runs, so its assertions never have to hold.
type Body func(args ...Erased) Erased

// Branch is one link of a selection chain.
//
// A chain is in one of three states: condition held and unmatched (the next
// Then captures), condition failed and unmatched (ElseIf restarts the
// selection, Else captures the fallback), or matched (all chain calls are
// ignored and Apply invokes the captured body).
type Branch interface {
	// Then captures body if the chain's condition held and no body was
	// captured yet; otherwise it is a no-op returning the chain unchanged.
	Then(body Body) Branch

	// ElseIf restarts selection on c if the chain's condition failed and no
	// body was captured yet; otherwise it is a no-op.
	ElseIf(c Cond) Branch

	// Else captures body as the fallback if no body was captured yet;
	// otherwise it is a no-op.
	Else(body Body) Branch

	// Apply invokes the captured body with args and returns its result.
	// On a chain that never captured a body, Apply discards args and
	// returns nil.
	Apply(args ...Erased) Erased
}

// Select begins a selection chain on c.
func Select(c Cond) Branch {
	if c.holds() {
		return thenArm{}
	}
	return elseArm{}
}

// thenArm is the "condition held, still unmatched" chain state.
type thenArm struct{}

func (a thenArm) Then(body Body) Branch { return result{body: body} }
func (a thenArm) ElseIf(Cond) Branch    { return a }
func (a thenArm) Else(Body) Branch      { return a }

// Apply on a held condition with no captured body is a no-op: the chain
// ended before Then supplied one.
func (thenArm) Apply(...Erased) Erased { return nil }

// elseArm is the "condition failed, still unmatched" chain state.
type elseArm struct{}

func (a elseArm) Then(Body) Branch      { return a }
func (a elseArm) ElseIf(c Cond) Branch  { return Select(c) }
func (a elseArm) Else(body Body) Branch { return result{body: body} }
func (elseArm) Apply(...Erased) Erased  { return nil }

// result is the matched chain state holding the captured body.
// Chain calls after a match are unconditionally ignored.
type result struct{ body Body }

func (r result) Then(Body) Branch   { return r }
func (r result) ElseIf(Cond) Branch { return r }
func (r result) Else(Body) Branch   { return r }

func (r result) Apply(args ...Erased) Erased { return r.body(args...) }

// Body0 adapts a nullary function into a [Body] that ignores the applied
// arguments.
func Body0[R any](f func() R) Body {
	return func(...Erased) Erased { return f() }
}

// Body1 adapts a unary function into a [Body]. The assertion against the
// first applied argument is evaluated only if the body was selected.
func Body1[T, R any](f func(T) R) Body {
	return func(args ...Erased) Erased { return f(args[0].(T)) }
}

// Body2 adapts a binary function into a [Body].
func Body2[T1, T2, R any](f func(T1, T2) R) Body {
	return func(args ...Erased) Erased { return f(args[0].(T1), args[1].(T2)) }
}

// unerase recovers a typed result from the deferred-application boundary.
// A nil result means the zero value (nil completion convention).
func unerase[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
