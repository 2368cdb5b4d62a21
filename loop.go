// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow

// Loop builds a fold over a statically-known sequence of items.
//
// Loop(body) returns a function of the initial accumulator, which returns a
// function variadic over the items: Loop(body)(initial)(items...). body
// receives the current [State] and one item and must return a state derived
// via ContinueWith/Continue/BreakWith/Break. The first step observes
// iteration 0, the initial accumulator, and [Continue].
//
// A step whose result requests [Break], or that consumed the final item,
// terminates the loop; the accumulator of that step's result is the final
// value. The two conditions converge on the final item: requesting Break
// there is observably identical to continuing. Applied to zero items, the
// loop yields the initial accumulator and never invokes body.
//
// Effectful bodies run in strict sequence order: each step's recursive call
// cannot begin before body returns. Recursion depth equals the item count.
func Loop[A, T any](body func(State[A], T) State[A]) func(A) func(...T) A {
	// step consumes one item per call and receives itself through the
	// selection chain's Apply, never through a named binding.
	step := func(self func(State[A], []T) A, s State[A], items []T) A {
		next := body(s, items[0])
		rest := items[1:]

		lastIteration := len(rest) == 0
		mustBreak := next.NextAction() == Break

		return unerase[A](Select(CondOf(mustBreak || lastIteration)).
			Then(func(...Erased) Erased {
				return next.Accumulator()
			}).
			Else(func(args ...Erased) Erased {
				recur := args[0].(func(State[A], []T) A)
				return recur(next, rest)
			}).
			Apply(self))
	}

	return func(initial A) func(...T) A {
		return func(items ...T) A {
			return unerase[A](Select(CondOf(len(items) == 0)).
				Then(func(...Erased) Erased {
					return initial
				}).
				Else(func(...Erased) Erased {
					first := State[A]{acc: initial, next: Continue}
					return Fix2(step)(first, items)
				}).
				Apply())
		}
	}
}

// ForEach applies f to each item in order. It is the stateless companion of
// [Loop]: no iteration index, no accumulator, no early exit.
func ForEach[T any](f func(T), items ...T) {
	for _, x := range items {
		f(x)
	}
}
