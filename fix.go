// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow

// Fixpoint combinators give an anonymous function a stable handle to
// itself. The combinator owns the underlying function; its bound call
// method forwards itself as the leading argument, so nested self-calls
// observe the same combinator instance and recursion terminates according
// to f's own base case.

type fix[A, R any] struct {
	f func(self func(A) R, a A) R
}

func (c *fix[A, R]) call(a A) R { return c.f(c.call, a) }

// Fix returns the fixpoint of f: Fix(f)(a) evaluates f(self, a), where self
// is the returned callable itself.
//
// Example:
//
//	fact := Fix(func(self func(int) int, n int) int {
//		if n == 0 {
//			return 1
//		}
//		return n * self(n-1)
//	})
//	fact(5) // 120
func Fix[A, R any](f func(self func(A) R, a A) R) func(A) R {
	return (&fix[A, R]{f: f}).call
}

type fix2[A, B, R any] struct {
	f func(self func(A, B) R, a A, b B) R
}

func (c *fix2[A, B, R]) call(a A, b B) R { return c.f(c.call, a, b) }

// Fix2 is the two-argument form of [Fix].
func Fix2[A, B, R any](f func(self func(A, B) R, a A, b B) R) func(A, B) R {
	return (&fix2[A, B, R]{f: f}).call
}
