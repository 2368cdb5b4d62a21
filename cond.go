// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow

// Type-level boolean constants.
// A condition's identity is fixed by its static type: True and False are
// distinct zero-sized types, and every True{} is interchangeable with every
// other True{}. Conditions carry no payload and exist only for dispatch.

// Cond is the marker interface for type-level boolean constants.
// Its implementations are [True] and [False].
type Cond interface{ holds() bool }

// True is the type-level true constant.
type True struct{}

// False is the type-level false constant.
type False struct{}

func (True) holds() bool  { return true }
func (False) holds() bool { return false }

// CondOf lifts a statically-known boolean expression into a type-level
// constant, e.g. CondOf(len(rest) == 0).
func CondOf(v bool) Cond {
	if v {
		return True{}
	}
	return False{}
}
