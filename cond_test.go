// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package genflow_test

import (
	"testing"

	"code.hybscloud.com/genflow"
)

func TestCondOfTrue(t *testing.T) {
	c := genflow.CondOf(true)
	if _, ok := c.(genflow.True); !ok {
		t.Fatalf("got %T, want genflow.True", c)
	}
}

func TestCondOfFalse(t *testing.T) {
	c := genflow.CondOf(false)
	if _, ok := c.(genflow.False); !ok {
		t.Fatalf("got %T, want genflow.False", c)
	}
}

func TestCondInterchangeable(t *testing.T) {
	// Two constants with the same boolean are the same value.
	if genflow.CondOf(true) != genflow.Cond(genflow.True{}) {
		t.Fatal("CondOf(true) != True{}")
	}
	if genflow.CondOf(false) != genflow.Cond(genflow.False{}) {
		t.Fatal("CondOf(false) != False{}")
	}
}

func TestCondDistinct(t *testing.T) {
	if genflow.Cond(genflow.True{}) == genflow.Cond(genflow.False{}) {
		t.Fatal("True{} == False{}")
	}
}
