//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gmw

import (
	"github.com/markkurossi/gmw/circuit"
	"github.com/markkurossi/gmw/share"
)

// xorGate applies the local XOR share transformation: every party i
// sets c_i := a_i ^ b_i, with no communication. Correctness:
// XOR_i(c_i) = XOR_i(a_i ^ b_i) = XOR_i(a_i) ^ XOR_i(b_i).
func xorGate(stores []share.Store, out, a, b circuit.WireID) {
	for _, s := range stores {
		s.Set(out, s.Get(a) != s.Get(b))
	}
}

// notGate applies the local NOT share transformation: party 0 flips
// its share; every other party copies its share unchanged.
// Correctness: XOR_i(c_i) = !a_0 ^ a_1 ^ ... = !(XOR_i(a_i)).
func notGate(stores []share.Store, out, a circuit.WireID) {
	for i, s := range stores {
		if i == 0 {
			s.Set(out, !s.Get(a))
		} else {
			s.Set(out, s.Get(a))
		}
	}
}
