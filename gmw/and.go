//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gmw

import (
	"io"

	"github.com/markkurossi/gmw/circuit"
	"github.com/markkurossi/gmw/ot"
	"github.com/markkurossi/gmw/share"
)

// andGate computes shares of z = x & y = (XOR_i x_i) & (XOR_i y_i)
// via the pairwise cross-term OT protocol: each party's local term
// t_i := x_i & y_i needs no communication; the cross term
// c_{i,j} := (x_i & y_j) ^ (x_j & y_i) for each unordered pair {i,j}
// is split between i and j with one 1-out-of-4 OT, sender always the
// lower-indexed party, pairs visited in lexicographic (i,j) order so
// that a fixed RNG stream yields identical share tables run to run.
func andGate(rnd io.Reader, oracle ot.Oracle, gateID circuit.WireID,
	stores []share.Store, out, a, b circuit.WireID) error {

	n := share.PartyID(len(stores))
	z := make([]bool, n)
	for i := share.PartyID(0); i < n; i++ {
		z[i] = stores[i].Get(a) && stores[i].Get(b)
	}

	for i := share.PartyID(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			xi, yi := stores[i].Get(a), stores[i].Get(b)
			xj, yj := stores[j].Get(a), stores[j].Get(b)

			riBuf := make([]byte, 1)
			if _, err := io.ReadFull(rnd, riBuf); err != nil {
				return &OTError{Gate: uint32(gateID), Sender: i, Receiver: j, Err: err}
			}
			ri := riBuf[0]&1 == 1

			// messages indexed by (u,v) = (x_j, y_j) as a 2-bit
			// choice, m(u,v) = ri ^ (xi & v) ^ (u & yi).
			var messages [4]bool
			for idx := 0; idx < 4; idx++ {
				u := idx&2 != 0
				v := idx&1 != 0
				messages[idx] = ri != ((xi && v) != (u && yi))
			}
			choice := boolsToIndex(xj, yj)

			rj, err := oracle.Transfer(rnd, messages, choice)
			if err != nil {
				return &OTError{Gate: uint32(gateID), Sender: i, Receiver: j, Err: err}
			}

			z[i] = z[i] != ri
			z[j] = z[j] != rj
		}
	}

	for i, s := range stores {
		s.Set(out, z[i])
	}
	return nil
}

// boolsToIndex packs (u,v) into a 2-bit index matching the (u,v)
// ordering used when andGate builds its four OT messages.
func boolsToIndex(u, v bool) int {
	idx := 0
	if u {
		idx |= 2
	}
	if v {
		idx |= 1
	}
	return idx
}
