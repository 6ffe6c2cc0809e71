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

// orGate computes a | b := !(!a & !b) on fresh scratch wires. It
// invokes exactly the same number of pairwise OTs as one AND gate,
// since the only interactive step is the single nested AND.
func orGate(rnd io.Reader, oracle ot.Oracle, gateID circuit.WireID,
	stores []share.Store, alloc *scratchAllocator, out, a, b circuit.WireID) error {

	notA := alloc.next()
	notB := alloc.next()
	andAB := alloc.next()

	notGate(stores, notA, a)
	notGate(stores, notB, b)
	if err := andGate(rnd, oracle, gateID, stores, andAB, notA, notB); err != nil {
		return err
	}
	notGate(stores, out, andAB)
	return nil
}

// scratchAllocator hands out wire ids for OR's temporary NOT/AND
// wires, starting above every id the circuit declares so scratch
// wires can never collide with a real wire.
type scratchAllocator struct {
	n circuit.WireID
}

func newScratchAllocator(c *circuit.Circuit) *scratchAllocator {
	return &scratchAllocator{n: c.MaxWireID() + 1}
}

func (a *scratchAllocator) next() circuit.WireID {
	w := a.n
	a.n++
	return w
}
