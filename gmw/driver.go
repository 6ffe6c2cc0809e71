//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gmw

import (
	"fmt"

	"github.com/markkurossi/gmw/circuit"
	"github.com/markkurossi/gmw/env"
	"github.com/markkurossi/gmw/ot"
	"github.com/markkurossi/gmw/share"
)

// Evaluate runs the GMW protocol for circ against the per-party input
// bits, and returns the reconstructed output bits in the order
// circ.OutputWires declares them.
//
// inputs holds exactly one bit per declared input wire: the owner of
// the input wire at declaration position k is party k mod n, per
// this driver's resolution of the input-to-party mapping (the
// circuit format carries no owner field). Ownership is bookkeeping
// only: every wire's shares are drawn from the single randomness
// source in config, so the driver never computes the owner and the
// shared value does not depend on which party is nominally the owner.
//
// circ is checked with circuit.Validate before any share is written.
func Evaluate(circ *circuit.Circuit, inputs []bool, n int, oracle ot.Oracle, config *env.Config) ([]bool, error) {
	if len(inputs) != len(circ.InputWires) {
		return nil, &InputCountError{Expected: len(circ.InputWires), Got: len(inputs)}
	}
	if n < 1 {
		return nil, fmt.Errorf("gmw: need at least 1 party, got %d", n)
	}
	if err := circuit.Validate(circ); err != nil {
		return nil, err
	}

	rnd := config.GetRandom()

	stores := make([]share.Store, n)
	for i := range stores {
		stores[i] = share.NewStore()
	}

	for k, w := range circ.InputWires {
		shares, err := share.ShareInput(rnd, inputs[k], n)
		if err != nil {
			return nil, err
		}
		for i, s := range stores {
			s.Set(w, shares[i])
		}
	}

	alloc := newScratchAllocator(circ)

	for _, g := range circ.Gates {
		switch g.Kind {
		case circuit.XOR:
			xorGate(stores, g.ID, g.Inputs[0], g.Inputs[1])
		case circuit.NOT:
			notGate(stores, g.ID, g.Inputs[0])
		case circuit.AND:
			if err := andGate(rnd, oracle, g.ID, stores, g.ID, g.Inputs[0], g.Inputs[1]); err != nil {
				return nil, err
			}
		case circuit.OR:
			if err := orGate(rnd, oracle, g.ID, stores, alloc, g.ID, g.Inputs[0], g.Inputs[1]); err != nil {
				return nil, err
			}
		default:
			return nil, internalErrorf("unhandled gate kind %s at gate %s", g.Kind, g.ID)
		}
	}

	outputs := make([]bool, len(circ.OutputWires))
	for i, w := range circ.OutputWires {
		outputs[i] = share.Reconstruct(stores, w)
	}
	return outputs, nil
}
