//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/json"
	"io"
)

// jsonCircuit mirrors the circuit file format's top-level object.
type jsonCircuit struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Metadata    jsonMeta   `json:"metadata"`
	Gates       []jsonGate `json:"gates"`
}

type jsonMeta struct {
	Inputs  []jsonInput  `json:"inputs"`
	Outputs []jsonOutput `json:"outputs"`
}

type jsonInput struct {
	Name   string `json:"name"`
	WireID WireID `json:"wire_id"`
}

type jsonOutput struct {
	Name   string `json:"name"`
	GateID WireID `json:"gate_id"`
}

type jsonGate struct {
	ID   WireID   `json:"id"`
	Type string   `json:"type"`
	In   []WireID `json:"in"`
}

// Parse reads a circuit from its JSON representation and validates
// it. A malformed document yields a *ParseError; a well-formed but
// structurally invalid circuit yields a *ValidationError.
func Parse(r io.Reader) (*Circuit, error) {
	var doc jsonCircuit
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Detail: "malformed circuit document", Err: err}
	}

	c := &Circuit{
		Name:        doc.Name,
		Description: doc.Description,
	}
	for _, in := range doc.Metadata.Inputs {
		c.InputWires = append(c.InputWires, in.WireID)
	}
	for _, out := range doc.Metadata.Outputs {
		c.OutputWires = append(c.OutputWires, out.GateID)
	}

	for _, g := range doc.Gates {
		kind, err := parseKind(g.Type)
		if err != nil {
			return nil, err
		}
		c.Gates = append(c.Gates, Gate{
			ID:     g.ID,
			Kind:   kind,
			Inputs: append([]WireID(nil), g.In...),
		})
	}

	if err := Validate(c); err != nil {
		return nil, err
	}

	for _, g := range c.Gates {
		c.Stats[g.Kind]++
	}

	return c, nil
}

func parseKind(s string) (Kind, error) {
	switch s {
	case "XOR":
		return XOR, nil
	case "NOT":
		return NOT, nil
	case "AND":
		return AND, nil
	case "OR":
		return OR, nil
	default:
		return 0, parseErrorf("unknown gate type %q", s)
	}
}

// Validate checks the structural invariants from the data model: gate
// ids are unique and disjoint from input wire ids, every gate input
// refers to an earlier-declared wire (an input wire or a previously
// listed gate), every gate has the arity its kind requires, and every
// output wire refers to a known wire.
func Validate(c *Circuit) error {
	known := make(map[WireID]bool, len(c.InputWires)+len(c.Gates))
	for _, w := range c.InputWires {
		if known[w] {
			return validationErrorf(w, "duplicate input wire id")
		}
		known[w] = true
	}

	for _, g := range c.Gates {
		if known[g.ID] {
			return validationErrorf(g.ID, "duplicate gate id")
		}
		if g.Kind.Arity() != len(g.Inputs) {
			return validationErrorf(g.ID,
				"gate %s expects %d input(s), got %d", g.Kind, g.Kind.Arity(), len(g.Inputs))
		}
		for _, in := range g.Inputs {
			if !known[in] {
				return validationErrorf(g.ID,
					"gate input %s references an unknown or not-yet-declared wire", in)
			}
		}
		known[g.ID] = true
	}

	for _, w := range c.OutputWires {
		if !known[w] {
			return validationErrorf(w, "output references an unknown wire")
		}
	}

	return nil
}
