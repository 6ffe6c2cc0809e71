//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/gmw/env"
	"github.com/markkurossi/gmw/gmw"
)

func TestLoadCircuitHalfAdder(t *testing.T) {
	c, err := loadCircuit("testdata/half_adder.json")
	require.NoError(t, err)
	assert.Equal(t, "half-adder", c.Name)
	assert.Len(t, c.InputWires, 2)
	assert.Len(t, c.OutputWires, 2)
}

func TestLoadCircuitMissingFile(t *testing.T) {
	_, err := loadCircuit("testdata/does-not-exist.json")
	require.Error(t, err)
}

func TestParseBits(t *testing.T) {
	bits, err := parseBits([]string{"1", "0", "1"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, bits)
}

func TestParseBitsRejectsNonBit(t *testing.T) {
	_, err := parseBits([]string{"2"})
	require.Error(t, err)
}

func TestSelectOracle(t *testing.T) {
	_, err := selectOracle("ideal")
	require.NoError(t, err)

	_, err = selectOracle("co")
	require.NoError(t, err)

	_, err = selectOracle("bogus")
	require.Error(t, err)
}

func TestEndToEndMux2(t *testing.T) {
	c, err := loadCircuit("testdata/mux2.json")
	require.NoError(t, err)

	oracle, err := selectOracle("ideal")
	require.NoError(t, err)

	out, err := gmw.Evaluate(c, []bool{false, true, true}, 2, oracle, &env.Config{})
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, out)
}
