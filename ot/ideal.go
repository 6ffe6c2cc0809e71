//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package ot

import (
	"io"
)

// Ideal is the trivial simulated oracle: the receiver reads the
// selected message directly, exactly as the ideal OT functionality is
// defined. It carries no cryptography and is what this single-process
// simulator actually runs by default, since no party here is
// separated from any other by a real network.
type Ideal struct{}

// Transfer implements Oracle.
func (Ideal) Transfer(rnd io.Reader, messages [4]bool, choice int) (bool, error) {
	if choice < 0 || choice > 3 {
		return false, ErrChoice
	}
	return messages[choice], nil
}
