//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gmw

import (
	"errors"
	"fmt"

	"github.com/markkurossi/gmw/share"
)

// ErrInputCount indicates the CLI's flat bit list did not match the
// circuit's declared input wire count.
var ErrInputCount = errors.New("gmw: input count mismatch")

// ErrOT indicates the OT oracle failed.
var ErrOT = errors.New("gmw: oblivious transfer failed")

// ErrInternal indicates an invariant the protocol guarantees was
// violated. It should be unreachable; seeing it means there is a bug
// in the driver or a gate handler, not a bad input.
var ErrInternal = errors.New("gmw: internal invariant violation")

// InputCountError wraps ErrInputCount with the expected and actual
// counts.
type InputCountError struct {
	Expected, Got int
}

func (e *InputCountError) Error() string {
	return fmt.Sprintf("gmw: expected %d input bits, got %d", e.Expected, e.Got)
}

func (e *InputCountError) Unwrap() error {
	return ErrInputCount
}

// OTError wraps ErrOT with the gate and party pair where the failure
// occurred.
type OTError struct {
	Gate             uint32
	Sender, Receiver share.PartyID
	Err              error
}

func (e *OTError) Error() string {
	return fmt.Sprintf("gmw: OT failed at gate %d between parties %d (sender) and %d (receiver): %v",
		e.Gate, e.Sender, e.Receiver, e.Err)
}

func (e *OTError) Unwrap() error {
	return ErrOT
}

func internalErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
