//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package ot

import "errors"

// ErrChoice indicates an out-of-range receiver choice index.
var ErrChoice = errors.New("ot: choice index out of range [0,4)")
