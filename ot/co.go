//
// co.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// Chou Orlandi OT - The Simplest Protocol for Oblivious Transfer.
//  - https://eprint.iacr.org/2015/267.pdf
//
// Generalized here from 1-out-of-2 to 1-out-of-4: the receiver's
// blinding point encodes a residue c in [0,4) instead of a single
// bit, and the sender derives one candidate key per residue instead
// of two. The discrete-log argument is unchanged.

/*

This implementation is derived from the EMP Toolkit's co.h
(https://github.com/emp-toolkit/emp-ot/blob/master/emp-ot/co.h)
with original license as follows:

MIT License

Copyright (c) 2018 Xiao Wang (wangxiao1254@gmail.com)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

Enquiries about further applications and development opportunities are welcome.

*/

package ot

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"io"
	"math/big"
)

var (
	bo       = binary.BigEndian
	_  Oracle = ChouOrlandi{}
)

// ChouOrlandi implements the Oracle interface with a real two-party
// discrete-log OT instead of the ideal simulated one. It runs both
// the sender's and the receiver's steps inside Transfer, since this
// evaluator keeps every party in one process.
type ChouOrlandi struct {
	Curve elliptic.Curve
}

// NewChouOrlandi creates a ChouOrlandi oracle over curve P256.
func NewChouOrlandi() ChouOrlandi {
	return ChouOrlandi{Curve: elliptic.P256()}
}

// Transfer implements Oracle.
func (co ChouOrlandi) Transfer(rnd io.Reader, messages [4]bool, choice int) (bool, error) {
	if choice < 0 || choice > 3 {
		return false, ErrChoice
	}
	curve := co.Curve
	if curve == nil {
		curve = elliptic.P256()
	}
	params := curve.Params()

	// Sender: a <- Zp, A = G^a.
	a, err := rand.Int(rnd, params.N)
	if err != nil {
		return false, err
	}
	Ax, Ay := curve.ScalarBaseMult(a.Bytes())

	// Receiver: b <- Zp, B = G^b * A^choice.
	b, err := rand.Int(rnd, params.N)
	if err != nil {
		return false, err
	}
	Bx, By := curve.ScalarBaseMult(b.Bytes())
	if choice != 0 {
		cAx, cAy := curve.ScalarMult(Ax, Ay, big.NewInt(int64(choice)).Bytes())
		Bx, By = curve.Add(Bx, By, cAx, cAy)
	}

	// Sender: Aa = A^a, aB = B^a.
	Aax, Aay := curve.ScalarMult(Ax, Ay, a.Bytes())
	aBx, aBy := curve.ScalarMult(Bx, By, a.Bytes())

	// key_i = aB * Aa^-i, for i in 0..3.
	NegAax := new(big.Int).Set(Aax)
	NegAay := new(big.Int).Sub(params.P, Aay)

	h := sha256.New()
	var keys [4]bool
	for i := 0; i < 4; i++ {
		kx, ky := aBx, aBy
		if i != 0 {
			iNegAax, iNegAay := curve.ScalarMult(NegAax, NegAay, big.NewInt(int64(i)).Bytes())
			kx, ky = curve.Add(aBx, aBy, iNegAax, iNegAay)
		}
		keys[i] = kdfBit(h, kx, ky, uint64(i)) != messages[i]
	}

	// Receiver: K = A^b, recovers messages[choice] from keys[choice].
	Kx, Ky := curve.ScalarMult(Ax, Ay, b.Bytes())
	result := kdfBit(h, Kx, Ky, uint64(choice)) != keys[choice]

	return result, nil
}

// kdfBit derives a single pseudorandom bit from a shared EC point,
// domain-separated by id so that the four per-residue keys in one
// transfer are independent.
func kdfBit(h hash.Hash, x, y *big.Int, id uint64) bool {
	h.Reset()
	h.Write(x.Bytes())
	h.Write(y.Bytes())
	var tmp [8]byte
	bo.PutUint64(tmp[:], id)
	h.Write(tmp[:])
	sum := h.Sum(nil)
	return sum[0]&1 == 1
}
