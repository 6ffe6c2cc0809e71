//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20"
)

// SeededRand returns a deterministic io.Reader producing the same
// byte stream for the same seed. Tests use it to fix the randomness
// that drives share sampling and masking-bit selection so that a
// circuit evaluation is reproducible run to run, per the "fixed RNG
// seed" determinism the evaluator guarantees.
//
// The seed is hashed into a 256-bit ChaCha20 key; the stream is the
// ChaCha20 keystream over an all-zero nonce, which is safe here
// because each Config using this reader is used for exactly one
// evaluation.
func SeededRand(seed []byte) io.Reader {
	key := sha256.Sum256(seed)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// chacha20.NewUnauthenticatedCipher only fails on bad key/nonce
		// lengths, which are fixed above.
		panic(err)
	}
	return &chachaReader{cipher: cipher}
}

type chachaReader struct {
	cipher *chacha20.Cipher
}

func (r *chachaReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
