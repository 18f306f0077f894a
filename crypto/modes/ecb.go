// Package modes implements block cipher modes of operation.
package modes

import (
	"github.com/StyleYuHui/Secure-communication-system/crypto"
)

// ECBBlockCipher implements Electronic Codebook (ECB) mode: each block is
// encrypted/decrypted independently, with no chaining. spec.md §1/§4.2
// names it as one of the seven required modes, not as a recommendation —
// identical plaintext blocks always produce identical ciphertext blocks.
//
// Reference: NIST SP 800-38A, org.bouncycastle.crypto.modes.ECBBlockCipher
type ECBBlockCipher struct {
	cipher    crypto.BlockCipher
	blockSize int
}

// NewECBBlockCipher wraps cipher (always an AESEngine in this module) in ECB mode.
func NewECBBlockCipher(cipher crypto.BlockCipher) *ECBBlockCipher {
	return &ECBBlockCipher{
		cipher:    cipher,
		blockSize: cipher.GetBlockSize(),
	}
}

// GetUnderlyingCipher returns the underlying block cipher.
func (e *ECBBlockCipher) GetUnderlyingCipher() crypto.BlockCipher {
	return e.cipher
}

// Init forwards forEncryption and params straight to the underlying cipher;
// ECB has no chaining state of its own to set up.
func (e *ECBBlockCipher) Init(forEncryption bool, params crypto.CipherParameters) {
	e.cipher.Init(forEncryption, params)
}

// GetAlgorithmName returns the algorithm name and mode.
func (e *ECBBlockCipher) GetAlgorithmName() string {
	return e.cipher.GetAlgorithmName() + "/ECB"
}

// GetBlockSize returns the block size in bytes.
func (e *ECBBlockCipher) GetBlockSize() int {
	return e.blockSize
}

// ProcessBlock passes the block straight through to the underlying cipher.
func (e *ECBBlockCipher) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if inOff+e.blockSize > len(in) {
		panic("input buffer too short")
	}

	if outOff+e.blockSize > len(out) {
		panic("output buffer too short")
	}

	return e.cipher.ProcessBlock(in, inOff, out, outOff)
}

// Reset resets the underlying cipher.
func (e *ECBBlockCipher) Reset() {
	e.cipher.Reset()
}

// Ensure ECBBlockCipher implements BlockCipher interface
var _ crypto.BlockCipher = (*ECBBlockCipher)(nil)
