// Package modes implements block cipher modes of operation.
package modes

import (
	"github.com/StyleYuHui/Secure-communication-system/crypto"
	"github.com/StyleYuHui/Secure-communication-system/crypto/params"
)

// CTRBlockCipher implements Counter (CTR) mode: the counter, which starts
// at the nonce itself, is encrypted to produce a keystream block, XORed
// with the plaintext, then incremented for the next block. Encryption and
// decryption are the same operation.
//
// spec.md §3 pins every symmetric nonce to exactly 16 bytes, so unlike the
// generic BouncyCastle SICBlockCipher this never has to accommodate an IV
// shorter than the block size — the counter register is always the full
// block and always starts at a complete nonce, per
// original_source/RustDll's encrypt_ctr.
//
// Reference: NIST SP 800-38A, org.bouncycastle.crypto.modes.SICBlockCipher
type CTRBlockCipher struct {
	cipher     crypto.BlockCipher
	blockSize  int
	IV         []byte
	counter    []byte
	counterOut []byte
	byteCount  int
}

// NewCTRBlockCipher creates a new CTR mode cipher.
func NewCTRBlockCipher(cipher crypto.BlockCipher) *CTRBlockCipher {
	blockSize := cipher.GetBlockSize()
	return &CTRBlockCipher{
		cipher:     cipher,
		blockSize:  blockSize,
		IV:         make([]byte, blockSize),
		counter:    make([]byte, blockSize),
		counterOut: make([]byte, blockSize),
	}
}

// GetUnderlyingCipher returns the underlying block cipher.
func (c *CTRBlockCipher) GetUnderlyingCipher() crypto.BlockCipher {
	return c.cipher
}

// Init primes the counter register at the supplied nonce. forEncryption is
// ignored: CTR always runs the underlying cipher in its encrypting
// direction, since the counter (not the data) is what gets encrypted.
func (c *CTRBlockCipher) Init(forEncryption bool, parameters crypto.CipherParameters) {
	ivParams, ok := parameters.(*params.ParametersWithIV)
	if !ok {
		panic("CTR mode requires ParametersWithIV")
	}

	iv := ivParams.GetIV()
	if len(iv) != c.blockSize {
		panic("CTR mode requires a nonce the same length as the block size")
	}
	copy(c.IV, iv)

	if underlyingParams := ivParams.GetParameters(); underlyingParams != nil {
		c.cipher.Init(true, underlyingParams)
	}

	c.Reset()
}

// GetAlgorithmName returns the algorithm name and mode.
func (c *CTRBlockCipher) GetAlgorithmName() string {
	return c.cipher.GetAlgorithmName() + "/CTR"
}

// GetBlockSize returns the block size.
func (c *CTRBlockCipher) GetBlockSize() int {
	return c.blockSize
}

// ProcessBlock encrypts the current counter value, XORs it with in, then
// advances the counter.
func (c *CTRBlockCipher) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if c.byteCount != 0 {
		return c.processBytes(in, inOff, c.blockSize, out, outOff)
	}

	if inOff+c.blockSize > len(in) {
		panic("input buffer too short")
	}
	if outOff+c.blockSize > len(out) {
		panic("output buffer too short")
	}

	c.cipher.ProcessBlock(c.counter, 0, c.counterOut, 0)
	for i := 0; i < c.blockSize; i++ {
		out[outOff+i] = in[inOff+i] ^ c.counterOut[i]
	}
	c.incrementCounter()

	return c.blockSize
}

// processBytes handles a keystream request that straddles a block boundary
// (the streaming/byte-at-a-time path aes.streamXOR's partial final block
// drives through ProcessBlock with a full-size scratch buffer, so this is
// reachable only if a caller mixes ProcessBlock with raw byte access).
func (c *CTRBlockCipher) processBytes(in []byte, inOff int, length int, out []byte, outOff int) int {
	if inOff+length > len(in) {
		panic("input buffer too short")
	}
	if outOff+length > len(out) {
		panic("output buffer too short")
	}

	for i := 0; i < length; i++ {
		if c.byteCount == 0 {
			c.cipher.ProcessBlock(c.counter, 0, c.counterOut, 0)
		}
		out[outOff+i] = in[inOff+i] ^ c.counterOut[c.byteCount]
		c.byteCount++
		if c.byteCount == c.blockSize {
			c.byteCount = 0
			c.incrementCounter()
		}
	}

	return length
}

// Reset rewinds the counter register to the nonce and resets the underlying cipher.
func (c *CTRBlockCipher) Reset() {
	copy(c.counter, c.IV)
	c.cipher.Reset()
	c.byteCount = 0
}

// incrementCounter increments the 16-byte big-endian counter by 1,
// propagating carry from byte 15 toward byte 0 and wrapping silently on
// overflow, per spec.md §4.2's counter increment rule.
func (c *CTRBlockCipher) incrementCounter() {
	for i := len(c.counter) - 1; i >= 0; i-- {
		c.counter[i]++
		if c.counter[i] != 0 {
			break
		}
	}
}

// Ensure CTRBlockCipher implements BlockCipher interface
var _ crypto.BlockCipher = (*CTRBlockCipher)(nil)
