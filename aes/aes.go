// Package aes provides a high-level, mode-per-method API over the
// BouncyCastle-style engine/mode/padding layers in crypto/.
//
// Every method is a pure function of its explicit byte-slice arguments: keys
// and IVs/nonces are always exactly 16 bytes, matching spec.md §3's data
// model for symmetric key material.
package aes

import (
	"github.com/StyleYuHui/Secure-communication-system/crypto/engines"
	"github.com/StyleYuHui/Secure-communication-system/crypto/modes"
	"github.com/StyleYuHui/Secure-communication-system/crypto/paddings"
	"github.com/StyleYuHui/Secure-communication-system/crypto/params"
	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
)

const (
	keySize   = 16
	blockSize = 16
)

func checkKey(op string, key []byte) error {
	if len(key) != keySize {
		return crerr.Newf(crerr.KindInvalidArgument, op, "key must be %d bytes, got %d", keySize, len(key))
	}
	return nil
}

func checkIV(op string, iv []byte) error {
	if len(iv) != blockSize {
		return crerr.Newf(crerr.KindInvalidArgument, op, "IV/nonce must be %d bytes, got %d", blockSize, len(iv))
	}
	return nil
}

// doFinal drives a BufferedBlockCipher to completion over the whole input
// and returns the result trimmed to the bytes actually produced.
func doFinal(cipher *modes.PaddedBufferedBlockCipher, in []byte) ([]byte, error) {
	out := make([]byte, cipher.GetOutputSize(len(in)))

	n, err := cipher.ProcessBytes(in, 0, len(in), out, 0)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes", "%v", err)
	}

	n2, err := cipher.DoFinal(out, n)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes", "%v", err)
	}

	return out[:n+n2], nil
}

// processBlocks runs a raw (unpadded) BlockCipherMode over plaintext/
// ciphertext whose length is an exact multiple of the block size,
// processing the input one block at a time.
func processBlocks(mode interface {
	GetBlockSize() int
	ProcessBlock(in []byte, inOff int, out []byte, outOff int) int
}, in []byte) []byte {
	out := make([]byte, len(in))
	bs := mode.GetBlockSize()
	for off := 0; off < len(in); off += bs {
		mode.ProcessBlock(in, off, out, off)
	}
	return out
}

// Encrypt encrypts plaintext with AES in ECB mode, padded with PKCS#7.
//
// ECB mode is not secure for general use — see crypto/modes.ECBBlockCipher —
// and is offered here only because spec.md §4.2 names it as one of the
// required modes.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if err := checkKey("aes.Encrypt", key); err != nil {
		return nil, err
	}

	engine := engines.NewAESEngine()
	mode := modes.NewECBBlockCipher(engine)
	cipher := modes.NewPaddedBufferedBlockCipher(mode, paddings.NewPKCS7Padding())
	cipher.Init(true, params.NewKeyParameter(key))

	return doFinal(cipher, plaintext)
}

// Decrypt decrypts ciphertext produced by Encrypt.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	if err := checkKey("aes.Decrypt", key); err != nil {
		return nil, err
	}
	if len(ciphertext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.Decrypt", "ciphertext length %d is not a multiple of %d", len(ciphertext), blockSize)
	}

	engine := engines.NewAESEngine()
	mode := modes.NewECBBlockCipher(engine)
	cipher := modes.NewPaddedBufferedBlockCipher(mode, paddings.NewPKCS7Padding())
	cipher.Init(false, params.NewKeyParameter(key))

	return doFinal(cipher, ciphertext)
}

// EncryptNoPad encrypts plaintext with AES in ECB mode without padding.
// The caller is responsible for len(plaintext) being a multiple of 16.
func EncryptNoPad(plaintext, key []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptNoPad", key); err != nil {
		return nil, err
	}
	if len(plaintext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.EncryptNoPad", "plaintext length %d is not a multiple of %d", len(plaintext), blockSize)
	}

	engine := engines.NewAESEngine()
	engine.Init(true, params.NewKeyParameter(key))
	mode := modes.NewECBBlockCipher(engine)

	return processBlocks(mode, plaintext), nil
}

// DecryptNoPad decrypts ciphertext produced by EncryptNoPad.
func DecryptNoPad(ciphertext, key []byte) ([]byte, error) {
	if err := checkKey("aes.DecryptNoPad", key); err != nil {
		return nil, err
	}
	if len(ciphertext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.DecryptNoPad", "ciphertext length %d is not a multiple of %d", len(ciphertext), blockSize)
	}

	engine := engines.NewAESEngine()
	engine.Init(false, params.NewKeyParameter(key))
	mode := modes.NewECBBlockCipher(engine)

	return processBlocks(mode, ciphertext), nil
}

// EncryptCBC encrypts plaintext with AES in CBC mode, padded with PKCS#7.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptCBC", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.EncryptCBC", iv); err != nil {
		return nil, err
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCBCBlockCipher(engine)
	cipher := modes.NewPaddedBufferedBlockCipher(mode, paddings.NewPKCS7Padding())
	cipher.Init(true, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return doFinal(cipher, plaintext)
}

// DecryptCBC decrypts ciphertext produced by EncryptCBC.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.DecryptCBC", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.DecryptCBC", iv); err != nil {
		return nil, err
	}
	if len(ciphertext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.DecryptCBC", "ciphertext length %d is not a multiple of %d", len(ciphertext), blockSize)
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCBCBlockCipher(engine)
	cipher := modes.NewPaddedBufferedBlockCipher(mode, paddings.NewPKCS7Padding())
	cipher.Init(false, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return doFinal(cipher, ciphertext)
}

// EncryptCBCNoPad encrypts plaintext with AES in CBC mode without padding.
// The caller is responsible for len(plaintext) being a multiple of 16.
func EncryptCBCNoPad(plaintext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptCBCNoPad", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.EncryptCBCNoPad", iv); err != nil {
		return nil, err
	}
	if len(plaintext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.EncryptCBCNoPad", "plaintext length %d is not a multiple of %d", len(plaintext), blockSize)
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCBCBlockCipher(engine)
	mode.Init(true, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return processBlocks(mode, plaintext), nil
}

// DecryptCBCNoPad decrypts ciphertext produced by EncryptCBCNoPad.
func DecryptCBCNoPad(ciphertext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.DecryptCBCNoPad", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.DecryptCBCNoPad", iv); err != nil {
		return nil, err
	}
	if len(ciphertext)%blockSize != 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "aes.DecryptCBCNoPad", "ciphertext length %d is not a multiple of %d", len(ciphertext), blockSize)
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCBCBlockCipher(engine)
	mode.Init(false, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return processBlocks(mode, ciphertext), nil
}

// streamXOR drives a stream-shaped BlockCipherMode (CTR/OFB/CFB) over data
// of arbitrary length, truncating the final partial block to len(data).
func streamXOR(mode interface {
	GetBlockSize() int
	ProcessBlock(in []byte, inOff int, out []byte, outOff int) int
}, data []byte) []byte {
	out := make([]byte, len(data))
	bs := mode.GetBlockSize()

	full := len(data) / bs * bs
	for off := 0; off < full; off += bs {
		mode.ProcessBlock(data, off, out, off)
	}

	if rem := len(data) - full; rem > 0 {
		buf := make([]byte, bs)
		copy(buf, data[full:])
		outBuf := make([]byte, bs)
		mode.ProcessBlock(buf, 0, outBuf, 0)
		copy(out[full:], outBuf[:rem])
	}

	return out
}

// EncryptCTR encrypts plaintext with AES in CTR mode. Encryption and
// decryption are the same operation, provided via DecryptCTR for clarity.
func EncryptCTR(plaintext, key, nonce []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptCTR", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.EncryptCTR", nonce); err != nil {
		return nil, err
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCTRBlockCipher(engine)
	mode.Init(true, params.NewParametersWithIV(params.NewKeyParameter(key), nonce))

	return streamXOR(mode, plaintext), nil
}

// DecryptCTR decrypts ciphertext produced by EncryptCTR.
func DecryptCTR(ciphertext, key, nonce []byte) ([]byte, error) {
	return EncryptCTR(ciphertext, key, nonce)
}

// EncryptOFB encrypts plaintext with AES in OFB-128 mode. Encryption and
// decryption are the same operation, provided via DecryptOFB for clarity.
func EncryptOFB(plaintext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptOFB", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.EncryptOFB", iv); err != nil {
		return nil, err
	}

	engine := engines.NewAESEngine()
	mode := modes.NewOFBBlockCipher(engine, blockSize*8)
	mode.Init(true, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return streamXOR(mode, plaintext), nil
}

// DecryptOFB decrypts ciphertext produced by EncryptOFB.
func DecryptOFB(ciphertext, key, iv []byte) ([]byte, error) {
	return EncryptOFB(ciphertext, key, iv)
}

// EncryptCFB encrypts plaintext with AES in CFB-128 mode.
func EncryptCFB(plaintext, key, iv []byte) ([]byte, error) {
	if err := checkKey("aes.EncryptCFB", key); err != nil {
		return nil, err
	}
	if err := checkIV("aes.EncryptCFB", iv); err != nil {
		return nil, err
	}

	engine := engines.NewAESEngine()
	mode := modes.NewCFBBlockCipher(engine, blockSize*8)
	mode.Init(true, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return streamXOR(mode, plaintext), nil
}

// DecryptCFB decrypts ciphertext produced by EncryptCFB.
func DecryptCFB(ciphertext, key, iv []byte) ([]byte, error) {
	engine := engines.NewAESEngine()
	mode := modes.NewCFBBlockCipher(engine, blockSize*8)
	mode.Init(false, params.NewParametersWithIV(params.NewKeyParameter(key), iv))

	return streamXOR(mode, ciphertext), nil
}
