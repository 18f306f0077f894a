// Package abi is the C-ABI-shaped adapter: the one place in this module
// that is explicitly plumbing rather than core, per spec.md §1/§6. It
// marshals fixed-length hex strings into key/IV byte arrays, decimal
// strings into big integers, and writes results into caller-provided
// output buffers behind a small integer status-code taxonomy.
//
// Grounded on original_source/RustDll/src/lib.rs's crypto_<algo>_<op>
// exports (hex_to_bytes, write_to_buffer, the CRYPTO_* status constants).
// Deliberately not a literal translation: the Rust lib.rs exposes raw
// pointers across an FFI boundary (`*const u8`, `*mut usize`); nothing in
// this module needs actual cgo, so the "buffer" here is just a Go []byte
// the caller owns, and size reporting uses an in/out *int the same way
// the Rust code uses *mut usize.
package abi

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/StyleYuHui/Secure-communication-system/aes"
	"github.com/StyleYuHui/Secure-communication-system/dlog"
	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
	"github.com/StyleYuHui/Secure-communication-system/rsacore"
)

func parseBig(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}

// Status codes mirror the Rust CRYPTO_* constants, with one addition:
// StatusVerifyMismatch. spec.md §9's open question flags that the source
// collapses "signature didn't verify" into the same code as "garbage
// input"; this adapter gives it a status of its own rather than guessing
// the original's intent was load-bearing.
type Status int32

const (
	StatusSuccess          Status = 0
	StatusInvalidParameter Status = -1
	StatusBufferTooSmall   Status = -2
	StatusInternal         Status = -3
	StatusVerifyMismatch   Status = -4
)

// writeBuffer copies data into out, reporting how many bytes were written
// or, on StatusBufferTooSmall, how many bytes would be required.
//
// Grounded on lib.rs's write_to_buffer: *outLen is an in/out slot — in:
// capacity, out: bytes written or bytes required.
func writeBuffer(data []byte, out []byte, outLen *int) Status {
	if *outLen < len(data) {
		*outLen = len(data)
		return StatusBufferTooSmall
	}
	n := copy(out, data)
	*outLen = n
	return StatusSuccess
}

// hexToBytes decodes exactly 16 bytes of key/IV material from a hex
// string.
//
// Grounded on lib.rs's hex_to_bytes, with the corrected reading per
// spec.md §9's open question: a short hex string is a hard error, not
// silently zero-extended on an orphan nibble. A trailing NUL byte, as the
// Rust adapter tolerates for a C-string-terminated buffer, is stripped
// before length validation.
func hexToBytes(s string) ([]byte, Status) {
	if len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	if len(s) != 32 {
		return nil, StatusInvalidParameter
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, StatusInvalidParameter
	}
	return b, StatusSuccess
}

func statusForErr(err error) Status {
	if crerr.IsKind(err, crerr.KindInvalidArgument) {
		return StatusInvalidParameter
	}
	if crerr.IsKind(err, crerr.KindMathNonExistence) {
		return StatusInternal
	}
	return StatusInternal
}

// AESEncryptECB mirrors crypto_aes_ecb_encrypt: keyHex is a 32-character
// hex string, data is the plaintext, out receives the ciphertext.
func AESEncryptECB(keyHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.Encrypt(data, key)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptECB mirrors crypto_aes_ecb_decrypt.
func AESDecryptECB(keyHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	plaintext, err := aes.Decrypt(data, key)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// AESEncryptCBC mirrors crypto_aes_cbc_encrypt.
func AESEncryptCBC(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptCBC(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptCBC mirrors crypto_aes_cbc_decrypt.
func AESDecryptCBC(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	plaintext, err := aes.DecryptCBC(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// AESEncryptCTR mirrors crypto_aes_ctr_encrypt.
func AESEncryptCTR(keyHex, nonceHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	nonce, st := hexToBytes(nonceHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptCTR(data, key, nonce)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptCTR mirrors crypto_aes_ctr_decrypt.
func AESDecryptCTR(keyHex, nonceHex string, data []byte, out []byte, outLen *int) Status {
	return AESEncryptCTR(keyHex, nonceHex, data, out, outLen)
}

// AESEncryptECBNoPad mirrors crypto_aes_ecb_no_padding_encrypt: data must be
// a multiple of the block size, since there is no padding to absorb a
// partial final block.
func AESEncryptECBNoPad(keyHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptNoPad(data, key)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptECBNoPad mirrors crypto_aes_ecb_no_padding_decrypt.
func AESDecryptECBNoPad(keyHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	plaintext, err := aes.DecryptNoPad(data, key)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// AESEncryptCBCNoPad mirrors crypto_aes_cbc_no_padding_encrypt.
func AESEncryptCBCNoPad(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptCBCNoPad(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptCBCNoPad mirrors crypto_aes_cbc_no_padding_decrypt.
func AESDecryptCBCNoPad(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	plaintext, err := aes.DecryptCBCNoPad(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// AESEncryptOFB mirrors crypto_aes_ofb_encrypt.
func AESEncryptOFB(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptOFB(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptOFB mirrors crypto_aes_ofb_decrypt.
func AESDecryptOFB(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	return AESEncryptOFB(keyHex, ivHex, data, out, outLen)
}

// AESEncryptCFB mirrors crypto_aes_cfb_encrypt.
func AESEncryptCFB(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	ciphertext, err := aes.EncryptCFB(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// AESDecryptCFB mirrors crypto_aes_cfb_decrypt. Unlike CTR/OFB, CFB
// decryption is not the same operation as encryption, so this calls
// aes.DecryptCFB directly rather than aliasing the encrypt wrapper.
func AESDecryptCFB(keyHex, ivHex string, data []byte, out []byte, outLen *int) Status {
	key, st := hexToBytes(keyHex)
	if st != StatusSuccess {
		return st
	}
	iv, st := hexToBytes(ivHex)
	if st != StatusSuccess {
		return st
	}
	plaintext, err := aes.DecryptCFB(data, key, iv)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// RSAGenerateKeys mirrors crypto_rsa_generate_keys: generates a keypair at
// bitLength bits per prime and writes n/e/d as decimal strings.
func RSAGenerateKeys(bitLength int, nOut, eOut, dOut []byte, nLen, eLen, dLen *int) Status {
	kp, err := rsacore.Generate(rand.Reader, bitLength)
	if err != nil {
		return statusForErr(err)
	}

	n, e := kp.PublicDecimal()
	_, d := kp.PrivateDecimal()

	if st := writeBuffer([]byte(n), nOut, nLen); st != StatusSuccess {
		return st
	}
	if st := writeBuffer([]byte(e), eOut, eLen); st != StatusSuccess {
		return st
	}
	return writeBuffer([]byte(d), dOut, dLen)
}

// RSAEncrypt mirrors crypto_rsa_encrypt.
func RSAEncrypt(n, e string, message []byte, out []byte, outLen *int) Status {
	kp, err := rsacore.NewFromDecimalPublic(n, e)
	if err != nil {
		return StatusInvalidParameter
	}
	ciphertext, err := kp.Encrypt(message)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(ciphertext, out, outLen)
}

// RSADecrypt mirrors crypto_rsa_decrypt.
func RSADecrypt(n, d string, ciphertext []byte, out []byte, outLen *int) Status {
	kp, err := rsacore.NewFromDecimalPrivate(n, d)
	if err != nil {
		return StatusInvalidParameter
	}
	plaintext, err := kp.Decrypt(ciphertext)
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer(plaintext, out, outLen)
}

// ElGamalGenerateKeys mirrors crypto_elgamal_generate_keys.
func ElGamalGenerateKeys(bitLength int, pOut, gOut, yOut, xOut []byte, pLen, gLen, yLen, xLen *int) Status {
	kp, err := dlog.Generate(rand.Reader, bitLength)
	if err != nil {
		return statusForErr(err)
	}

	p, g, y, x := kp.PrivateDecimal()

	if st := writeBuffer([]byte(p), pOut, pLen); st != StatusSuccess {
		return st
	}
	if st := writeBuffer([]byte(g), gOut, gLen); st != StatusSuccess {
		return st
	}
	if st := writeBuffer([]byte(y), yOut, yLen); st != StatusSuccess {
		return st
	}
	return writeBuffer([]byte(x), xOut, xLen)
}

// ElGamalEncrypt mirrors crypto_elgamal_encrypt: message is hashed into an
// integer via dlog.HashToInt exactly as sha256_to_biguint does in the
// source, then encrypted.
func ElGamalEncrypt(p, g, y string, message []byte, c1Out, c2Out []byte, c1Len, c2Len *int) Status {
	kp, err := dlog.NewFromDecimalPublic(p, g, y)
	if err != nil {
		return StatusInvalidParameter
	}

	m := dlog.HashToInt(message)
	ct, err := kp.Encrypt(rand.Reader, m)
	if err != nil {
		return statusForErr(err)
	}

	if st := writeBuffer([]byte(ct.C1.String()), c1Out, c1Len); st != StatusSuccess {
		return st
	}
	return writeBuffer([]byte(ct.C2.String()), c2Out, c2Len)
}

// ElGamalDecrypt mirrors crypto_elgamal_decrypt.
func ElGamalDecrypt(p, g, x, c1, c2 string, out []byte, outLen *int) Status {
	kp, err := dlog.NewFromDecimalPrivate(p, g, x)
	if err != nil {
		return StatusInvalidParameter
	}

	c1Val, ok1 := parseBig(c1)
	c2Val, ok2 := parseBig(c2)
	if !ok1 || !ok2 {
		return StatusInvalidParameter
	}

	m, err := kp.Decrypt(&dlog.Ciphertext{C1: c1Val, C2: c2Val})
	if err != nil {
		return statusForErr(err)
	}
	return writeBuffer([]byte(m.String()), out, outLen)
}

// ElGamalSign mirrors crypto_elgamal_sign.
func ElGamalSign(p, g, x string, message []byte, rOut, sOut []byte, rLen, sLen *int) Status {
	kp, err := dlog.NewFromDecimalPrivate(p, g, x)
	if err != nil {
		return StatusInvalidParameter
	}

	h := dlog.HashToInt(message)
	sig, err := kp.Sign(rand.Reader, h)
	if err != nil {
		return statusForErr(err)
	}

	if st := writeBuffer([]byte(sig.R.String()), rOut, rLen); st != StatusSuccess {
		return st
	}
	return writeBuffer([]byte(sig.S.String()), sOut, sLen)
}

// ElGamalVerify mirrors crypto_elgamal_verify, but returns
// StatusVerifyMismatch on a failed verification instead of collapsing it
// into StatusInvalidParameter, per spec.md §9's open question.
func ElGamalVerify(p, g, y string, message []byte, r, s string) Status {
	kp, err := dlog.NewFromDecimalPublic(p, g, y)
	if err != nil {
		return StatusInvalidParameter
	}

	rVal, ok1 := parseBig(r)
	sVal, ok2 := parseBig(s)
	if !ok1 || !ok2 {
		return StatusInvalidParameter
	}

	h := dlog.HashToInt(message)
	if kp.Verify(h, &dlog.Signature{R: rVal, S: sVal}) {
		return StatusSuccess
	}
	return StatusVerifyMismatch
}
