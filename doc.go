// Package cryptosuite provides a pure Go implementation of three classical
// cryptographic primitives built from first principles: an AES-128 block
// cipher with seven modes of operation, a textbook RSA-style
// integer-factoring keypair engine, and a discrete-log keypair engine
// offering both ElGamal-style encryption and a q-modulus signature scheme.
//
// # Installation
//
//	go get github.com/StyleYuHui/Secure-communication-system
//
// # AES Symmetric Encryption Example
//
//	import "github.com/StyleYuHui/Secure-communication-system/aes"
//
//	key := []byte("0123456789abcdef")
//	ciphertext, err := aes.EncryptCBC(plaintext, key, iv)
//	plaintext, err := aes.DecryptCBC(ciphertext, key, iv)
//
// Callers who want direct access to the BouncyCastle-style
// engine/mode/padding layers can still compose them by hand:
//
//	import (
//	    "github.com/StyleYuHui/Secure-communication-system/crypto/engines"
//	    "github.com/StyleYuHui/Secure-communication-system/crypto/modes"
//	    "github.com/StyleYuHui/Secure-communication-system/crypto/paddings"
//	)
//
//	engine := engines.NewAESEngine()
//	mode := modes.NewCBCBlockCipher(engine)
//	padding := paddings.NewPKCS7Padding()
//	cipher := modes.NewPaddedBufferedBlockCipher(mode, padding)
//
// # Integer-Factoring Keypair Example
//
//	import "github.com/StyleYuHui/Secure-communication-system/rsacore"
//
//	kp, err := rsacore.Generate(rand.Reader, 512)
//	ciphertext, err := kp.Encrypt(message)
//	plaintext, err := kp.Decrypt(ciphertext)
//
// # Discrete-Log Keypair Example
//
//	import "github.com/StyleYuHui/Secure-communication-system/dlog"
//
//	kp, err := dlog.Generate(rand.Reader, 256)
//	ct, err := kp.Encrypt(rand.Reader, message)
//	m, err := kp.Decrypt(ct)
//
//	h := dlog.HashToInt(payload)
//	sig, err := kp.Sign(rand.Reader, h)
//	ok := kp.Verify(h, sig)
//
// # Keyring and CLI
//
// The keyring package caches generated keypairs behind opaque UUIDs for
// long-running services, and cmd/cryptoctl exposes all three engines as a
// cobra-driven command line tool. Run `go doc` against any of the
// sub-packages above for the full operation set, or build cmd/cryptoctl
// for a runnable demonstration of every mode and operation.
package cryptosuite
