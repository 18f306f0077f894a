// Package rsacore implements the textbook integer-factoring keypair engine:
// key generation with a fixed public exponent, and raw modular-exponentiation
// encrypt/decrypt. There is deliberately no padding scheme; the caller keeps
// the message integer below the modulus.
//
// Grounded on original_source/RustDll's Rsa/rsa.rs (RSA::new, encrypt,
// decrypt, from_public_key, from_private_key), re-expressed with
// math/big and bigmath in place of the Rust BigUint routines.
package rsacore

import (
	"io"
	"math/big"
	"strings"

	"github.com/StyleYuHui/Secure-communication-system/bigmath"
	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
)

// PublicExponent is the fixed public exponent e = 65537 (2^16 + 1), the
// conventional choice balancing encryption speed and resistance to the
// small-exponent attacks that afflict e=3.
const PublicExponent = 65537

// KeyPair holds an integer-factoring keypair. A freshly generated KeyPair
// is full (N, E, D all set). The public-only and private-only states are
// reached through NewFromDecimalPublic/NewFromDecimalPrivate, matching
// spec.md §3's three-state model.
type KeyPair struct {
	N *big.Int // modulus, n = p*q
	E *big.Int // public exponent; 65537 when generated, as given when re-imported
	D *big.Int // private exponent; nil in a public-only keypair
}

// HasPublic reports whether this keypair can encrypt.
func (k *KeyPair) HasPublic() bool {
	return k.E != nil
}

// HasPrivate reports whether this keypair can decrypt.
func (k *KeyPair) HasPrivate() bool {
	return k.D != nil
}

// Generate produces a full keypair from two independent bitLength-bit
// probable primes.
//
// Grounded on RustDll's RSA::new: independent p, q via generate_large_prime,
// n = p*q, phi = (p-1)(q-1), e = 65537, d = e^-1 mod phi.
func Generate(random io.Reader, bitLength int) (*KeyPair, error) {
	p, err := bigmath.GenerateProbablePrime(random, bitLength)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "rsacore.Generate", "%v", err)
	}
	q, err := bigmath.GenerateProbablePrime(random, bitLength)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "rsacore.Generate", "%v", err)
	}

	n := new(big.Int).Mul(p, q)

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	e := big.NewInt(PublicExponent)
	d, err := bigmath.ModInverse(e, phi)
	if err != nil {
		// A freshly generated p, q pair makes e coprime to phi with
		// overwhelming probability; hitting this means the prime search
		// produced something degenerate.
		return nil, crerr.Newf(crerr.KindMathNonExistence, "rsacore.Generate", "e has no inverse mod phi(n): %v", err)
	}

	return &KeyPair{N: n, E: e, D: d}, nil
}

// Encrypt interprets plaintext as a big-endian integer m and returns the
// big-endian bytes of c = m^e mod n. Fails if the keypair has no public
// half.
func (k *KeyPair) Encrypt(plaintext []byte) ([]byte, error) {
	if !k.HasPublic() {
		return nil, crerr.New(crerr.KindInvalidArgument, "rsacore.Encrypt", "keypair has no public exponent")
	}

	m := new(big.Int).SetBytes(plaintext)
	if m.Cmp(k.N) >= 0 {
		return nil, crerr.New(crerr.KindInvalidArgument, "rsacore.Encrypt", "message integer is not smaller than the modulus")
	}

	c := bigmath.ModPow(m, k.E, k.N)
	return c.Bytes(), nil
}

// Decrypt inverts Encrypt: m = c^d mod n, big-endian bytes. Fails if the
// keypair has no private half.
func (k *KeyPair) Decrypt(ciphertext []byte) ([]byte, error) {
	if !k.HasPrivate() {
		return nil, crerr.New(crerr.KindInvalidArgument, "rsacore.Decrypt", "keypair has no private exponent")
	}

	c := new(big.Int).SetBytes(ciphertext)
	m := bigmath.ModPow(c, k.D, k.N)
	return m.Bytes(), nil
}

// PublicDecimal returns (n, e) as base-10 strings.
func (k *KeyPair) PublicDecimal() (n, e string) {
	return k.N.String(), k.E.String()
}

// PrivateDecimal returns (n, d) as base-10 strings. If the keypair has no
// private half, d comes back as "<nil>"; callers should check HasPrivate
// first.
func (k *KeyPair) PrivateDecimal() (n, d string) {
	return k.N.String(), k.D.String()
}

func parseDecimal(op, name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, crerr.Newf(crerr.KindInvalidArgument, op, "%s is not a valid decimal integer: %q", name, s)
	}
	return n, nil
}

// NewFromDecimalPublic reconstructs a public-only keypair from decimal n
// and e. Encryption succeeds; Decrypt fails.
//
// Grounded on RustDll's RSA::from_public_key.
func NewFromDecimalPublic(n, e string) (*KeyPair, error) {
	nVal, err := parseDecimal("rsacore.NewFromDecimalPublic", "n", n)
	if err != nil {
		return nil, err
	}
	eVal, err := parseDecimal("rsacore.NewFromDecimalPublic", "e", e)
	if err != nil {
		return nil, err
	}
	return &KeyPair{N: nVal, E: eVal}, nil
}

// NewFromDecimalPrivate reconstructs a private-only keypair from decimal n
// and d. Decryption succeeds; Encrypt fails.
//
// Grounded on RustDll's RSA::from_private_key.
func NewFromDecimalPrivate(n, d string) (*KeyPair, error) {
	nVal, err := parseDecimal("rsacore.NewFromDecimalPrivate", "n", n)
	if err != nil {
		return nil, err
	}
	dVal, err := parseDecimal("rsacore.NewFromDecimalPrivate", "d", d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{N: nVal, D: dVal}, nil
}

// NewFromDecimalFull reconstructs a full keypair from decimal n, e, d.
func NewFromDecimalFull(n, e, d string) (*KeyPair, error) {
	nVal, err := parseDecimal("rsacore.NewFromDecimalFull", "n", n)
	if err != nil {
		return nil, err
	}
	eVal, err := parseDecimal("rsacore.NewFromDecimalFull", "e", e)
	if err != nil {
		return nil, err
	}
	dVal, err := parseDecimal("rsacore.NewFromDecimalFull", "d", d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{N: nVal, E: eVal, D: dVal}, nil
}
