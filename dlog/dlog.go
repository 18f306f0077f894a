// Package dlog implements the discrete-log public-key engine: key
// generation over a safe prime, ElGamal-style encrypt/decrypt, and a
// q-modulus signature scheme (sign/verify) that deliberately deviates from
// textbook ElGamal by operating mod q = (p-1)/2 instead of mod p-1.
//
// Grounded on original_source/RustDll's ElGamal/elgamal.rs
// (ElGamalKeys::new, encrypt, decrypt, sign, verify, from_params,
// from_public_params, from_private_params, sha256_to_biguint).
package dlog

import (
	"crypto/sha256"
	"io"
	"math/big"
	"strings"

	"github.com/StyleYuHui/Secure-communication-system/bigmath"
	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
)

var bigOne = big.NewInt(1)

// KeyPair holds a discrete-log keypair. A freshly generated KeyPair is
// full (X set); NewFromDecimalPublic produces a public-only keypair for
// which Decrypt and Sign fail, matching spec.md §3.
type KeyPair struct {
	P *big.Int // safe prime
	Q *big.Int // subgroup order, (p-1)/2
	G *big.Int // generator; g^q mod p != 1, so a generated g has order 2q
	Y *big.Int // public value, g^x mod p
	X *big.Int // private exponent; nil in a public-only keypair
}

// HasPrivate reports whether this keypair can decrypt and sign.
func (k *KeyPair) HasPrivate() bool {
	return k.X != nil
}

// Ciphertext is the ElGamal-style pair (c1, c2).
type Ciphertext struct {
	C1 *big.Int
	C2 *big.Int
}

// Signature is the pair (r, s) with 0 < r < p and 0 < s < q.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Generate produces a full keypair over a fresh safe prime p = 2q+1, where
// q is a bitLength-bit prime (so p has bitLength+1 bits).
//
// Grounded on RustDll's ElGamalKeys::new.
func Generate(random io.Reader, bitLength int) (*KeyPair, error) {
	p, err := bigmath.GenerateSafePrime(random, bitLength)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Generate", "%v", err)
	}

	q := new(big.Int).Sub(p, bigOne)
	q.Rsh(q, 1)

	g, err := bigmath.FindGenerator(random, p, q)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Generate", "%v", err)
	}

	qMinus1 := new(big.Int).Sub(q, bigOne)
	x, err := bigmath.RandomBigInt(random, bigOne, new(big.Int).Add(qMinus1, bigOne))
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Generate", "%v", err)
	}

	y := bigmath.ModPow(g, x, p)

	return &KeyPair{P: p, Q: q, G: g, Y: y, X: x}, nil
}

// Encrypt draws a fresh ephemeral k and emits c1 = g^k mod p,
// c2 = m * y^k mod p, for m in [1, p-1].
func (k *KeyPair) Encrypt(random io.Reader, m *big.Int) (*Ciphertext, error) {
	if m.Cmp(bigOne) < 0 || m.Cmp(k.P) >= 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Encrypt", "message %s out of range [1, p)", m)
	}

	pMinus2 := new(big.Int).Sub(k.P, big.NewInt(2))
	ephemeral, err := bigmath.RandomBigInt(random, bigOne, new(big.Int).Add(pMinus2, bigOne))
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Encrypt", "%v", err)
	}

	c1 := bigmath.ModPow(k.G, ephemeral, k.P)
	ys := bigmath.ModPow(k.Y, ephemeral, k.P)
	c2 := new(big.Int).Mul(m, ys)
	c2.Mod(c2, k.P)

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt computes s = c1^x mod p, then m = c2 * s^-1 mod p. Fails if the
// keypair has no private exponent.
func (k *KeyPair) Decrypt(ct *Ciphertext) (*big.Int, error) {
	if !k.HasPrivate() {
		return nil, crerr.New(crerr.KindInvalidArgument, "dlog.Decrypt", "keypair has no private exponent")
	}

	s := bigmath.ModPow(ct.C1, k.X, k.P)
	sInv, err := bigmath.ModInverse(s, k.P)
	if err != nil {
		return nil, crerr.Newf(crerr.KindMathNonExistence, "dlog.Decrypt", "%v", err)
	}

	m := new(big.Int).Mul(ct.C2, sInv)
	m.Mod(m, k.P)
	return m, nil
}

// HashToInt maps payload through SHA-256 and reinterprets the digest as a
// big-endian, non-negative integer.
//
// Grounded on RustDll's sha256_to_biguint.
func HashToInt(payload []byte) *big.Int {
	digest := sha256.Sum256(payload)
	return new(big.Int).SetBytes(digest[:])
}

// Sign computes a signature over hash h = HashToInt(payload), per spec.md
// §4.5: draws k uniformly from [1, q-1], retrying when k has no inverse
// mod q, until s comes out non-zero and g^(x*r + k*s) mod p equals
// g^h mod p, so that Verify accepts the pair under y = g^x. Fails if the
// keypair has no private exponent.
func (k *KeyPair) Sign(random io.Reader, h *big.Int) (*Signature, error) {
	if !k.HasPrivate() {
		return nil, crerr.New(crerr.KindInvalidArgument, "dlog.Sign", "keypair has no private exponent")
	}

	qMinus1 := new(big.Int).Sub(k.Q, bigOne)

	for {
		ephemeral, err := bigmath.RandomBigInt(random, bigOne, new(big.Int).Add(qMinus1, bigOne))
		if err != nil {
			return nil, crerr.Newf(crerr.KindInvalidArgument, "dlog.Sign", "%v", err)
		}

		r := bigmath.ModPow(k.G, ephemeral, k.P)

		kInv, err := bigmath.ModInverse(ephemeral, k.Q)
		if err != nil {
			// gcd(k, q) != 1: draw a fresh ephemeral and try again.
			continue
		}

		hMod := new(big.Int).Mod(h, k.Q)
		xr := new(big.Int).Mul(k.X, r)
		xr.Mod(xr, k.Q)

		diff := new(big.Int).Sub(hMod, xr)
		diff.Mod(diff, k.Q)
		// big.Int.Mod already normalizes into [0, q), matching spec.md's
		// "taking the result into [0, q-1] by adding q as needed".

		s := new(big.Int).Mul(diff, kInv)
		s.Mod(s, k.Q)

		if s.Sign() == 0 {
			continue
		}

		// s only pins x*r + k*s to h modulo q. With g of order 2q the two
		// exponents can still differ by q, and Verify would reject; draw a
		// fresh ephemeral until g^(x*r + k*s) == g^h mod p.
		exp := new(big.Int).Mul(k.X, r)
		exp.Add(exp, new(big.Int).Mul(ephemeral, s))
		if bigmath.ModPow(k.G, exp, k.P).Cmp(bigmath.ModPow(k.G, h, k.P)) != 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify rejects r outside (0, p), s outside (0, q), then accepts iff
// g^h mod p == (y^r * r^s) mod p.
func (k *KeyPair) Verify(h *big.Int, sig *Signature) bool {
	if sig.R.Sign() <= 0 || sig.R.Cmp(k.P) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(k.Q) >= 0 {
		return false
	}

	lhs := bigmath.ModPow(k.G, h, k.P)

	yr := bigmath.ModPow(k.Y, sig.R, k.P)
	rs := bigmath.ModPow(sig.R, sig.S, k.P)
	rhs := new(big.Int).Mul(yr, rs)
	rhs.Mod(rhs, k.P)

	return lhs.Cmp(rhs) == 0
}

func parseDecimal(op, name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, crerr.Newf(crerr.KindInvalidArgument, op, "%s is not a valid decimal integer: %q", name, s)
	}
	return n, nil
}

func deriveQ(p *big.Int) *big.Int {
	q := new(big.Int).Sub(p, bigOne)
	return q.Rsh(q, 1)
}

// NewFromDecimalPublic reconstructs a public-only keypair from decimal
// p, g, y. Encrypt and Verify succeed; Decrypt and Sign fail.
//
// Grounded on RustDll's ElGamalKeys::from_public_params.
func NewFromDecimalPublic(p, g, y string) (*KeyPair, error) {
	pVal, err := parseDecimal("dlog.NewFromDecimalPublic", "p", p)
	if err != nil {
		return nil, err
	}
	gVal, err := parseDecimal("dlog.NewFromDecimalPublic", "g", g)
	if err != nil {
		return nil, err
	}
	yVal, err := parseDecimal("dlog.NewFromDecimalPublic", "y", y)
	if err != nil {
		return nil, err
	}
	return &KeyPair{P: pVal, Q: deriveQ(pVal), G: gVal, Y: yVal}, nil
}

// NewFromDecimalFull reconstructs a full keypair from decimal p, g, y, x.
//
// Grounded on RustDll's ElGamalKeys::from_params.
func NewFromDecimalFull(p, g, y, x string) (*KeyPair, error) {
	kp, err := NewFromDecimalPublic(p, g, y)
	if err != nil {
		return nil, err
	}
	xVal, err := parseDecimal("dlog.NewFromDecimalFull", "x", x)
	if err != nil {
		return nil, err
	}
	kp.X = xVal
	return kp, nil
}

// NewFromDecimalPrivate reconstructs a keypair from decimal p, g, x,
// recomputing y = g^x mod p.
//
// Grounded on RustDll's ElGamalKeys::from_private_params.
func NewFromDecimalPrivate(p, g, x string) (*KeyPair, error) {
	pVal, err := parseDecimal("dlog.NewFromDecimalPrivate", "p", p)
	if err != nil {
		return nil, err
	}
	gVal, err := parseDecimal("dlog.NewFromDecimalPrivate", "g", g)
	if err != nil {
		return nil, err
	}
	xVal, err := parseDecimal("dlog.NewFromDecimalPrivate", "x", x)
	if err != nil {
		return nil, err
	}
	y := bigmath.ModPow(gVal, xVal, pVal)
	return &KeyPair{P: pVal, Q: deriveQ(pVal), G: gVal, Y: y, X: xVal}, nil
}

// PublicDecimal returns (p, g, y) as base-10 strings.
func (k *KeyPair) PublicDecimal() (p, g, y string) {
	return k.P.String(), k.G.String(), k.Y.String()
}

// PrivateDecimal returns (p, g, y, x) as base-10 strings. Callers should
// check HasPrivate before calling.
func (k *KeyPair) PrivateDecimal() (p, g, y, x string) {
	return k.P.String(), k.G.String(), k.Y.String(), k.X.String()
}
