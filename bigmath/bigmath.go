// Package bigmath provides the numeric utilities shared by the
// integer-factoring and discrete-log engines: Miller-Rabin primality
// testing, safe-prime generation, generator search in a safe-prime
// subgroup, and modular inverse via the extended Euclidean algorithm.
//
// Grounded on original_source/RustDll's ElGamal/elgamal.rs and Rsa/rsa.rs,
// which implement the same four routines twice, once per engine; this
// package merges them into the one shared leaf that spec.md §2 describes.
package bigmath

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/StyleYuHui/Secure-communication-system/internal/crerr"
)

// DefaultMillerRabinRounds is the iteration count used when a caller does
// not need a different confidence level. 20 rounds bounds the false-positive
// probability at 4^-20, matching spec.md §4.3/§8.
const DefaultMillerRabinRounds = 20

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// RandomBigInt draws a uniform integer in [lo, hi) from random.
func RandomBigInt(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) <= 0 {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "bigmath.RandomBigInt", "empty range [%s, %s)", lo, hi)
	}
	span := new(big.Int).Sub(hi, lo)
	n, err := rand.Int(random, span)
	if err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "bigmath.RandomBigInt", "%v", err)
	}
	return n.Add(n, lo), nil
}

// IsProbablePrime runs the Miller-Rabin primality test with k rounds,
// drawing witnesses from random.
//
// Grounded on RustDll's is_prime (duplicated verbatim in rsa.rs and
// elgamal.rs): reject n<=1, accept {2,3}, reject even n, write n-1=d*2^s,
// then k rounds of witness/square-and-check.
func IsProbablePrime(random io.Reader, n *big.Int, k int) (bool, error) {
	if n.Cmp(bigOne) <= 0 {
		return false, nil
	}
	if n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinus1 := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for i := 0; i < k; i++ {
		a, err := RandomBigInt(random, bigTwo, nMinus1)
		if err != nil {
			return false, err
		}

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		found := false
		for j := 0; j < s-1; j++ {
			x.Exp(x, bigTwo, n)
			if x.Cmp(nMinus1) == 0 {
				found = true
				break
			}
		}

		if !found {
			return false, nil
		}
	}

	return true, nil
}

// GenerateProbablePrime draws an odd candidate of exactly bitLength bits
// (top bit forced) and repeats until it passes IsProbablePrime with
// DefaultMillerRabinRounds rounds.
//
// Grounded on RustDll's generate_large_prime.
func GenerateProbablePrime(random io.Reader, bitLength int) (*big.Int, error) {
	for {
		candidate, err := randomBits(random, bitLength)
		if err != nil {
			return nil, err
		}

		ok, err := IsProbablePrime(random, candidate, DefaultMillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}

// GenerateSafePrime draws a prime p = 2c+1 such that both c and p are
// probable prime, with c of exactly bitLength bits.
//
// Grounded on RustDll's generate_safe_prime.
func GenerateSafePrime(random io.Reader, bitLength int) (*big.Int, error) {
	for {
		c, err := randomBits(random, bitLength)
		if err != nil {
			return nil, err
		}

		p := new(big.Int).Lsh(c, 1)
		p.Add(p, bigOne)

		cPrime, err := IsProbablePrime(random, c, DefaultMillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if !cPrime {
			continue
		}

		pPrime, err := IsProbablePrime(random, p, DefaultMillerRabinRounds)
		if err != nil {
			return nil, err
		}
		if pPrime {
			return p, nil
		}
	}
}

// randomBits draws an odd integer of exactly bitLength bits: top bit and
// bottom bit both forced to 1.
func randomBits(random io.Reader, bitLength int) (*big.Int, error) {
	byteLen := (bitLength + 7) / 8
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, crerr.Newf(crerr.KindInvalidArgument, "bigmath.randomBits", "%v", err)
	}

	candidate := new(big.Int).SetBytes(buf)
	candidate.SetBit(candidate, 0, 1)
	candidate.SetBit(candidate, bitLength-1, 1)

	// Clear any bits above bitLength introduced by byte rounding.
	mask := new(big.Int).Lsh(bigOne, uint(bitLength))
	mask.Sub(mask, bigOne)
	candidate.And(candidate, mask)
	candidate.SetBit(candidate, bitLength-1, 1)

	return candidate, nil
}

// FindGenerator draws candidates uniformly from [2, p-3] and returns the
// first g with g^q mod p != 1, where q = (p-1)/2 is the prime order of the
// quadratic-residue subgroup of the safe prime p.
//
// Grounded on RustDll's find_generator. The check rejects every element of
// order q, so each accepted g has order 2q; p-1 (order 2) lies outside the
// draw range, so no separate check for it is made.
func FindGenerator(random io.Reader, p, q *big.Int) (*big.Int, error) {
	upper := new(big.Int).Sub(p, bigTwo)
	for {
		g, err := RandomBigInt(random, bigTwo, upper)
		if err != nil {
			return nil, err
		}

		if new(big.Int).Exp(g, q, p).Cmp(bigOne) == 0 {
			continue
		}

		return g, nil
	}
}

// ModInverse computes the modular inverse of a mod m via the extended
// Euclidean algorithm, reporting KindMathNonExistence if gcd(a,m) != 1.
//
// Grounded on RustDll's mod_inverse (a signed two-row recurrence on
// (r,s)), cross-checked against other_examples' monnand-rsa/utils.go's
// math/big.Int.GCD-based modInverse for the Go-idiomatic rendering of the
// same algorithm.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g := new(big.Int)
	x := new(big.Int)
	y := new(big.Int)
	g.GCD(x, y, a, m)

	if g.Cmp(bigOne) != 0 {
		return nil, crerr.Newf(crerr.KindMathNonExistence, "bigmath.ModInverse", "no inverse of %s mod %s", a, m)
	}

	if x.Sign() < 0 {
		x.Add(x, m)
	}

	return x, nil
}

// ModPow computes base^exp mod m. Thin wrapper kept for call-site symmetry
// with ModInverse/IsProbablePrime; math/big.Int.Exp already does the work.
func ModPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}
