// Package engines implements cryptographic cipher engines.
package engines

import (
	"github.com/StyleYuHui/Secure-communication-system/crypto"
	"github.com/StyleYuHui/Secure-communication-system/crypto/params"
	"github.com/StyleYuHui/Secure-communication-system/util"
)

// AESEngine implements the classical AES-128 block cipher round function
// from first principles: key schedule, SubBytes, ShiftRows, MixColumns and
// AddRoundKey over a 4x4 byte state, 10 rounds.
//
// Reference: FIPS 197. Internal geometry follows the column-major
// byte-array-to-state loading convention: input byte i lands at
// state[i mod 4][i div 4].
type AESEngine struct {
	roundKeys     [44]uint32
	forEncryption bool
	initialized   bool
}

const (
	aesBlockSize = 16
	aesKeySize   = 16
	aesRounds    = 10
	aesNk        = 4
)

// NewAESEngine creates a new, uninitialized AES-128 engine.
func NewAESEngine() *AESEngine {
	return &AESEngine{}
}

// Init initializes the engine with a 16-byte key for encryption or decryption.
func (a *AESEngine) Init(forEncryption bool, p crypto.CipherParameters) {
	kp, ok := p.(*params.KeyParameter)
	if !ok {
		panic("AES engine requires a KeyParameter")
	}
	key := kp.GetKey()
	if len(key) != aesKeySize {
		panic("AES requires a 128 bit (16 byte) key")
	}

	a.forEncryption = forEncryption
	a.roundKeys = expandKey(key)
	a.initialized = true
}

// GetAlgorithmName returns the algorithm name.
func (a *AESEngine) GetAlgorithmName() string {
	return "AES"
}

// GetBlockSize returns the block size in bytes.
func (a *AESEngine) GetBlockSize() int {
	return aesBlockSize
}

// ProcessBlock encrypts or decrypts a single 16-byte block.
func (a *AESEngine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if !a.initialized {
		panic("AES engine not initialized")
	}
	if inOff+aesBlockSize > len(in) {
		panic("input buffer too short")
	}
	if outOff+aesBlockSize > len(out) {
		panic("output buffer too short")
	}

	state := loadState(in[inOff : inOff+aesBlockSize])
	if a.forEncryption {
		encryptState(&state, &a.roundKeys)
	} else {
		decryptState(&state, &a.roundKeys)
	}
	unloadState(&state, out[outOff:outOff+aesBlockSize])

	return aesBlockSize
}

// Reset is a no-op: the engine holds no mutable state beyond the key
// schedule, which is a pure function of the key supplied to Init.
func (a *AESEngine) Reset() {}

// Ensure AESEngine implements BlockCipher interface
var _ crypto.BlockCipher = (*AESEngine)(nil)

// state is the 4x4 matrix of bytes the round function operates on,
// indexed state[row][column].
type state [4][4]byte

// loadState places input byte i at row i mod 4, column i div 4
// (column-major loading).
func loadState(in []byte) state {
	var s state
	for i := 0; i < 16; i++ {
		s[i%4][i/4] = in[i]
	}
	return s
}

// unloadState is the exact inverse of loadState.
func unloadState(s *state, out []byte) {
	for i := 0; i < 16; i++ {
		out[i] = s[i%4][i/4]
	}
}

func expandKey(key []byte) [44]uint32 {
	var w [44]uint32

	for i := 0; i < aesNk; i++ {
		w[i] = util.BigEndianToUint32(key, i*4)
	}

	for i := aesNk; i < 44; i++ {
		temp := w[i-1]
		if i%aesNk == 0 {
			temp = subWord(rotWord(temp))
			temp ^= uint32(rcon[i/aesNk]) << 24
		}
		w[i] = w[i-aesNk] ^ temp
	}

	return w
}

// rcon holds the 11-element round-constant sequence used by the key
// schedule; rcon[0] is unused (words 0..3 are the key itself).
var rcon = [11]byte{
	0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36,
}

func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

func subWord(w uint32) uint32 {
	b0 := sbox[byte(w>>24)]
	b1 := sbox[byte(w>>16)]
	b2 := sbox[byte(w>>8)]
	b3 := sbox[byte(w)]
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

func addRoundKey(s *state, w *[44]uint32, round int) {
	for c := 0; c < 4; c++ {
		word := w[round*4+c]
		s[0][c] ^= byte(word >> 24)
		s[1][c] ^= byte(word >> 16)
		s[2][c] ^= byte(word >> 8)
		s[3][c] ^= byte(word)
	}
}

func subBytes(s *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = sbox[s[r][c]]
		}
	}
}

func invSubBytes(s *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = invSbox[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *state) {
	for r := 1; r < 4; r++ {
		s[r] = rotateLeft(s[r], r)
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *state) {
	for r := 1; r < 4; r++ {
		s[r] = rotateRight(s[r], r)
	}
}

func rotateLeft(row [4]byte, n int) [4]byte {
	var out [4]byte
	for c := 0; c < 4; c++ {
		out[c] = row[(c+n)%4]
	}
	return out
}

func rotateRight(row [4]byte, n int) [4]byte {
	var out [4]byte
	for c := 0; c < 4; c++ {
		out[c] = row[(c-n+4)%4]
	}
	return out
}

// xtime multiplies a GF(2^8) element by x, reducing by 0x1B on overflow.
func xtime(x byte) byte {
	if x&0x80 != 0 {
		return (x << 1) ^ 0x1B
	}
	return x << 1
}

// gmul multiplies two GF(2^8) elements via peasant multiplication.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}

func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		s[1][c] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		s[2][c] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		s[3][c] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}

func invMixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		s[1][c] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		s[2][c] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		s[3][c] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

func encryptState(s *state, w *[44]uint32) {
	addRoundKey(s, w, 0)
	for round := 1; round < aesRounds; round++ {
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, w, round)
	}
	subBytes(s)
	shiftRows(s)
	addRoundKey(s, w, aesRounds)
}

func decryptState(s *state, w *[44]uint32) {
	addRoundKey(s, w, aesRounds)
	for round := aesRounds - 1; round >= 1; round-- {
		invShiftRows(s)
		invSubBytes(s)
		addRoundKey(s, w, round)
		invMixColumns(s)
	}
	invShiftRows(s)
	invSubBytes(s)
	addRoundKey(s, w, 0)
}

// sbox is the standard forward AES substitution table.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

// invSbox is the inverse of sbox, computed once at init time.
var invSbox = buildInverseSbox()

func buildInverseSbox() [256]byte {
	var inv [256]byte
	for i, v := range sbox {
		inv[v] = byte(i)
	}
	return inv
}
