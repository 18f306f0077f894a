package paddings

import (
	"testing"
)

func TestPKCS7GetPaddingName(t *testing.T) {
	padding := NewPKCS7Padding()
	if padding.GetPaddingName() != "PKCS7" {
		t.Errorf("Expected padding name 'PKCS7', got '%s'", padding.GetPaddingName())
	}
}

func TestPKCS7AddPadding(t *testing.T) {
	padding := NewPKCS7Padding()

	testCases := []struct {
		name        string
		blockSize   int
		dataLen     int
		expectedPad byte
	}{
		{"Full block", 16, 0, 16},
		{"1 byte", 16, 15, 1},
		{"Half block", 16, 8, 8},
		{"Almost full", 16, 15, 1},
		{"8-byte block full", 8, 0, 8},
		{"8-byte block partial", 8, 5, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			block := make([]byte, tc.blockSize)
			for i := 0; i < tc.dataLen; i++ {
				block[i] = 0xFF
			}

			padLen := padding.AddPadding(block, tc.dataLen)

			if padLen != int(tc.expectedPad) {
				t.Errorf("Expected padding length %d, got %d", tc.expectedPad, padLen)
			}

			for i := tc.dataLen; i < tc.blockSize; i++ {
				if block[i] != tc.expectedPad {
					t.Errorf("Padding byte at %d should be %d, got %d", i, tc.expectedPad, block[i])
				}
			}
		})
	}
}

func TestPKCS7PadCount(t *testing.T) {
	padding := NewPKCS7Padding()

	testCases := []struct {
		name        string
		block       []byte
		expectedPad int
	}{
		{
			"Valid padding 1",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01},
			1,
		},
		{
			"Valid padding 8",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08},
			8,
		},
		{
			"Valid padding 16",
			[]byte{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10},
			16,
		},
		{
			"Malformed padding length 0 is reported as zero, not an error",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00},
			0,
		},
		{
			"Malformed padding length 17 is reported as zero, not an error",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x11},
			0,
		},
		{
			"Malformed padding bytes are reported as zero, not an error",
			[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02},
			0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			padCount := padding.PadCount(tc.block)
			if padCount != tc.expectedPad {
				t.Errorf("Expected pad count %d, got %d", tc.expectedPad, padCount)
			}
		})
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	padding := NewPKCS7Padding()
	blockSize := 16

	testCases := []int{0, 1, 7, 8, 15}

	for _, dataLen := range testCases {
		t.Run("", func(t *testing.T) {
			block := make([]byte, blockSize)
			for i := 0; i < dataLen; i++ {
				block[i] = byte(i)
			}

			padLen := padding.AddPadding(block, dataLen)

			count := padding.PadCount(block)
			if count != padLen {
				t.Errorf("PadCount mismatch: expected %d, got %d", padLen, count)
			}

			for i := 0; i < dataLen; i++ {
				if block[i] != byte(i) {
					t.Errorf("Data corrupted at position %d", i)
				}
			}
		})
	}
}
