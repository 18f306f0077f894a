package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/StyleYuHui/Secure-communication-system/aes"
)

var (
	aesKeyHex  string
	aesIVHex   string
	aesMode    string
	aesDataHex string
)

var aesCmd = &cobra.Command{
	Use:   "aes",
	Short: "Block-cipher operations: ECB/CBC/CTR/OFB/CFB, padded and unpadded",
}

var aesEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt hex-encoded plaintext under a 16-byte key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAES(true)
	},
}

var aesDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt hex-encoded ciphertext under a 16-byte key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAES(false)
	},
}

func init() {
	rootCmd.AddCommand(aesCmd)
	aesCmd.AddCommand(aesEncryptCmd, aesDecryptCmd)

	for _, c := range []*cobra.Command{aesEncryptCmd, aesDecryptCmd} {
		c.Flags().StringVar(&aesKeyHex, "key", "", "16-byte key, 32 hex characters (required)")
		c.Flags().StringVar(&aesIVHex, "iv", "", "16-byte IV/nonce, 32 hex characters (ignored for ecb/ecb-nopad)")
		c.Flags().StringVar(&aesMode, "mode", "ecb", "ecb|ecb-nopad|cbc|cbc-nopad|ctr|ofb|cfb")
		c.Flags().StringVar(&aesDataHex, "data", "", "hex-encoded input (required)")
		_ = c.MarkFlagRequired("key")
		_ = c.MarkFlagRequired("data")
	}
}

func runAES(encrypt bool) error {
	key, err := hex.DecodeString(aesKeyHex)
	if err != nil {
		return fmt.Errorf("decoding --key: %w", err)
	}
	data, err := hex.DecodeString(aesDataHex)
	if err != nil {
		return fmt.Errorf("decoding --data: %w", err)
	}

	var iv []byte
	if aesMode != "ecb" && aesMode != "ecb-nopad" {
		iv, err = hex.DecodeString(aesIVHex)
		if err != nil {
			return fmt.Errorf("decoding --iv: %w", err)
		}
	}

	slog.Debug("running aes operation", "mode", aesMode, "encrypt", encrypt, "inputLen", len(data))

	var out []byte
	switch aesMode {
	case "ecb":
		if encrypt {
			out, err = aes.Encrypt(data, key)
		} else {
			out, err = aes.Decrypt(data, key)
		}
	case "ecb-nopad":
		if encrypt {
			out, err = aes.EncryptNoPad(data, key)
		} else {
			out, err = aes.DecryptNoPad(data, key)
		}
	case "cbc":
		if encrypt {
			out, err = aes.EncryptCBC(data, key, iv)
		} else {
			out, err = aes.DecryptCBC(data, key, iv)
		}
	case "cbc-nopad":
		if encrypt {
			out, err = aes.EncryptCBCNoPad(data, key, iv)
		} else {
			out, err = aes.DecryptCBCNoPad(data, key, iv)
		}
	case "ctr":
		if encrypt {
			out, err = aes.EncryptCTR(data, key, iv)
		} else {
			out, err = aes.DecryptCTR(data, key, iv)
		}
	case "ofb":
		if encrypt {
			out, err = aes.EncryptOFB(data, key, iv)
		} else {
			out, err = aes.DecryptOFB(data, key, iv)
		}
	case "cfb":
		if encrypt {
			out, err = aes.EncryptCFB(data, key, iv)
		} else {
			out, err = aes.DecryptCFB(data, key, iv)
		}
	default:
		return fmt.Errorf("unknown mode %q", aesMode)
	}
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(out))
	return nil
}
