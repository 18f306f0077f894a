package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StyleYuHui/Secure-communication-system/rsacore"
)

var (
	rsaBitLength     int
	rsaN, rsaE, rsaD string
	rsaDataHex       string
)

var rsaCmd = &cobra.Command{
	Use:   "rsa",
	Short: "Integer-factoring keypair operations: generate, encrypt, decrypt",
}

var rsaGenerateCmd = &cobra.Command{
	Use:   "generate-keys",
	Short: "Generate a fresh integer-factoring keypair",
	RunE: func(cmd *cobra.Command, args []string) error {
		bitLength := viper.GetInt("rsa-bits")
		slog.Info("generating rsa keypair", "bitLength", bitLength)

		kp, err := rsacore.Generate(rand.Reader, bitLength)
		if err != nil {
			return err
		}

		n, e := kp.PublicDecimal()
		_, d := kp.PrivateDecimal()
		fmt.Printf("n=%s\ne=%s\nd=%s\n", n, e, d)
		return nil
	},
}

var rsaEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt hex-encoded plaintext under a public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := rsacore.NewFromDecimalPublic(rsaN, rsaE)
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(rsaDataHex)
		if err != nil {
			return fmt.Errorf("decoding --data: %w", err)
		}
		ciphertext, err := kp.Encrypt(data)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(ciphertext))
		return nil
	},
}

var rsaDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt hex-encoded ciphertext under a private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := rsacore.NewFromDecimalPrivate(rsaN, rsaD)
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(rsaDataHex)
		if err != nil {
			return fmt.Errorf("decoding --data: %w", err)
		}
		plaintext, err := kp.Decrypt(data)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(plaintext))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rsaCmd)
	rsaCmd.AddCommand(rsaGenerateCmd, rsaEncryptCmd, rsaDecryptCmd)

	rsaGenerateCmd.Flags().IntVar(&rsaBitLength, "bits", 512, "bit length per prime")
	_ = viper.BindPFlag("rsa-bits", rsaGenerateCmd.Flags().Lookup("bits"))

	rsaEncryptCmd.Flags().StringVar(&rsaN, "n", "", "modulus, decimal (required)")
	rsaEncryptCmd.Flags().StringVar(&rsaE, "e", "", "public exponent, decimal (required)")
	rsaEncryptCmd.Flags().StringVar(&rsaDataHex, "data", "", "hex-encoded plaintext (required)")
	_ = rsaEncryptCmd.MarkFlagRequired("n")
	_ = rsaEncryptCmd.MarkFlagRequired("e")
	_ = rsaEncryptCmd.MarkFlagRequired("data")

	rsaDecryptCmd.Flags().StringVar(&rsaN, "n", "", "modulus, decimal (required)")
	rsaDecryptCmd.Flags().StringVar(&rsaD, "d", "", "private exponent, decimal (required)")
	rsaDecryptCmd.Flags().StringVar(&rsaDataHex, "data", "", "hex-encoded ciphertext (required)")
	_ = rsaDecryptCmd.MarkFlagRequired("n")
	_ = rsaDecryptCmd.MarkFlagRequired("d")
	_ = rsaDecryptCmd.MarkFlagRequired("data")
}
