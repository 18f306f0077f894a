package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StyleYuHui/Secure-communication-system/dlog"
)

var (
	dlogBitLength              int
	dlogP, dlogG, dlogY, dlogX string
	dlogMessage                string
	dlogR, dlogS               string
	dlogC1, dlogC2             string
)

var dlogCmd = &cobra.Command{
	Use:   "dlog",
	Short: "Discrete-log keypair operations: generate, encrypt, decrypt, sign, verify",
}

var dlogGenerateCmd = &cobra.Command{
	Use:   "generate-keys",
	Short: "Generate a fresh discrete-log keypair over a safe prime",
	RunE: func(cmd *cobra.Command, args []string) error {
		bitLength := viper.GetInt("dlog-bits")
		slog.Info("generating discrete-log keypair", "bitLength", bitLength)

		kp, err := dlog.Generate(rand.Reader, bitLength)
		if err != nil {
			return err
		}

		p, g, y, x := kp.PrivateDecimal()
		fmt.Printf("p=%s\ng=%s\ny=%s\nx=%s\n", p, g, y, x)
		return nil
	},
}

var dlogEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt an integer message under a public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := dlog.NewFromDecimalPublic(dlogP, dlogG, dlogY)
		if err != nil {
			return err
		}
		m, ok := new(big.Int).SetString(dlogMessage, 10)
		if !ok {
			return fmt.Errorf("--message is not a valid decimal integer: %q", dlogMessage)
		}
		ct, err := kp.Encrypt(rand.Reader, m)
		if err != nil {
			return err
		}
		fmt.Printf("c1=%s\nc2=%s\n", ct.C1, ct.C2)
		return nil
	},
}

var dlogDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a (c1, c2) ciphertext pair under a private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := dlog.NewFromDecimalPrivate(dlogP, dlogG, dlogX)
		if err != nil {
			return err
		}
		c1, ok1 := new(big.Int).SetString(dlogC1, 10)
		c2, ok2 := new(big.Int).SetString(dlogC2, 10)
		if !ok1 || !ok2 {
			return fmt.Errorf("--c1/--c2 must be valid decimal integers")
		}
		m, err := kp.Decrypt(&dlog.Ciphertext{C1: c1, C2: c2})
		if err != nil {
			return err
		}
		fmt.Println(m.String())
		return nil
	},
}

var dlogSignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a payload under a private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := dlog.NewFromDecimalPrivate(dlogP, dlogG, dlogX)
		if err != nil {
			return err
		}
		h := dlog.HashToInt([]byte(dlogMessage))
		sig, err := kp.Sign(rand.Reader, h)
		if err != nil {
			return err
		}
		fmt.Printf("r=%s\ns=%s\n", sig.R, sig.S)
		return nil
	},
}

var dlogVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a (r, s) signature against a payload and public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := dlog.NewFromDecimalPublic(dlogP, dlogG, dlogY)
		if err != nil {
			return err
		}
		r, ok1 := new(big.Int).SetString(dlogR, 10)
		s, ok2 := new(big.Int).SetString(dlogS, 10)
		if !ok1 || !ok2 {
			return fmt.Errorf("--r/--s must be valid decimal integers")
		}
		h := dlog.HashToInt([]byte(dlogMessage))
		if kp.Verify(h, &dlog.Signature{R: r, S: s}) {
			fmt.Println("valid")
			return nil
		}
		return fmt.Errorf("signature does not verify")
	},
}

func init() {
	rootCmd.AddCommand(dlogCmd)
	dlogCmd.AddCommand(dlogGenerateCmd, dlogEncryptCmd, dlogDecryptCmd, dlogSignCmd, dlogVerifyCmd)

	dlogGenerateCmd.Flags().IntVar(&dlogBitLength, "bits", 256, "bit length of q = (p-1)/2; p has one bit more")
	_ = viper.BindPFlag("dlog-bits", dlogGenerateCmd.Flags().Lookup("bits"))

	dlogEncryptCmd.Flags().StringVar(&dlogP, "p", "", "safe prime, decimal (required)")
	dlogEncryptCmd.Flags().StringVar(&dlogG, "g", "", "generator, decimal (required)")
	dlogEncryptCmd.Flags().StringVar(&dlogY, "y", "", "public value, decimal (required)")
	dlogEncryptCmd.Flags().StringVar(&dlogMessage, "message", "", "message integer, decimal (required)")
	for _, name := range []string{"p", "g", "y", "message"} {
		_ = dlogEncryptCmd.MarkFlagRequired(name)
	}

	dlogDecryptCmd.Flags().StringVar(&dlogP, "p", "", "safe prime, decimal (required)")
	dlogDecryptCmd.Flags().StringVar(&dlogG, "g", "", "generator, decimal (required)")
	dlogDecryptCmd.Flags().StringVar(&dlogX, "x", "", "private exponent, decimal (required)")
	dlogDecryptCmd.Flags().StringVar(&dlogC1, "c1", "", "ciphertext c1, decimal (required)")
	dlogDecryptCmd.Flags().StringVar(&dlogC2, "c2", "", "ciphertext c2, decimal (required)")
	for _, name := range []string{"p", "g", "x", "c1", "c2"} {
		_ = dlogDecryptCmd.MarkFlagRequired(name)
	}

	dlogSignCmd.Flags().StringVar(&dlogP, "p", "", "safe prime, decimal (required)")
	dlogSignCmd.Flags().StringVar(&dlogG, "g", "", "generator, decimal (required)")
	dlogSignCmd.Flags().StringVar(&dlogX, "x", "", "private exponent, decimal (required)")
	dlogSignCmd.Flags().StringVar(&dlogMessage, "message", "", "payload to sign (required)")
	for _, name := range []string{"p", "g", "x", "message"} {
		_ = dlogSignCmd.MarkFlagRequired(name)
	}

	dlogVerifyCmd.Flags().StringVar(&dlogP, "p", "", "safe prime, decimal (required)")
	dlogVerifyCmd.Flags().StringVar(&dlogG, "g", "", "generator, decimal (required)")
	dlogVerifyCmd.Flags().StringVar(&dlogY, "y", "", "public value, decimal (required)")
	dlogVerifyCmd.Flags().StringVar(&dlogMessage, "message", "", "payload to verify (required)")
	dlogVerifyCmd.Flags().StringVar(&dlogR, "r", "", "signature r, decimal (required)")
	dlogVerifyCmd.Flags().StringVar(&dlogS, "s", "", "signature s, decimal (required)")
	for _, name := range []string{"p", "g", "y", "message", "r", "s"} {
		_ = dlogVerifyCmd.MarkFlagRequired(name)
	}
}
