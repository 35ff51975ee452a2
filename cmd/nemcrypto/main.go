package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-nemcrypto"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		nemcrypto.Logger.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(pubkeyCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(addressCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "--log=debug overrides the LOG environment variable")
	hashCmd.Flags().StringVar(&hashAlg, "alg", "sha3-256", "--alg=sha3-512")
	addressCmd.Flags().StringVar(&networkName, "network", "MAIN_NET", "--network=MIJIN_TEST")
}

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "nemcrypto",
	Short:        "Ed25519-SHA3 keys, signatures and shared keys",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		return nemcrypto.SetLogLevel(logLevel)
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generates a new private key and prints it with its public key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := nemcrypto.GenerateKeyPair(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "private:", kp.PrivateKey)
		fmt.Fprintln(out, "public: ", kp.PublicKey)
		return nil
	},
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <private-key>",
	Short: "prints the public key for a private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := parseKeyPair(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), kp.PublicKey)
		return nil
	},
}

var signCmd = &cobra.Command{
	Use:   "sign <private-key> <message-hex>",
	Short: "signs a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := parseKeyPair(args[0])
		if err != nil {
			return err
		}
		msg, err := nemcrypto.DecodeHex(args[1])
		if err != nil {
			return errors.Wrap(err, "message")
		}
		fmt.Fprintln(cmd.OutOrStdout(), nemcrypto.EncodeHex(kp.Sign(msg)))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <public-key> <message-hex> <signature-hex>",
	Short: "verifies a signature",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := nemcrypto.ParsePublicKeyHex(args[0])
		if err != nil {
			return errors.Wrap(err, "public key")
		}
		msg, err := nemcrypto.DecodeHex(args[1])
		if err != nil {
			return errors.Wrap(err, "message")
		}
		sig, err := nemcrypto.DecodeHex(args[2])
		if err != nil {
			return errors.Wrap(err, "signature")
		}
		if err := nemcrypto.Verify(pub, msg, sig); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

var hashAlg string

var hashCmd = &cobra.Command{
	Use:   "hash <data-hex>",
	Short: "hashes data with sha3-256, sha3-512 or ripemd160",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := nemcrypto.DecodeHex(args[0])
		if err != nil {
			return err
		}
		var sum []byte
		switch hashAlg {
		case "sha3-256":
			h := nemcrypto.SHA3_256(data)
			sum = h[:]
		case "sha3-512":
			h := nemcrypto.SHA3_512(data)
			sum = h[:]
		case "ripemd160":
			h := nemcrypto.RIPEMD160(data)
			sum = h[:]
		default:
			return errors.Errorf("unknown hash algorithm %q", hashAlg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), nemcrypto.EncodeHex(sum))
		return nil
	},
}

var networkName string

var addressCmd = &cobra.Command{
	Use:   "address <public-key>",
	Short: "prints the address of a public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := nemcrypto.ParsePublicKeyHex(args[0])
		if err != nil {
			return errors.Wrap(err, "public key")
		}
		for _, n := range []nemcrypto.NetworkType{nemcrypto.MainNet, nemcrypto.TestNet, nemcrypto.Mijin, nemcrypto.MijinTest} {
			if n.String() == networkName {
				fmt.Fprintln(cmd.OutOrStdout(), nemcrypto.NewAddress(pub, n).Pretty())
				return nil
			}
		}
		return errors.Errorf("unknown network %q", networkName)
	},
}

func parseKeyPair(x string) (*nemcrypto.KeyPair, error) {
	priv, err := nemcrypto.ParsePrivateKeyHex(x)
	if err != nil {
		return nil, errors.Wrap(err, "private key")
	}
	return nemcrypto.NewKeyPair(priv), nil
}
