package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-nemcrypto"
)

var saltHex string

func init() {
	rootCmd.AddCommand(sharedKeyCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)

	sharedKeyCmd.Flags().StringVar(&saltHex, "salt", "", "--salt=<32 bytes of hex>. defaults to 32 zero bytes")
}

var sharedKeyCmd = &cobra.Command{
	Use:   "shared-key <private-key> <peer-public-key>",
	Short: "derives the key shared with a peer",
	Long:  "derives the key shared with a peer. Without --salt the salt is 32 zero bytes.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, peer, err := parseParties(args[0], args[1])
		if err != nil {
			return err
		}
		var salt nemcrypto.Salt
		if saltHex != "" {
			data, err := nemcrypto.DecodeHex(saltHex)
			if err != nil {
				return errors.Wrap(err, "salt")
			}
			if len(data) != len(salt) {
				return errors.Wrapf(nemcrypto.ErrIllegalArgument, "salt must be %d bytes", len(salt))
			}
			copy(salt[:], data)
		}
		key, err := kp.SharedKey(peer, &salt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), nemcrypto.EncodeHex(key[:]))
		return nil
	},
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <private-key> <peer-public-key> <text>",
	Short: "encrypts a secure message for a peer and prints the payload",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, peer, err := parseParties(args[0], args[1])
		if err != nil {
			return err
		}
		m, err := nemcrypto.NewSecureMessage(nil, []byte(args[2]), kp.PrivateKey, peer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), nemcrypto.EncodeHex(m.Payload))
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <private-key> <peer-public-key> <payload-hex>",
	Short: "decrypts a secure message payload",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, peer, err := parseParties(args[0], args[1])
		if err != nil {
			return err
		}
		payload, err := nemcrypto.DecodeHex(args[2])
		if err != nil {
			return errors.Wrap(err, "payload")
		}
		m := nemcrypto.Message{Type: nemcrypto.MessageTypeSecure, Payload: payload}
		ptext, err := m.DecryptPayload(kp.PrivateKey, peer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(ptext))
		return nil
	},
}

func parseParties(privHex, pubHex string) (*nemcrypto.KeyPair, nemcrypto.PublicKey, error) {
	kp, err := parseKeyPair(privHex)
	if err != nil {
		return nil, nemcrypto.PublicKey{}, err
	}
	peer, err := nemcrypto.ParsePublicKeyHex(pubHex)
	if err != nil {
		return nil, nemcrypto.PublicKey{}, errors.Wrap(err, "peer public key")
	}
	return kp, peer, nil
}
