package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-nemcrypto"
)

const (
	senderPriv    = "8374B5915AEAB6308C34368B15ABF33C79FD7FEFC0DEAF9CC51BA57F120F1190"
	senderPub     = "9E7930144DA0845361F650BF78A36791ABF2577E251706ECA45480998FE61D18"
	recipientPriv = "369CB3195F88A16F8326DABBD37DA5F8458B55AA5DA6F7E2F756A12BE6CAA546"
	recipientPub  = "8E1A94D534EA6A3B02B0B967701549C21724C7644B2E4C20BF15D01D50097ACB"
)

func run(t *testing.T, args ...string) (string, error) {
	// flag values are package variables, and persist between runs
	saltHex, hashAlg, logLevel, networkName = "", "sha3-256", "", "MAIN_NET"
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestPubkey(t *testing.T) {
	out, err := run(t, "pubkey", senderPriv)
	require.NoError(t, err)
	require.Equal(t, senderPub, out)
}

func TestSignVerify(t *testing.T) {
	sig, err := run(t, "sign", senderPriv, "deadbeef")
	require.NoError(t, err)
	out, err := run(t, "verify", senderPub, "deadbeef", sig)
	require.NoError(t, err)
	require.Equal(t, "OK", out)

	_, err = run(t, "verify", senderPub, "deadbeee", sig)
	require.Error(t, err)
}

func TestSharedKey(t *testing.T) {
	salt := strings.Repeat("ab", 32)
	k1, err := run(t, "shared-key", senderPriv, recipientPub, "--salt", salt)
	require.NoError(t, err)
	k2, err := run(t, "shared-key", recipientPriv, senderPub, "--salt", salt)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	require.Len(t, k1, 64)

	_, err = run(t, "shared-key", senderPriv, recipientPub, "--salt", "abcd")
	require.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	payload, err := run(t, "encrypt", senderPriv, recipientPub, "test-message")
	require.NoError(t, err)
	out, err := run(t, "decrypt", recipientPriv, senderPub, payload)
	require.NoError(t, err)
	require.Equal(t, "test-message", out)
}

func TestHash(t *testing.T) {
	out, err := run(t, "hash", "--alg", "ripemd160", "616263")
	require.NoError(t, err)
	require.Equal(t, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc", out)

	out, err = run(t, "hash", "--alg", "sha3-256", "")
	require.NoError(t, err)
	require.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", out)

	_, err = run(t, "hash", "--alg", "md5", "616263")
	require.Error(t, err)
}

func TestKeygen(t *testing.T) {
	out, err := run(t, "keygen")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	priv := strings.TrimSpace(strings.TrimPrefix(lines[0], "private:"))
	pub := strings.TrimSpace(strings.TrimPrefix(lines[1], "public:"))

	derived, err := run(t, "pubkey", priv)
	require.NoError(t, err)
	require.Equal(t, pub, derived)
}

func TestSharedKeyDefaultSalt(t *testing.T) {
	explicit, err := run(t, "shared-key", senderPriv, recipientPub, "--salt", strings.Repeat("00", 32))
	require.NoError(t, err)
	// no --salt, after a run which set one
	_, err = run(t, "shared-key", senderPriv, recipientPub, "--salt", strings.Repeat("ab", 32))
	require.NoError(t, err)
	implicit, err := run(t, "shared-key", senderPriv, recipientPub)
	require.NoError(t, err)
	require.Equal(t, explicit, implicit)
}

func TestHashDefaultAlg(t *testing.T) {
	_, err := run(t, "hash", "--alg", "ripemd160", "")
	require.NoError(t, err)
	out, err := run(t, "hash", "")
	require.NoError(t, err)
	require.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", out)
}

func TestLogFlag(t *testing.T) {
	prev := nemcrypto.Logger.GetLevel()
	defer nemcrypto.Logger.SetLevel(prev)

	_, err := run(t, "--log", "debug", "pubkey", senderPriv)
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, nemcrypto.Logger.GetLevel())

	_, err = run(t, "--log", "loud", "pubkey", senderPriv)
	require.Error(t, err)
}

func TestAddress(t *testing.T) {
	pub := "b4f12e7c9f6946091e2cb8b6d3a12b50d17ccbbf646386ea27ce2946a7423dcf"
	out, err := run(t, "address", "--network", "MIJIN_TEST", pub)
	require.NoError(t, err)
	require.Equal(t, "SARNAS-AS2BIA-B6LMFA-3FPMGB-PGIJGK-6IJETM-3ZSP", out)

	out, err = run(t, "address", pub)
	require.NoError(t, err)
	require.Equal(t, "NARNAS-AS2BIA-B6LMFA-3FPMGB-PGIJGK-6IJFJK-UV32", out)

	_, err = run(t, "address", "--network", "MOON", pub)
	require.Error(t, err)
}
