package nemcrypto

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	prev := Logger.GetLevel()
	defer Logger.SetLevel(prev)

	require.NoError(t, SetLogLevel("debug"))
	require.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	require.NoError(t, SetLogLevel("WARNING"))
	require.Equal(t, logrus.WarnLevel, Logger.GetLevel())

	err := SetLogLevel("loud")
	require.True(t, IsErrIllegalArgument(err))
	require.Equal(t, logrus.WarnLevel, Logger.GetLevel())
}

func TestSetLogger(t *testing.T) {
	prev := Logger
	defer SetLogger(prev)

	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)

	senderPriv := mustKeyPair(t, testSenderPrivateKey).PrivateKey
	recipientPub := mustPublicKey(t, testRecipientPublicKey)
	_, err := NewSecureMessage(nil, []byte("test-message"), senderPriv, recipientPub)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "encrypted secure message")
	require.NotContains(t, buf.String(), "test-message")
	require.NotContains(t, buf.String(), testSenderPrivateKey)

	SetLogger(nil)
	require.NotNil(t, Logger)
	require.NotSame(t, l, Logger)
}
