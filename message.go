package nemcrypto

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brendoncarroll/go-nemcrypto/crypto/blockmode/blockmode_aescbc"
	"github.com/brendoncarroll/go-nemcrypto/crypto/sharedkey"
)

type MessageType uint8

const (
	MessageTypePlain  = MessageType(0)
	MessageTypeSecure = MessageType(1)
)

func (mt MessageType) String() string {
	switch mt {
	case MessageTypePlain:
		return "plain"
	case MessageTypeSecure:
		return "secure"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(mt))
	}
}

const (
	secureSaltSize   = sharedkey.SaltSize
	secureIVSize     = 16
	secureHeaderSize = secureSaltSize + secureIVSize
)

type Message struct {
	Type    MessageType
	Payload []byte
}

func NewPlainMessage(text string) Message {
	return Message{Type: MessageTypePlain, Payload: []byte(text)}
}

// Text returns the payload as a string, and false if it is not valid UTF-8.
func (m Message) Text() (string, bool) {
	return string(m.Payload), utf8.Valid(m.Payload)
}

// NewSecureMessage encrypts plaintext with a key shared between priv and peer.
// The payload is salt || iv || ciphertext, with a fresh salt and iv read from rng.
// If rng is nil, crypto/rand.Reader is used.
func NewSecureMessage(rng io.Reader, plaintext []byte, priv PrivateKey, peer PublicKey) (Message, error) {
	var hdr [secureHeaderSize]byte
	if err := RandomBytes(rng, hdr[:]); err != nil {
		return Message{}, err
	}
	salt := (*Salt)(hdr[:secureSaltSize])
	iv := (*[secureIVSize]byte)(hdr[secureSaltSize:])

	key, err := NewKeyPair(priv).SharedKey(peer, salt)
	if err != nil {
		Logger.WithFields(logrus.Fields{"peer": peer}).Debug("secure message: ", err)
		return Message{}, errors.Wrapf(ErrMessageEncryption, "failed to encrypt message: %v", err)
	}
	payload := append([]byte{}, hdr[:]...)
	payload = blockmode_aescbc.New().Seal(payload, (*[32]byte)(&key), iv, plaintext)
	Logger.WithFields(logrus.Fields{
		"peer":        peer,
		"payload_len": len(payload),
	}).Debug("encrypted secure message")
	return Message{Type: MessageTypeSecure, Payload: payload}, nil
}

// DecryptPayload decrypts a secure message.
// The sender passes its own private key and the recipient's public key, the recipient does the opposite.
func (m Message) DecryptPayload(priv PrivateKey, peer PublicKey) ([]byte, error) {
	if m.Type != MessageTypeSecure {
		return nil, errors.Wrapf(ErrIllegalArgument, "cannot decrypt %v message", m.Type)
	}
	if len(m.Payload) < secureHeaderSize {
		return nil, errors.Wrapf(ErrMessageEncryption, "payload is too short to decode. len=%d", len(m.Payload))
	}
	salt := (*Salt)(m.Payload[:secureSaltSize])
	iv := (*[secureIVSize]byte)(m.Payload[secureSaltSize:secureHeaderSize])
	ctext := m.Payload[secureHeaderSize:]

	key, err := NewKeyPair(priv).SharedKey(peer, salt)
	if err != nil {
		Logger.WithFields(logrus.Fields{"peer": peer}).Debug("secure message: ", err)
		return nil, errors.Wrapf(ErrMessageEncryption, "failed to decrypt message: %v", err)
	}
	ptext, err := blockmode_aescbc.New().Open(nil, (*[32]byte)(&key), iv, ctext)
	if err != nil {
		Logger.WithFields(logrus.Fields{
			"peer":        peer,
			"payload_len": len(m.Payload),
		}).Debug("secure message: ", err)
		return nil, errors.Wrapf(ErrMessageEncryption, "failed to decrypt message: %v", err)
	}
	return ptext, nil
}
