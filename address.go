package nemcrypto

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NetworkType is the version byte at the front of an address
type NetworkType uint8

const (
	MainNet   = NetworkType(104)
	TestNet   = NetworkType(152)
	Mijin     = NetworkType(96)
	MijinTest = NetworkType(144)
)

var networkTypes = []NetworkType{MainNet, TestNet, Mijin, MijinTest}

func (n NetworkType) String() string {
	switch n {
	case MainNet:
		return "MAIN_NET"
	case TestNet:
		return "TEST_NET"
	case Mijin:
		return "MIJIN"
	case MijinTest:
		return "MIJIN_TEST"
	default:
		return fmt.Sprintf("NetworkType(%d)", uint8(n))
	}
}

// AddressPrefix is the first character of every address on the network
func (n NetworkType) AddressPrefix() byte {
	switch n {
	case MainNet:
		return 'N'
	case TestNet:
		return 'T'
	case Mijin:
		return 'M'
	case MijinTest:
		return 'S'
	default:
		return 0
	}
}

const (
	AddressSize         = 1 + 20 + addressChecksumSize
	addressChecksumSize = 4
	addressPlainLen     = AddressSize * 8 / 5
)

// Address is the base32 form of version || RIPEMD160(SHA3-256(pub)) || checksum
type Address struct {
	network NetworkType
	plain   string
}

// NewAddress derives the address of pub on network
func NewAddress(pub PublicKey, network NetworkType) Address {
	h := SHA3_256(pub[:])
	r := RIPEMD160(h[:])
	var raw [AddressSize]byte
	raw[0] = byte(network)
	copy(raw[1:], r[:])
	sum := SHA3_256(raw[:1+len(r)])
	copy(raw[1+len(r):], sum[:addressChecksumSize])
	return Address{network: network, plain: base32.StdEncoding.EncodeToString(raw[:])}
}

// ParseAddress parses an address in plain or pretty form, ignoring case, dashes and spaces.
// It returns ErrIllegalArgument if the address does not belong to network or is not base32.
func ParseAddress(x string, network NetworkType) (Address, error) {
	plain := normalizeAddress(x)
	if plain == "" {
		return Address{}, errors.Wrap(ErrIllegalArgument, "address must not be empty")
	}
	if plain[0] != network.AddressPrefix() {
		return Address{}, errors.Wrapf(ErrIllegalArgument, "%v addresses start with %c", network, network.AddressPrefix())
	}
	if len(plain) != addressPlainLen {
		return Address{}, errors.Wrapf(ErrIllegalArgument, "address must be %d characters. HAVE: %d", addressPlainLen, len(plain))
	}
	if _, err := base32.StdEncoding.DecodeString(plain); err != nil {
		return Address{}, errors.Wrap(ErrIllegalArgument, "address must be base32 encoded")
	}
	return Address{network: network, plain: plain}, nil
}

// ParseRawAddress is like ParseAddress, but detects the network from the first character.
func ParseRawAddress(x string) (Address, error) {
	plain := normalizeAddress(x)
	if plain == "" {
		return Address{}, errors.Wrap(ErrIllegalArgument, "address must not be empty")
	}
	for _, n := range networkTypes {
		if plain[0] == n.AddressPrefix() {
			return ParseAddress(plain, n)
		}
	}
	return Address{}, errors.Wrapf(ErrIllegalArgument, "address %q has an unknown network prefix", x)
}

func (a Address) Network() NetworkType {
	return a.network
}

// Plain returns the address without separators. e.g. SB3KUBHATFCPV7UZQLWAQ2EUR6SIHBSBEOEDDDF3
func (a Address) Plain() string {
	return a.plain
}

// Pretty returns the address in groups of 6. e.g. SB3KUB-HATFCP-V7UZQL-WAQ2EU-R6SIHB-SBEOED-DDF3
func (a Address) Pretty() string {
	var parts []string
	for i := 0; i < len(a.plain); i += 6 {
		end := i + 6
		if end > len(a.plain) {
			end = len(a.plain)
		}
		parts = append(parts, a.plain[i:end])
	}
	return strings.Join(parts, "-")
}

// Bytes returns the decoded address
func (a Address) Bytes() []byte {
	data, err := base32.StdEncoding.DecodeString(a.plain)
	if err != nil {
		panic(err)
	}
	return data
}

// ChecksumValid returns true if the version byte and checksum match the rest of the address.
// Parsing does not check the checksum.
func (a Address) ChecksumValid() bool {
	data := a.Bytes()
	if len(data) != AddressSize || NetworkType(data[0]) != a.network {
		return false
	}
	sum := SHA3_256(data[:AddressSize-addressChecksumSize])
	return string(sum[:addressChecksumSize]) == string(data[AddressSize-addressChecksumSize:])
}

func (a Address) String() string {
	return a.plain
}

func normalizeAddress(x string) string {
	x = strings.ReplaceAll(x, "-", "")
	x = strings.ReplaceAll(x, " ", "")
	return strings.ToUpper(x)
}
