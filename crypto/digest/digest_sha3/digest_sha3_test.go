package digest_sha3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
)

func TestMatchesStandard(t *testing.T) {
	input := []byte("hello world")
	require.Equal(t, sha3.Sum256(input), digest.Sum256[State](SHA3_256{}, input))
	require.Equal(t, sha3.Sum512(input), digest.Sum512[State](SHA3_512{}, input))
}

func TestEmptyInput(t *testing.T) {
	actual := digest.Sum256[State](SHA3_256{})
	require.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", hex.EncodeToString(actual[:]))
}

func TestSHA3_256(t *testing.T) {
	digest.TestScheme[State](t, SHA3_256{})
}

func TestSHA3_512(t *testing.T) {
	digest.TestScheme[State](t, SHA3_512{})
}
