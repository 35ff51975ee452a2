package nemcrypto

import (
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest"
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest/digest_ripemd160"
	"github.com/brendoncarroll/go-nemcrypto/crypto/digest/digest_sha3"
)

func SHA3_256(data ...[]byte) [32]byte {
	return digest.Sum256[digest_sha3.State](digest_sha3.SHA3_256{}, data...)
}

func SHA3_512(data ...[]byte) [64]byte {
	return digest.Sum512[digest_sha3.State](digest_sha3.SHA3_512{}, data...)
}

func RIPEMD160(data ...[]byte) (ret [digest_ripemd160.Size]byte) {
	digest.Sum[digest_ripemd160.State](digest_ripemd160.RIPEMD160{}, ret[:], data...)
	return ret
}
