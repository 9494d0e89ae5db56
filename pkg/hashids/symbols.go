package hashids

import (
	"math/bits"
	"strings"
)

// toSymbols writes n in base len(alphabet), most significant digit first.
// Zero is the single digit alphabet[0].
func toSymbols(n uint64, alphabet []byte) []byte {
	base := uint64(len(alphabet))

	var buf [64]byte
	i := len(buf)
	for {
		i--
		buf[i] = alphabet[n%base]
		n /= base
		if n == 0 {
			break
		}
	}
	return append([]byte(nil), buf[i:]...)
}

// fromSymbols is the inverse of toSymbols. A character missing from the
// alphabet counts as digit 0; the caller's re-encode check rejects such input.
// ok is false when the value doesn't fit in a uint64.
func fromSymbols(s string, alphabet []byte) (n uint64, ok bool) {
	base := uint64(len(alphabet))
	set := string(alphabet)
	for i := 0; i < len(s); i++ {
		digit := strings.IndexByte(set, s[i])
		if digit < 0 {
			digit = 0
		}
		hi, lo := bits.Mul64(n, base)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		n, carry = bits.Add64(lo, uint64(digit), 0)
		if carry != 0 {
			return 0, false
		}
	}
	return n, true
}
