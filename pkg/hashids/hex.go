package hashids

import (
	"strconv"
	"strings"
)

// hexChunk is the number of hex digits packed into one encoded number.
// A leading "1" is added to every chunk so leading zeros survive, which keeps
// each value below 16^13 and therefore below MaxNumber.
const hexChunk = 12

// EncodeHex encodes a hex string (no 0x prefix, either case).
func (c *Codec) EncodeHex(hex string) (string, error) {
	if hex == "" {
		return "", ErrNonHexString
	}
	numbers := make([]uint64, 0, (len(hex)+hexChunk-1)/hexChunk)
	for start := 0; start < len(hex); start += hexChunk {
		end := start + hexChunk
		if end > len(hex) {
			end = len(hex)
		}
		chunk := hex[start:end]
		if !isHex(chunk) {
			return "", ErrNonHexString
		}
		n, err := strconv.ParseUint("1"+chunk, 16, 64)
		if err != nil {
			return "", ErrNonHexString
		}
		numbers = append(numbers, n)
	}
	return c.encode(numbers), nil
}

// DecodeHex reverses EncodeHex. Hex digits come back in lower case.
func (c *Codec) DecodeHex(hash string) (string, error) {
	numbers, err := c.Decode(hash)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, n := range numbers {
		s := strconv.FormatUint(uint64(n), 16)
		if len(s) < 2 || len(s) > hexChunk+1 || s[0] != '1' {
			return "", ErrNonHexString
		}
		// only the last chunk may be short
		if i < len(numbers)-1 && len(s) != hexChunk+1 {
			return "", ErrNonHexString
		}
		b.WriteString(s[1:])
	}
	return b.String(), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
