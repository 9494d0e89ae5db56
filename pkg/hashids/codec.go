package hashids

import (
	"fmt"
	"strings"
)

// Codec encodes and decodes hashes for one configuration. It holds no
// mutable state; a single Codec may be used from many goroutines.
type Codec struct {
	salt       string
	alphabet   string
	separators string
	guards     string
	minLength  int
}

// New validates opts and derives a Codec from them.
func New(opts Options) (*Codec, error) {
	salt, err := NewSalt(opts.Salt)
	if err != nil {
		return nil, err
	}
	if opts.MinLength < 0 {
		return nil, ErrInvalidMinLength
	}
	p, err := derivePools(opts.Alphabet, salt)
	if err != nil {
		return nil, err
	}
	return &Codec{
		salt:       salt.value,
		alphabet:   string(p.alphabet),
		separators: string(p.separators),
		guards:     string(p.guards),
		minLength:  opts.MinLength,
	}, nil
}

// Alphabet returns the working alphabet digits are drawn from.
func (c *Codec) Alphabet() string { return c.alphabet }

// Separators returns the characters placed between encoded numbers.
func (c *Codec) Separators() string { return c.separators }

// Guards returns the characters used only for padding.
func (c *Codec) Guards() string { return c.guards }

// MinLength returns the minimum hash length.
func (c *Codec) MinLength() int { return c.minLength }

// Encode turns one or more numbers in [0, MaxNumber] into a hash.
func (c *Codec) Encode(numbers ...int64) (string, error) {
	if len(numbers) == 0 {
		return "", fmt.Errorf("%w: no numbers to encode", ErrInvalidInputID)
	}
	values := make([]uint64, len(numbers))
	for i, n := range numbers {
		if n < 0 || n > MaxNumber {
			return "", fmt.Errorf("%w: %d", ErrInvalidInputID, n)
		}
		values[i] = uint64(n)
	}
	return c.encode(values), nil
}

// EncodeUint64 is Encode for unsigned input.
func (c *Codec) EncodeUint64(numbers ...uint64) (string, error) {
	if len(numbers) == 0 {
		return "", fmt.Errorf("%w: no numbers to encode", ErrInvalidInputID)
	}
	for _, n := range numbers {
		if n > MaxNumber {
			return "", fmt.Errorf("%w: %d", ErrInvalidInputID, n)
		}
	}
	return c.encode(numbers), nil
}

func (c *Codec) encode(numbers []uint64) string {
	alphabet := []byte(c.alphabet)
	alphabetLen := uint64(len(alphabet))

	var seed uint64
	for i, n := range numbers {
		seed += n % uint64(i+100)
	}

	lottery := alphabet[seed%alphabetLen]
	out := make([]byte, 0, c.minLength+len(numbers)*12)
	out = append(out, lottery)

	buf := make([]byte, 0, 1+len(c.salt)+len(alphabet))
	for i, n := range numbers {
		buf = append(buf[:0], lottery)
		buf = append(buf, c.salt...)
		buf = append(buf, alphabet...)
		consistentShuffle(alphabet, buf[:len(alphabet)])

		digits := toSymbols(n, alphabet)
		out = append(out, digits...)

		if i+1 < len(numbers) {
			if m := uint64(digits[0]) + uint64(i); m > 0 {
				n %= m
			}
			out = append(out, c.separators[n%uint64(len(c.separators))])
		}
	}

	if len(out) < c.minLength {
		guardsLen := uint64(len(c.guards))
		g := (seed + uint64(out[0])) % guardsLen
		out = append([]byte{c.guards[g]}, out...)

		if len(out) < c.minLength {
			g = (seed + uint64(out[2])) % guardsLen
			out = append(out, c.guards[g])
		}
	}

	half := len(alphabet) / 2
	for len(out) < c.minLength {
		consistentShuffle(alphabet, append([]byte(nil), alphabet...))

		wrapped := make([]byte, 0, len(alphabet)+len(out))
		wrapped = append(wrapped, alphabet[half:]...)
		wrapped = append(wrapped, out...)
		wrapped = append(wrapped, alphabet[:half]...)
		out = wrapped

		if excess := len(out) - c.minLength; excess > 0 {
			start := excess / 2
			out = out[start : start+c.minLength]
		}
	}

	return string(out)
}

// Decode recovers the numbers encoded in hash. The result is re-encoded and
// compared with hash, so a hash made with another salt or alphabet, or one
// that was tampered with, fails with ErrInvalidHash.
func (c *Codec) Decode(hash string) ([]int64, error) {
	if hash == "" {
		return nil, ErrEmptyHash
	}

	segments := strings.FieldsFunc(hash, func(r rune) bool {
		return r < 0x80 && strings.IndexByte(c.guards, byte(r)) >= 0
	})
	if len(segments) == 0 {
		return nil, ErrInvalidHash
	}
	body := segments[0]
	if len(segments) == 2 || len(segments) == 3 {
		body = segments[1]
	}

	lottery := body[0]
	groups := strings.FieldsFunc(body[1:], func(r rune) bool {
		return r < 0x80 && strings.IndexByte(c.separators, byte(r)) >= 0
	})
	if len(groups) == 0 {
		return nil, ErrInvalidHash
	}

	alphabet := []byte(c.alphabet)
	buf := make([]byte, 0, 1+len(c.salt)+len(alphabet))
	values := make([]uint64, 0, len(groups))
	for _, group := range groups {
		buf = append(buf[:0], lottery)
		buf = append(buf, c.salt...)
		buf = append(buf, alphabet...)
		consistentShuffle(alphabet, buf[:len(alphabet)])

		n, ok := fromSymbols(group, alphabet)
		if !ok || n > MaxNumber {
			return nil, ErrInvalidHash
		}
		values = append(values, n)
	}

	if c.encode(values) != hash {
		return nil, ErrInvalidHash
	}

	numbers := make([]int64, len(values))
	for i, n := range values {
		numbers[i] = int64(n)
	}
	return numbers, nil
}
