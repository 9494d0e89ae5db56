package hashids

import (
	"fmt"
	"testing"

	gohashids "github.com/speps/go-hashids/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With the default alphabet the separator pool is never resized, so the
// output must match the reference Go implementation byte for byte.
func TestCompat_ReferenceImplementation(t *testing.T) {
	salts := []string{"this is my salt", "x", "a much longer salt than the alphabet itself, padded out to be sure it wraps past sixty-two characters"}
	minLengths := []int{0, 4, 8, 30}
	inputs := [][]int64{
		{0},
		{1},
		{12345},
		{683, 94108, 123, 5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{MaxNumber},
		{0, 0, 0},
	}

	for _, salt := range salts {
		for _, minLength := range minLengths {
			name := fmt.Sprintf("%.8s/%d", salt, minLength)
			t.Run(name, func(t *testing.T) {
				codec := newTestCodec(t, Options{Salt: salt, Alphabet: DefaultAlphabet, MinLength: minLength})

				data := gohashids.NewData()
				data.Salt = salt
				data.MinLength = minLength
				reference, err := gohashids.NewWithData(data)
				require.NoError(t, err)

				for _, numbers := range inputs {
					want, err := reference.EncodeInt64(numbers)
					require.NoError(t, err)

					got, err := codec.Encode(numbers...)
					require.NoError(t, err)
					assert.Equal(t, want, got, "numbers %v", numbers)

					decoded, err := reference.DecodeInt64WithError(got)
					require.NoError(t, err)
					assert.Equal(t, numbers, decoded)
				}
			})
		}
	}
}
