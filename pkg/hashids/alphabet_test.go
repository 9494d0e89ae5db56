package hashids

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueChars(t *testing.T) {
	assert.Equal(t, "abc", uniqueChars("abcabc"))
	assert.Equal(t, "ba", uniqueChars("bbaab"))
	assert.Equal(t, "", uniqueChars(""))
}

func TestPartition(t *testing.T) {
	seps, rest := partition(defaultSeparators, "abcdefghijklmnop")
	assert.Equal(t, "cfhi", string(seps))
	assert.Equal(t, "abdegjklmnop", string(rest))

	seps, rest = partition(defaultSeparators, "0123456789")
	assert.Empty(t, seps)
	assert.Equal(t, "0123456789", string(rest))
}

func TestDerivePools_DefaultAlphabet(t *testing.T) {
	salt, err := NewSalt("this is my salt")
	require.NoError(t, err)

	p, err := derivePools(DefaultAlphabet, salt)
	require.NoError(t, err)

	assert.Len(t, p.separators, 14)
	assert.Len(t, p.guards, 4)
	assert.Len(t, p.alphabet, 44)
	assertPartitioned(t, DefaultAlphabet, p)

	for _, c := range p.separators {
		assert.Contains(t, defaultSeparators, string(c))
	}
}

func TestDerivePools_ResizesSeparators(t *testing.T) {
	salt, err := NewSalt("this is my salt")
	require.NoError(t, err)

	// No default separator present: four characters move from the alphabet.
	p, err := derivePools("0123456789!@#$%^", salt)
	require.NoError(t, err)
	assert.Len(t, p.separators, 4)
	assert.Len(t, p.guards, 1)
	assert.Len(t, p.alphabet, 11)
	assertPartitioned(t, "0123456789!@#$%^", p)

	// Two separators against fourteen alphabet characters: grows to four.
	p, err = derivePools("0123456789abcdef", salt)
	require.NoError(t, err)
	assert.Len(t, p.separators, 4)
	assert.Len(t, p.guards, 1)
	assert.Len(t, p.alphabet, 11)
	assertPartitioned(t, "0123456789abcdef", p)
}

func TestDerivePools_GuardsFromSeparators(t *testing.T) {
	salt, err := NewSalt("this is my salt")
	require.NoError(t, err)

	p, err := derivePools("cfhistuCFHISTU01", salt)
	require.NoError(t, err)
	assert.Len(t, p.alphabet, 2)
	assert.Len(t, p.guards, 1)
	assert.Len(t, p.separators, 13)
	assertPartitioned(t, "cfhistuCFHISTU01", p)
}

func TestDerivePools_AlphabetValidation(t *testing.T) {
	salt, err := NewSalt("salt")
	require.NoError(t, err)

	tests := []struct {
		name     string
		alphabet string
		err      error
	}{
		{"empty", "", ErrInvalidAlphabetLength},
		{"fifteen unique", "abcdefghijklmno", ErrInvalidAlphabetLength},
		{"sixteen with duplicates folded", "aabbccddeeffgghhiijjkkllmmnnoo", ErrInvalidAlphabetLength},
		{"sixteen unique", "abcdefghijklmnop", nil},
		{"sixteen unique plus repeats", "abcdefghijklmnoppppa", nil},
		{"non ascii", "あいうえおかきくけこたちつてとさしすせそ", ErrNonASCIIAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := derivePools(tt.alphabet, salt)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

// assertPartitioned checks that the pools are disjoint and together hold
// exactly the unique characters of alphabet.
func assertPartitioned(t *testing.T, alphabet string, p pools) {
	t.Helper()

	all := string(p.alphabet) + string(p.separators) + string(p.guards)
	assert.Equal(t, sortChars(uniqueChars(alphabet)), sortChars(all))
	assert.Len(t, all, len(uniqueChars(alphabet)), "pools overlap")
	for _, c := range p.separators {
		assert.False(t, strings.ContainsRune(string(p.alphabet), rune(c)), "separator %q in alphabet", c)
	}
}

func sortChars(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
