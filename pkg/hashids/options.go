package hashids

const (
	// DefaultAlphabet is used when Options.Alphabet is left at its default.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

	// DefaultMinLength is the minimum hash length used by DefaultOptions.
	DefaultMinLength = 4

	// MinAlphabetLength is the smallest accepted alphabet after deduplication.
	MinAlphabetLength = 16

	// MaxNumber is the largest value Encode accepts.
	MaxNumber = 1 << 53
)

// Options is everything New needs to build a Codec.
type Options struct {
	// Salt is required. It must be non-empty ASCII.
	Salt string

	// Alphabet is the character set hashes are drawn from. Duplicates are
	// dropped (first occurrence wins); at least MinAlphabetLength unique
	// ASCII characters must remain.
	Alphabet string

	// MinLength pads shorter hashes. Zero disables padding.
	MinLength int
}

// DefaultOptions returns Options with DefaultAlphabet and DefaultMinLength.
func DefaultOptions(salt string) Options {
	return Options{
		Salt:      salt,
		Alphabet:  DefaultAlphabet,
		MinLength: DefaultMinLength,
	}
}
