package hashids

// Salt is the secret that drives every permutation. It is non-empty ASCII.
type Salt struct {
	value string
}

// NewSalt validates s and wraps it.
func NewSalt(s string) (Salt, error) {
	if s == "" {
		return Salt{}, ErrMissingSalt
	}
	if !isASCII(s) {
		return Salt{}, ErrNonASCIISalt
	}
	return Salt{value: s}, nil
}

// String hides the salt so it doesn't end up in logs by accident.
func (s Salt) String() string {
	return "hashids.Salt(redacted)"
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
