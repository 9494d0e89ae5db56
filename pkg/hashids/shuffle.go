package hashids

// Shuffle returns a salt-keyed permutation of sequence. Both must be
// non-empty ASCII.
func Shuffle(sequence, salt string) (string, error) {
	if salt == "" {
		return "", ErrMissingSalt
	}
	if !isASCII(salt) {
		return "", ErrNonASCIISalt
	}
	if sequence == "" {
		return "", ErrInvalidAlphabetLength
	}
	if !isASCII(sequence) {
		return "", ErrNonASCIIAlphabet
	}
	b := []byte(sequence)
	consistentShuffle(b, []byte(salt))
	return string(b), nil
}

// consistentShuffle permutes seq in place. Both arguments must be non-empty.
// The walk must stay bit-for-bit identical to other hashids implementations:
// any change here changes every hash produced with an existing salt.
func consistentShuffle(seq, salt []byte) {
	v, p := 0, 0
	for i := len(seq) - 1; i > 0; i-- {
		v %= len(salt)
		c := int(salt[v])
		p += c
		j := (c + v + p) % i
		seq[i], seq[j] = seq[j], seq[i]
		v++
	}
}
