package hashids

import "strings"

const (
	defaultSeparators = "cfhistuCFHISTU"

	separatorRatio = 3.5
	guardRatio     = 12
)

// pools is the derived character partition shared by encode and decode.
type pools struct {
	alphabet   []byte
	separators []byte
	guards     []byte
}

// derivePools splits alphabet into working alphabet, separators and guards.
// The order of the steps is part of the output format.
func derivePools(alphabet string, salt Salt) (pools, error) {
	if !isASCII(alphabet) {
		return pools{}, ErrNonASCIIAlphabet
	}
	unique := uniqueChars(alphabet)
	if len(unique) < MinAlphabetLength {
		return pools{}, ErrInvalidAlphabetLength
	}

	seps, alpha := partition(defaultSeparators, unique)
	saltBytes := []byte(salt.value)
	if len(seps) > 0 {
		consistentShuffle(seps, saltBytes)
	}

	if len(seps) == 0 || float64(len(alpha))/float64(len(seps)) > separatorRatio {
		target := int(float64(len(alpha)) / separatorRatio)
		if target < 2 {
			target = 2
		}
		if target > len(seps) {
			diff := target - len(seps)
			seps = append(seps, alpha[:diff]...)
			alpha = alpha[diff:]
		} else {
			seps = seps[:target]
		}
	}

	consistentShuffle(alpha, saltBytes)

	guardCount := (len(alpha) + guardRatio - 1) / guardRatio
	var guards []byte
	if len(alpha) < 3 {
		guards, seps = seps[:guardCount], seps[guardCount:]
	} else {
		guards, alpha = alpha[:guardCount], alpha[guardCount:]
	}

	return pools{alphabet: alpha, separators: seps, guards: guards}, nil
}

// uniqueChars drops repeated bytes, keeping the first occurrence.
func uniqueChars(s string) string {
	var seen [128]bool
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		b.WriteByte(c)
	}
	return b.String()
}

// partition returns the characters of candidates that appear in alphabet, and
// the characters of alphabet that don't appear in candidates. The two results
// never share a character.
func partition(candidates, alphabet string) (seps, rest []byte) {
	for i := 0; i < len(candidates); i++ {
		if strings.IndexByte(alphabet, candidates[i]) >= 0 {
			seps = append(seps, candidates[i])
		}
	}
	for i := 0; i < len(alphabet); i++ {
		if strings.IndexByte(candidates, alphabet[i]) < 0 {
			rest = append(rest, alphabet[i])
		}
	}
	return seps, rest
}
