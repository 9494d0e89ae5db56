package hashids

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	ErrMissingSalt           = errors.New("hashids: missing salt")
	ErrNonASCIISalt          = errors.New("hashids: salt must be ASCII")
	ErrNonASCIIAlphabet      = errors.New("hashids: alphabet must be ASCII")
	ErrInvalidAlphabetLength = fmt.Errorf("hashids: alphabet must contain at least %d unique characters", MinAlphabetLength)
	ErrInvalidMinLength      = errors.New("hashids: minimum length must not be negative")
)

// Call-time errors.
var (
	ErrInvalidInputID = errors.New("hashids: number out of range")
	ErrEmptyHash      = errors.New("hashids: empty hash")
	ErrInvalidHash    = errors.New("hashids: invalid hash")
	ErrNonHexString   = errors.New("hashids: not a hex string")
)
