package hashids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHex_Chunks(t *testing.T) {
	codec := newTestCodec(t, DefaultOptions(testSalt))

	fromHex, err := codec.EncodeHex("123456789abcdef")
	require.NoError(t, err)

	// "1"+"123456789abc" and "1"+"def"
	fromNumbers, err := codec.Encode(301490975054524, 7663)
	require.NoError(t, err)

	assert.Equal(t, fromNumbers, fromHex)
}

func TestHex_Roundtrip(t *testing.T) {
	codec := newTestCodec(t, DefaultOptions(testSalt))

	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"00", "00"},
		{"deadbeef", "deadbeef"},
		{"DEADBEEF", "deadbeef"},
		{"000000000000", "000000000000"},
		{"ffffffffffff0", "ffffffffffff0"},
		{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439011"},
		{"0123456789abcdef0123456789abcdef0123", "0123456789abcdef0123456789abcdef0123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hash, err := codec.EncodeHex(tt.input)
			require.NoError(t, err)

			decoded, err := codec.DecodeHex(hash)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestEncodeHex_Invalid(t *testing.T) {
	codec := newTestCodec(t, DefaultOptions(testSalt))

	for _, input := range []string{"", "4g", "0x12", "12 34", "abcdefabcdefz"} {
		_, err := codec.EncodeHex(input)
		assert.ErrorIs(t, err, ErrNonHexString, "EncodeHex(%q)", input)
	}
}

func TestDecodeHex_Invalid(t *testing.T) {
	codec := newTestCodec(t, DefaultOptions(testSalt))

	_, err := codec.DecodeHex("")
	assert.ErrorIs(t, err, ErrEmptyHash)

	// a valid hash whose number was never produced by EncodeHex
	hash, err := codec.Encode(5)
	require.NoError(t, err)
	_, err = codec.DecodeHex(hash)
	assert.ErrorIs(t, err, ErrNonHexString)

	// two short chunks: EncodeHex("ab") packs both digits into one chunk
	hash, err = codec.Encode(0x1a, 0x1b)
	require.NoError(t, err)
	_, err = codec.DecodeHex(hash)
	assert.ErrorIs(t, err, ErrNonHexString)

	// a short chunk followed by a full one
	hash, err = codec.Encode(0x1a, 0x1abcdefabcdef)
	require.NoError(t, err)
	_, err = codec.DecodeHex(hash)
	assert.ErrorIs(t, err, ErrNonHexString)
}

func TestDecodeHex_FullChunksThenShort(t *testing.T) {
	codec := newTestCodec(t, DefaultOptions(testSalt))

	hash, err := codec.Encode(0x1abcdefabcdef, 0x1abcdefabcdef, 0x10f)
	require.NoError(t, err)
	decoded, err := codec.DecodeHex(hash)
	require.NoError(t, err)
	assert.Equal(t, "abcdefabcdefabcdefabcdef0f", decoded)

	again, err := codec.EncodeHex(decoded)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}
