package service

import (
	"context"
	"errors"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/pkg/hashids"
	"github.com/Siddarth2230/hashlink/pkg/metrics"
)

// ErrAmbiguousRequest is returned when an encode request carries both or
// neither of numbers and hex.
var ErrAmbiguousRequest = errors.New("exactly one of numbers or hex is required")

// CodecService exposes the hashid codec directly.
type CodecService struct {
	codec *hashids.Codec
}

func NewCodecService(codec *hashids.Codec) *CodecService {
	return &CodecService{codec: codec}
}

func (s *CodecService) Encode(_ context.Context, req models.EncodeRequest) (*models.EncodeResponse, error) {
	var (
		hash string
		err  error
	)
	switch {
	case len(req.Numbers) > 0 && req.Hex == "":
		hash, err = s.codec.Encode(req.Numbers...)
		observeCodec("encode", err)
	case len(req.Numbers) == 0 && req.Hex != "":
		hash, err = s.codec.EncodeHex(req.Hex)
		observeCodec("encode_hex", err)
	default:
		return nil, ErrAmbiguousRequest
	}
	if err != nil {
		return nil, err
	}
	return &models.EncodeResponse{Hash: hash}, nil
}

func (s *CodecService) Decode(_ context.Context, req models.DecodeRequest) (*models.DecodeResponse, error) {
	if req.Hex {
		hex, err := s.codec.DecodeHex(req.Hash)
		observeCodec("decode_hex", err)
		if err != nil {
			return nil, err
		}
		return &models.DecodeResponse{Hex: hex}, nil
	}

	numbers, err := s.codec.Decode(req.Hash)
	observeCodec("decode", err)
	if err != nil {
		return nil, err
	}
	return &models.DecodeResponse{Numbers: numbers}, nil
}

func observeCodec(operation string, err error) {
	metrics.ObserveCodec(operation, codecResult(err))
}

func codecResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, hashids.ErrInvalidInputID):
		return "invalid_input"
	case errors.Is(err, hashids.ErrEmptyHash):
		return "empty_hash"
	case errors.Is(err, hashids.ErrInvalidHash):
		return "invalid_hash"
	case errors.Is(err, hashids.ErrNonHexString):
		return "non_hex"
	default:
		return "error"
	}
}
