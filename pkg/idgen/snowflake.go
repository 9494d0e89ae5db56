package idgen

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Snowflake layout, 53 bits so every ID stays encodable:
// 41 bits timestamp (ms since custom epoch)
// 4 bits node ID (0..15)
// 8 bits sequence (0..255)
const (
	timestampBits = 41
	nodeBits      = 4
	sequenceBits  = 8
)

// SnowflakeGenerator implements a Snowflake-like ID generator.
type SnowflakeGenerator struct {
	mu          sync.Mutex
	epoch       int64  // custom epoch in ms
	nodeID      uint64 // up to 4 bits
	lastTs      int64
	sequence    uint64
	maxSequence uint64
	now         func() time.Time
}

// NewSnowflakeGenerator creates a SnowflakeGenerator with given epoch (ms) and nodeID.
// nodeID must fit in 4 bits (0..15). If epoch==0 the default epoch
// 2020-01-01 00:00:00 UTC is used.
func NewSnowflakeGenerator(nodeID uint64, epochMs int64) (*SnowflakeGenerator, error) {
	maxNode := uint64((1 << nodeBits) - 1)
	if nodeID > maxNode {
		return nil, errors.New("nodeID out of range")
	}

	if epochMs == 0 {
		epochMs = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	}

	return &SnowflakeGenerator{
		epoch:       epochMs,
		nodeID:      nodeID,
		lastTs:      -1,
		maxSequence: (1 << sequenceBits) - 1,
		now:         time.Now,
	}, nil
}

// Next returns a new time-ordered ID. The URL is ignored.
func (s *SnowflakeGenerator) Next(ctx context.Context, _ string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UnixMilli() - s.epoch
	if ts < 0 {
		return 0, errors.New("current time is before epoch")
	}
	if ts >= 1<<timestampBits {
		return 0, errors.New("timestamp overflows 41 bits")
	}
	if ts < s.lastTs {
		// clock moved backwards; keep handing out IDs from the last tick
		ts = s.lastTs
	}

	if ts == s.lastTs {
		s.sequence = (s.sequence + 1) & s.maxSequence
		if s.sequence == 0 {
			// sequence overflow within same millisecond -> wait for next millisecond
			for ts <= s.lastTs {
				select {
				case <-ctx.Done():
					return 0, ctx.Err()
				case <-time.After(time.Millisecond):
				}
				ts = s.now().UnixMilli() - s.epoch
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTs = ts

	id := (uint64(ts) << (nodeBits + sequenceBits)) |
		(s.nodeID << sequenceBits) |
		s.sequence

	return int64(id), nil
}
