package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrEthical07/boardAuth/board"
	"github.com/redis/go-redis/v9"
)

// DefaultKey holds the board when no key is configured.
const DefaultKey = "board:columns"

var ErrRedisUnavailable = errors.New("redis unavailable")

// Store keeps the board as one JSON string under a single key with no TTL.
type Store struct {
	client redis.UniversalClient
	key    string
}

// New returns a Store writing to key on client.
func New(client redis.UniversalClient, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

func (s *Store) Load(ctx context.Context) ([]board.Column, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var columns []board.Column
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return columns, nil
}

func (s *Store) Save(ctx context.Context, columns []board.Column) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
