package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MrEthical07/boardAuth/board"
)

// Store keeps the board document in process memory.
type Store struct {
	mu   sync.RWMutex
	data []byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]board.Column, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	if data == nil {
		return nil, nil
	}
	var columns []board.Column
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *Store) Save(_ context.Context, columns []board.Column) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}
