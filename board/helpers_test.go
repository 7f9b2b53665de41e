package board

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

type fakeStore struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeStore) Load(context.Context) ([]Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.data == nil {
		return nil, nil
	}
	var out []Column
	err := json.Unmarshal(f.data, &out)
	return out, err
}

func (f *fakeStore) Save(_ context.Context, columns []Column) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	f.data = data
	f.saves++
	return nil
}

var errStoreDown = errors.New("store down")

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
}

const fixedToday = "2025-03-14"

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{}
	return NewService(store, fixedClock), store
}
