package board

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store persists the board document. Load returns (nil, nil) when nothing
// has been saved yet.
type Store interface {
	Load(ctx context.Context) ([]Column, error)
	Save(ctx context.Context, columns []Column) error
}

// Service applies board changes against a Store.
type Service struct {
	store Store
	clock func() time.Time

	mu sync.Mutex
}

// NewService returns a Service over store. A nil clock means time.Now.
func NewService(store Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, clock: clock}
}

func (s *Service) today() string {
	return s.clock().UTC().Format(DateLayout)
}

// Get returns the board. A board that was never saved reads as the default
// empty columns.
func (s *Service) Get(ctx context.Context) ([]Column, error) {
	columns, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	if columns == nil {
		return DefaultColumns(), nil
	}
	return normalizeColumns(columns), nil
}

// Replace overwrites the whole board.
func (s *Service) Replace(ctx context.Context, columns []Column) error {
	if columns == nil {
		return newError(ErrInvalidInput, "Missing columns")
	}
	for _, c := range columns {
		if strings.TrimSpace(c.ID) == "" {
			return newError(ErrInvalidInput, "Column id is required")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, normalizeColumns(columns))
}

// AddTask appends task to column (backlog when empty) and returns the stored
// task. A missing id becomes task-N, one past the highest existing N.
func (s *Service) AddTask(ctx context.Context, task *Task, column string) (Task, error) {
	if task == nil || task.Title == "" {
		return Task{}, newError(ErrInvalidInput, "Missing task or task.title")
	}
	if column == "" {
		column = ColumnBacklog
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	columns, err := s.Get(ctx)
	if err != nil {
		return Task{}, err
	}

	target := findColumn(columns, column)
	if target < 0 {
		return Task{}, newError(ErrNotFound, "Column %s not found", column)
	}

	added := *task
	if added.ID == "" {
		added.ID = nextTaskID(columns)
	}

	today := s.today()
	if added.CreatedAt == "" {
		added.CreatedAt = today
	}
	added.UpdatedAt = today
	if added.Priority == "" {
		added.Priority = PriorityMedium
	}
	if added.Tags == nil {
		added.Tags = []string{}
	}

	if c, _ := findTask(columns, added.ID); c >= 0 {
		return Task{}, newError(ErrConflict, "Task with ID %s already exists", added.ID)
	}

	columns[target].Tasks = append(columns[target].Tasks, added)
	if err := s.save(ctx, columns); err != nil {
		return Task{}, err
	}
	return added, nil
}

// MoveTask moves a task to the end of toColumn. Moving within the same
// column sends it to the bottom.
func (s *Service) MoveTask(ctx context.Context, taskID, toColumn string) (Task, error) {
	if taskID == "" || toColumn == "" {
		return Task{}, newError(ErrInvalidInput, "Missing taskId or toColumn")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	columns, err := s.Get(ctx)
	if err != nil {
		return Task{}, err
	}

	from, idx := findTask(columns, taskID)
	if from < 0 {
		return Task{}, newError(ErrNotFound, "Task %s not found", taskID)
	}
	to := findColumn(columns, toColumn)
	if to < 0 {
		return Task{}, newError(ErrNotFound, "Column %s not found", toColumn)
	}

	task := columns[from].Tasks[idx]
	columns[from].Tasks = append(columns[from].Tasks[:idx:idx], columns[from].Tasks[idx+1:]...)
	task.UpdatedAt = s.today()
	columns[to].Tasks = append(columns[to].Tasks, task)

	if err := s.save(ctx, columns); err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateTask merges updates into a task in place. The id and createdAt
// fields cannot be changed; updatedAt is always set to today.
func (s *Service) UpdateTask(ctx context.Context, taskID string, updates map[string]json.RawMessage) (Task, error) {
	if taskID == "" || updates == nil {
		return Task{}, newError(ErrInvalidInput, "Missing taskId or updates")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	columns, err := s.Get(ctx)
	if err != nil {
		return Task{}, err
	}

	c, idx := findTask(columns, taskID)
	if c < 0 {
		return Task{}, newError(ErrNotFound, "Task %s not found", taskID)
	}

	updated, err := mergeTask(columns[c].Tasks[idx], updates, s.today())
	if err != nil {
		return Task{}, err
	}
	columns[c].Tasks[idx] = updated

	if err := s.save(ctx, columns); err != nil {
		return Task{}, err
	}
	return updated, nil
}

func (s *Service) save(ctx context.Context, columns []Column) error {
	if err := s.store.Save(ctx, columns); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

func mergeTask(task Task, updates map[string]json.RawMessage, today string) (Task, error) {
	current, err := json.Marshal(task)
	if err != nil {
		return Task{}, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &fields); err != nil {
		return Task{}, err
	}

	for k, v := range updates {
		if k == "id" || k == "createdAt" {
			continue
		}
		fields[k] = v
	}
	stamp, _ := json.Marshal(today)
	fields["updatedAt"] = stamp

	merged, err := json.Marshal(fields)
	if err != nil {
		return Task{}, err
	}
	var out Task
	if err := json.Unmarshal(merged, &out); err != nil {
		return Task{}, newError(ErrInvalidInput, "Invalid updates: %v", err)
	}
	return out, nil
}

func nextTaskID(columns []Column) string {
	highest := 0
	for _, c := range columns {
		for _, t := range c.Tasks {
			if n := taskNumber(t.ID); n > highest {
				highest = n
			}
		}
	}
	return fmt.Sprintf("%s%d", taskIDPrefix, highest+1)
}
