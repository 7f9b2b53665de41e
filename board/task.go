package board

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Priority values used by the board UI.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DateLayout is the format of CreatedAt and UpdatedAt.
const DateLayout = "2006-01-02"

const taskIDPrefix = "task-"

// Task is one card on the board.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	Monetization   string   `json:"monetization,omitempty"`
	Requirements   string   `json:"requirements,omitempty"`

	// Extra holds fields the board does not know about.
	Extra map[string]json.RawMessage `json:"-"`
}

var knownTaskFields = map[string]struct{}{
	"id": {}, "title": {}, "description": {}, "priority": {}, "tags": {},
	"createdAt": {}, "updatedAt": {}, "estimatedHours": {},
	"monetization": {}, "requirements": {},
}

type taskFields Task

// MarshalJSON writes the known fields followed by Extra.
func (t Task) MarshalJSON() ([]byte, error) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	known, err := json.Marshal(taskFields(t))
	if err != nil || len(t.Extra) == 0 {
		return known, err
	}

	merged := make(map[string]json.RawMessage, len(t.Extra)+len(knownTaskFields))
	for k, v := range t.Extra {
		if _, ok := knownTaskFields[k]; !ok {
			merged[k] = v
		}
	}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

// UnmarshalJSON reads the known fields and keeps the rest in Extra.
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields taskFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range knownTaskFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		fields.Extra = raw
	} else {
		fields.Extra = nil
	}

	*t = Task(fields)
	return nil
}

// taskNumber extracts N from "task-N". Leading digits only; anything else
// reads as 0.
func taskNumber(id string) int {
	rest := strings.TrimPrefix(id, taskIDPrefix)
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return n
}
