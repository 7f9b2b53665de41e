package board

// Column ids of the default board, in display order.
const (
	ColumnBacklog      = "backlog"
	ColumnRequirements = "requirements"
	ColumnInProgress   = "in-progress"
	ColumnReview       = "review"
	ColumnComplete     = "complete"
)

// Column is one lane of the board.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Emoji string `json:"emoji,omitempty"`
	Tasks []Task `json:"tasks"`
}

// DefaultColumns returns the five empty columns a new board starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: ColumnBacklog, Title: "Backlog", Emoji: "📋", Tasks: []Task{}},
		{ID: ColumnRequirements, Title: "Requirements", Emoji: "📝", Tasks: []Task{}},
		{ID: ColumnInProgress, Title: "In Progress", Emoji: "⚡", Tasks: []Task{}},
		{ID: ColumnReview, Title: "Review", Emoji: "🔍", Tasks: []Task{}},
		{ID: ColumnComplete, Title: "Complete", Emoji: "✅", Tasks: []Task{}},
	}
}

func normalizeColumns(columns []Column) []Column {
	for i := range columns {
		if columns[i].Tasks == nil {
			columns[i].Tasks = []Task{}
		}
	}
	return columns
}

func findColumn(columns []Column, id string) int {
	for i := range columns {
		if columns[i].ID == id {
			return i
		}
	}
	return -1
}

func findTask(columns []Column, id string) (col, idx int) {
	for c := range columns {
		for i := range columns[c].Tasks {
			if columns[c].Tasks[i].ID == id {
				return c, i
			}
		}
	}
	return -1, -1
}
