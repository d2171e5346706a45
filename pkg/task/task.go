package task

import (
	"encoding/json"
	"time"
)

// ToDo is a single tracked task. Deadlines travel as epoch milliseconds on
// the wire; in memory they are a time.Time.
type ToDo struct {
	ID       int
	Text     string
	Deadline time.Time
	Done     bool
}

type wireToDo struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Deadline int64  `json:"deadline"`
	Done     bool   `json:"done"`
}

func (t ToDo) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireToDo{
		ID:       t.ID,
		Text:     t.Text,
		Deadline: t.Deadline.UnixMilli(),
		Done:     t.Done,
	})
}

func (t *ToDo) UnmarshalJSON(bs []byte) error {
	var w wireToDo
	if err := json.Unmarshal(bs, &w); err != nil {
		return err
	}
	t.ID = w.ID
	t.Text = w.Text
	t.Deadline = time.UnixMilli(w.Deadline)
	t.Done = w.Done
	return nil
}

// NextID returns the id the service assigns to the next created task:
// one more than the current maximum, or 1 on an empty collection.
func NextID(ts []ToDo) int {
	maxID := 0
	for _, t := range ts {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
