// Package persist stores the task list as a single JSON document,
// rewritten wholesale on every save.
package persist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/veldt/taskdeck/pkg/task"
)

type Persistor interface {
	Save([]task.ToDo) error
	Load() ([]task.ToDo, error)
}

type JSON struct {
	file string
}

func InJSON(file string) *JSON {
	return &JSON{file}
}

// Save writes the whole list to the json file.
func (j *JSON) Save(ts []task.ToDo) error {
	if ts == nil {
		ts = []task.ToDo{}
	}
	bs, err := json.Marshal(ts)
	if err != nil {
		return err
	}
	return os.WriteFile(j.file, bs, 0660)
}

// Load reads the task list from the json file. A missing file is an empty
// list; a corrupt file is reset to an empty list rather than surfaced.
func (j *JSON) Load() ([]task.ToDo, error) {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, fs.ErrNotExist) {
		return []task.ToDo{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ts []task.ToDo
	if err := json.Unmarshal(bs, &ts); err != nil {
		if err := j.Save(nil); err != nil {
			return nil, err
		}
		return []task.ToDo{}, nil
	}
	if ts == nil {
		ts = []task.ToDo{}
	}
	return ts, nil
}
