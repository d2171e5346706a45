package persist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// SearchState mirrors the table's text filter into a small state file so
// the search survives a restart. Clearing the search removes the file, the
// same way the original dropped the query parameter from the URL.
type SearchState struct {
	file string
}

func NewSearchState(file string) *SearchState {
	return &SearchState{file}
}

type searchState struct {
	Query string `json:"q"`
}

func (s *SearchState) Save(query string) error {
	if query == "" {
		err := os.Remove(s.file)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	bs, err := json.Marshal(searchState{Query: query})
	if err != nil {
		return err
	}
	return os.WriteFile(s.file, bs, 0660)
}

func (s *SearchState) Load() (string, error) {
	bs, err := os.ReadFile(s.file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var state searchState
	if err := json.Unmarshal(bs, &state); err != nil {
		return "", nil
	}
	return state.Query, nil
}
