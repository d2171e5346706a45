package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestToDo_JSON(t *testing.T) {
	is := is.New(t)

	deadline := time.UnixMilli(1767139200000) // keep ms precision exact
	in := ToDo{ID: 7, Text: "water the plants", Deadline: deadline, Done: true}

	bs, err := json.Marshal(in)
	is.NoErr(err)
	is.Equal(string(bs), `{"id":7,"text":"water the plants","deadline":1767139200000,"done":true}`)

	var out ToDo
	is.NoErr(json.Unmarshal(bs, &out))
	is.Equal(out.ID, in.ID)
	is.Equal(out.Text, in.Text)
	is.Equal(out.Done, in.Done)
	is.True(out.Deadline.Equal(in.Deadline))
}

func TestNextID(t *testing.T) {
	is := is.New(t)

	// One past the maximum, holes ignored.
	is.Equal(NextID([]ToDo{{ID: 1}, {ID: 3}, {ID: 4}}), 5)

	// Order does not matter.
	is.Equal(NextID([]ToDo{{ID: 4}, {ID: 1}, {ID: 3}}), 5)

	// Empty collection starts at 1.
	is.Equal(NextID(nil), 1)
}
