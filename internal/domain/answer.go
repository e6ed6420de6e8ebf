package domain

import (
	"bytes"
	"encoding/json"
)

// Answer is the choice recorded for a single question: either a selected
// option index or unanswered. The zero value is unanswered, so a fresh
// answer slice needs no initialization. A tagged value is used instead of a
// magic integer so an unanswered question can never collide with a valid
// option index during scoring.
type Answer struct {
	Index    int
	Answered bool
}

// Chosen returns an answered Answer for the given option index.
func Chosen(index int) Answer {
	return Answer{Index: index, Answered: true}
}

var nullLiteral = []byte("null")

// MarshalJSON encodes unanswered as null and answered as the bare index,
// the layout the persisted result records use.
func (a Answer) MarshalJSON() ([]byte, error) {
	if !a.Answered {
		return nullLiteral, nil
	}
	return json.Marshal(a.Index)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*a = Answer{}
		return nil
	}
	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return err
	}
	*a = Chosen(index)
	return nil
}
