package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReadingReference points at a scripture passage. Verses is "all" when the
// source reference had no colon-delimited verse range.
type ReadingReference struct {
	Book     string `json:"book"`
	Chapters string `json:"chapters"`
	Verses   string `json:"verses"`
}

// newReference splits a reference token like "1:3" into chapters and verses.
// A token without a colon covers the whole chapter.
func newReference(book, reference string) *ReadingReference {
	if before, after, found := strings.Cut(reference, ":"); found {
		return &ReadingReference{Book: book, Chapters: before, Verses: after}
	}
	return &ReadingReference{Book: book, Chapters: reference, Verses: "all"}
}

// SecondReading is either a reading reference or the literal sentinel "none".
// It is never null in the JSON artifact; consumers branch on IsNone.
type SecondReading struct {
	Reading *ReadingReference
}

func (s SecondReading) IsNone() bool {
	return s.Reading == nil
}

func (s SecondReading) MarshalJSON() ([]byte, error) {
	if s.Reading == nil {
		return json.Marshal("none")
	}
	return json.Marshal(s.Reading)
}

func (s *SecondReading) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var sentinel string
		if err := json.Unmarshal(data, &sentinel); err != nil {
			return err
		}
		if sentinel != "none" {
			return fmt.Errorf("unexpected second_reading value %q", sentinel)
		}
		s.Reading = nil
		return nil
	}

	var ref ReadingReference
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	s.Reading = &ref
	return nil
}

// DayRecord is one day's reading assignment within a yearly plan.
type DayRecord struct {
	Day           int               `json:"day"`
	Period        string            `json:"period"`
	FirstReading  *ReadingReference `json:"first_reading"`
	SecondReading SecondReading     `json:"second_reading"`
	Poem          *ReadingReference `json:"poem"`
}
