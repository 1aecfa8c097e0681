package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []DayRecord
	}{
		{
			name:  "Should inherit period from header line",
			input: "Law and History\nDay 1 Genesis 1:3 Psalm 1\n",
			want: []DayRecord{
				{
					Day:           1,
					Period:        "Law and History",
					FirstReading:  &ReadingReference{Book: "Genesis", Chapters: "1", Verses: "3"},
					SecondReading: SecondReading{},
					Poem:          &ReadingReference{Book: "Psalm", Chapters: "1", Verses: "all"},
				},
			},
		},
		{
			name:  "Should parse second reading and poem pairs",
			input: "Day 5 Exodus 2 Matthew 3 Proverbs 4",
			want: []DayRecord{
				{
					Day:           5,
					Period:        "",
					FirstReading:  &ReadingReference{Book: "Exodus", Chapters: "2", Verses: "all"},
					SecondReading: SecondReading{Reading: &ReadingReference{Book: "Matthew", Chapters: "3", Verses: "all"}},
					Poem:          &ReadingReference{Book: "Proverbs", Chapters: "4", Verses: "all"},
				},
			},
		},
		{
			name:  "Should split colon reference into chapters and verses",
			input: "Day 12 John 3:16 Luke 2:1 Psalms 23:1",
			want: []DayRecord{
				{
					Day:           12,
					FirstReading:  &ReadingReference{Book: "John", Chapters: "3", Verses: "16"},
					SecondReading: SecondReading{Reading: &ReadingReference{Book: "Luke", Chapters: "2", Verses: "1"}},
					Poem:          &ReadingReference{Book: "Psalms", Chapters: "23", Verses: "1"},
				},
			},
		},
		{
			name:  "Should leave second reading as none when only first reading present",
			input: "Day 3 Leviticus 10",
			want: []DayRecord{
				{
					Day:           3,
					FirstReading:  &ReadingReference{Book: "Leviticus", Chapters: "10", Verses: "all"},
					SecondReading: SecondReading{},
				},
			},
		},
		{
			name:  "Should update period on each header line",
			input: "Law and History\nDay 1 Genesis 1 Psalm 1\nProphets\nDay 200 Isaiah 5 Psalm 90\n",
			want: []DayRecord{
				{
					Day:          1,
					Period:       "Law and History",
					FirstReading: &ReadingReference{Book: "Genesis", Chapters: "1", Verses: "all"},
					Poem:         &ReadingReference{Book: "Psalm", Chapters: "1", Verses: "all"},
				},
				{
					Day:          200,
					Period:       "Prophets",
					FirstReading: &ReadingReference{Book: "Isaiah", Chapters: "5", Verses: "all"},
					Poem:         &ReadingReference{Book: "Psalm", Chapters: "90", Verses: "all"},
				},
			},
		},
		{
			name:  "Should skip blank lines and collapse repeated whitespace",
			input: "\n   \nDay   7    Numbers   4:1   Proverbs   8\n\n",
			want: []DayRecord{
				{
					Day:          7,
					FirstReading: &ReadingReference{Book: "Numbers", Chapters: "4", Verses: "1"},
					Poem:         &ReadingReference{Book: "Proverbs", Chapters: "8", Verses: "all"},
				},
			},
		},
		{
			name:  "Should skip day line with fewer than four tokens",
			input: "Day 9 Genesis\nDay 10 Exodus 1",
			want: []DayRecord{
				{
					Day:          10,
					FirstReading: &ReadingReference{Book: "Exodus", Chapters: "1", Verses: "all"},
				},
			},
		},
		{
			name:  "Should skip day line with non-numeric day token",
			input: "Day one Genesis 1\nDay 2 Genesis 2",
			want: []DayRecord{
				{
					Day:          2,
					FirstReading: &ReadingReference{Book: "Genesis", Chapters: "2", Verses: "all"},
				},
			},
		},
		{
			name:  "Should drop whole line when a reading pair is incomplete",
			input: "Day 4 Genesis 8 Matthew\nDay 5 Genesis 9 Matthew 2 Proverbs\nDay 6 Genesis 10",
			want: []DayRecord{
				{
					Day:          6,
					FirstReading: &ReadingReference{Book: "Genesis", Chapters: "10", Verses: "all"},
				},
			},
		},
		{
			name:  "Should keep input order even when day numbers are not ascending",
			input: "Day 20 Ruth 1\nDay 3 Judges 2",
			want: []DayRecord{
				{Day: 20, FirstReading: &ReadingReference{Book: "Ruth", Chapters: "1", Verses: "all"}},
				{Day: 3, FirstReading: &ReadingReference{Book: "Judges", Chapters: "2", Verses: "all"}},
			},
		},
		{
			name:  "Should treat Day token case-insensitively",
			input: "DAY 11 Joshua 6",
			want: []DayRecord{
				{Day: 11, FirstReading: &ReadingReference{Book: "Joshua", Chapters: "6", Verses: "all"}},
			},
		},
		{
			name:  "Should return empty sequence for empty input",
			input: "",
			want:  []DayRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_PoemBookDetection(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPoem   *ReadingReference
		wantSecond SecondReading
	}{
		{
			name:       "Psalm after first reading becomes poem",
			input:      "Day 1 Genesis 1 Psalm 5",
			wantPoem:   &ReadingReference{Book: "Psalm", Chapters: "5", Verses: "all"},
			wantSecond: SecondReading{},
		},
		{
			name:       "Psalms after first reading becomes poem",
			input:      "Day 1 Genesis 1 Psalms 5",
			wantPoem:   &ReadingReference{Book: "Psalms", Chapters: "5", Verses: "all"},
			wantSecond: SecondReading{},
		},
		{
			name:       "Proverb after first reading becomes poem",
			input:      "Day 1 Genesis 1 Proverb 5",
			wantPoem:   &ReadingReference{Book: "Proverb", Chapters: "5", Verses: "all"},
			wantSecond: SecondReading{},
		},
		{
			name:       "Proverbs after first reading becomes poem",
			input:      "Day 1 Genesis 1 proverbs 5",
			wantPoem:   &ReadingReference{Book: "proverbs", Chapters: "5", Verses: "all"},
			wantSecond: SecondReading{},
		},
		{
			name:       "Non-poem book after first reading becomes second reading",
			input:      "Day 1 Genesis 1 Matthew 5",
			wantPoem:   nil,
			wantSecond: SecondReading{Reading: &ReadingReference{Book: "Matthew", Chapters: "5", Verses: "all"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantPoem, got[0].Poem)
			assert.Equal(t, tt.wantSecond, got[0].SecondReading)
		})
	}
}

// Parsing is total over well-formed day lines: a numeric day and complete
// reading pairs always yield a record, whatever the books are.
func TestParse_Totality(t *testing.T) {
	input := strings.Join([]string{
		"Day 1 A 1",
		"Day 2 B 2:3 C 4",
		"Day 3 D 5 E 6:7 F 8",
	}, "\n")

	got, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	for _, rec := range got {
		assert.NotNil(t, rec.FirstReading)
	}
}
