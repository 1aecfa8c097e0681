// Package plan converts a line-oriented yearly reading plan into an ordered
// sequence of day records and persists it as the JSON artifact the announcer
// consumes.
package plan

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// poemBooks are the book names that mark a reading as the day's poem rather
// than a second reading.
var poemBooks = map[string]bool{
	"psalm":    true,
	"psalms":   true,
	"proverb":  true,
	"proverbs": true,
}

// Parse converts a reading-plan text into day records, in input order.
// Header lines (first token is not "day") set the period label for the
// records that follow; malformed day lines are logged and skipped without
// aborting the rest of the file.
func Parse(r io.Reader) ([]DayRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	log.Printf("Read %d lines from the file", len(lines))

	records := make([]DayRecord, 0, len(lines))
	currentPeriod := ""

	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)

		if strings.ToLower(parts[0]) != "day" {
			currentPeriod = line
			log.Printf("New period detected: %s", currentPeriod)
			continue
		}

		// Shortest valid shape is "Day N Book Reference".
		if len(parts) < 4 {
			log.Printf("Skipping malformed line: %s", line)
			continue
		}

		record, err := parseDayLine(parts, currentPeriod)
		if err != nil {
			log.Printf("Error processing line %q: %v", line, err)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// parseDayLine extracts one record from an already-tokenized day line. Any
// failure drops the whole line, including an incomplete trailing pair.
func parseDayLine(parts []string, period string) (DayRecord, error) {
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return DayRecord{}, fmt.Errorf("invalid day number %q: %w", parts[1], err)
	}

	record := DayRecord{
		Day:          day,
		Period:       period,
		FirstReading: newReference(parts[2], parts[3]),
	}

	// Readings come in (book, reference) pairs after "Day N".
	i := 4
	if i < len(parts) {
		if i+1 >= len(parts) {
			return DayRecord{}, fmt.Errorf("reading %q is missing its reference", parts[i])
		}

		if poemBooks[strings.ToLower(parts[i])] {
			record.Poem = newReference(parts[i], parts[i+1])
			return record, nil
		}

		record.SecondReading = SecondReading{Reading: newReference(parts[i], parts[i+1])}

		// Anything after a second reading must be the poem pair.
		if i+2 < len(parts) {
			if i+3 >= len(parts) {
				return DayRecord{}, fmt.Errorf("poem %q is missing its reference", parts[i+2])
			}
			record.Poem = newReference(parts[i+2], parts[i+3])
		}
	}

	return record, nil
}
