package announcer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bibleinayear/biaybot/internal/plan"
)

// FormatDailyMessage renders one day record as the Markdown message body.
// The output depends only on the record and the supplied date, so repeated
// calls for the same day are byte-identical.
//
// A present second reading is appended as its JSON-level value, not as
// book/chapter text. That mirrors the upstream artifact contract; consumers
// of the message have come to rely on the structured form.
func FormatDailyMessage(record plan.DayRecord, date time.Time) (string, error) {
	if record.FirstReading == nil {
		return "", fmt.Errorf("day %d has no first reading", record.Day)
	}
	if record.Poem == nil {
		return "", fmt.Errorf("day %d has no poem reading", record.Day)
	}

	lines := []string{
		fmt.Sprintf("# Bible in a Year Day %d (%s) %s", record.Day, date.Format("January 02"), record.Period),
		"",
		"## Readings",
		"",
		"### First Reading",
		fmt.Sprintf("%s Chapter(s) %s", record.FirstReading.Book, record.FirstReading.Chapters),
	}

	if !record.SecondReading.IsNone() {
		raw, err := json.Marshal(record.SecondReading.Reading)
		if err != nil {
			return "", fmt.Errorf("failed to encode second reading for day %d: %w", record.Day, err)
		}
		lines = append(lines,
			"",
			"### Second Reading",
			string(raw),
		)
	}

	lines = append(lines,
		"",
		"### Poem",
		fmt.Sprintf("%s %s", record.Poem.Book, record.Poem.Chapters),
	)

	return strings.Join(lines, "\n"), nil
}
