package csvparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/erikamanning/poker-planning/models"
)

// Column aliases accepted for the two fields of a work-item export. Jira
// exports vary between "Issue key" and "Key" depending on version.
var (
	keyColumns     = []string{"Issue key", "Key", "Issue Key", "key"}
	summaryColumns = []string{"Summary", "Title", "summary", "title"}
)

// ParseTickets reads a work-item CSV export and returns the (key, summary)
// pairs in file order. Rows missing either field are skipped; all values
// are trimmed. The header row is required.
func ParseTickets(content string) ([]models.ParsedTicket, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	keyIdx := findColumn(header, keyColumns)
	summaryIdx := findColumn(header, summaryColumns)
	if keyIdx < 0 || summaryIdx < 0 {
		return nil, nil
	}

	var tickets []models.ParsedTicket
	for _, row := range records[1:] {
		if keyIdx >= len(row) || summaryIdx >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[keyIdx])
		summary := strings.TrimSpace(row[summaryIdx])
		if key == "" || summary == "" {
			continue
		}
		tickets = append(tickets, models.ParsedTicket{Key: key, Summary: summary})
	}

	return tickets, nil
}

// Validate checks that the content yields at least one ticket. The returned
// error message is meant to be shown to the submitting user as-is.
func Validate(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("CSV content is empty")
	}

	tickets, err := ParseTickets(content)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		return errors.New(`no valid tickets found. Make sure your CSV has "Issue key" and "Summary" columns`)
	}
	return nil
}

// findColumn returns the index of the first header cell matching any of the
// given names, or -1.
func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, cell := range header {
			if strings.TrimSpace(cell) == name {
				return i
			}
		}
	}
	return -1
}
