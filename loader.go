package certgen

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadItems reads certificate recipients from a CSV file of
// "name,email" rows. A leading header row (first cell "name",
// case-insensitive) is skipped. Fields are trimmed; records are
// deduplicated by lowercased email with the first occurrence winning.
// Rows with the wrong field count or an empty name fail the whole load:
// a malformed data file is a caller error, not a per-item one.
func LoadItems(path string) ([]CertificateItem, error) {
	f, err := os.Open(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataValidation, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s contains no records", ErrDataValidation, path)
	}

	items := make([]CertificateItem, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, record := range records {
		if i == 0 && isHeaderRow(record) {
			continue
		}

		row := i + 1
		if len(record) < 1 || len(record) > 2 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 1 or 2", ErrDataValidation, row, len(record))
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("%w: row %d has an empty name", ErrDataValidation, row)
		}

		var email string
		if len(record) == 2 {
			email = strings.TrimSpace(record[1])
		}
		if email != "" {
			key := strings.ToLower(email)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		items = append(items, CertificateItem{Name: name, Email: email})
	}

	return items, nil
}

func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name")
}
