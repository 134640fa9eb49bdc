package service

import (
	"strings"

	"procurement-authoring-api/internal/entity"

	"github.com/google/uuid"
)

// parseVendorContacts turns a comma-delimited payload (header row first)
// into contact records. Column positions are resolved by fuzzy containment
// on the lower-cased header: a "name" column that is not a business name,
// a "business"/"company" column, and an "email" column. Rows missing any
// of the three values are dropped silently; a payload that yields no valid
// rows at all is reported as ErrNoValidContacts.
func parseVendorContacts(payload string) ([]entity.VendorContact, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(payload, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyImportPayload
	}

	header := strings.Split(lines[0], ",")
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	nameIdx, businessIdx, emailIdx := -1, -1, -1
	for i, column := range header {
		switch {
		case strings.Contains(column, "name") && !strings.Contains(column, "business") && nameIdx == -1:
			nameIdx = i
		case (strings.Contains(column, "business") || strings.Contains(column, "company")) && businessIdx == -1:
			businessIdx = i
		case strings.Contains(column, "email") && emailIdx == -1:
			emailIdx = i
		}
	}
	if nameIdx == -1 || businessIdx == -1 || emailIdx == -1 {
		return nil, ErrMalformedHeader
	}

	contacts := make([]entity.VendorContact, 0)
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		name := fieldAt(fields, nameIdx)
		businessName := fieldAt(fields, businessIdx)
		email := fieldAt(fields, emailIdx)
		if name == "" || businessName == "" || email == "" {
			continue
		}

		contacts = append(contacts, entity.VendorContact{
			Id:           uuid.New(),
			Name:         name,
			BusinessName: businessName,
			Email:        email,
		})
	}
	if len(contacts) == 0 {
		return nil, ErrNoValidContacts
	}

	return contacts, nil
}

func fieldAt(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}

	return fields[idx]
}
