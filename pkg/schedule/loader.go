package schedule

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a serialized schedule document and validates its structure.
// When validation issues are found, the returned error is of type
// ValidationErrors and the partially parsed document is still returned so
// callers can keep inspecting it.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read file: %w", err)
	}
	return Decode(data)
}

// Decode parses schedule bytes. See Load.
func Decode(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, errors.New("schedule is empty")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var (
		doc      Document
		errs     ValidationErrors
		section  = 0
		line     = 0
		lastTime = -1.0
	)

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Document{}, fmt.Errorf("parse schedule: %w", err)
		}
		line++

		if len(record) == 1 && record[0] == Delimiter {
			section++
			lastTime = -1.0
			if section >= len(Categories) {
				errs = append(errs, ValidationError{Line: line, Message: "too many sections"})
				return doc, errs
			}
			continue
		}

		if len(record) != 3 {
			errs = append(errs, ValidationError{Line: line, Message: fmt.Sprintf("expected 3 fields, got %d", len(record))})
			continue
		}

		expected := Categories[section]

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			errs = append(errs, ValidationError{Line: line, Field: "time", Message: "must be a number"})
			continue
		}
		if t < lastTime {
			errs = append(errs, ValidationError{Line: line, Field: "time", Message: "decreases within section"})
		}
		lastTime = t

		if Category(record[1]) != expected {
			errs = append(errs, ValidationError{Line: line, Field: "category", Message: fmt.Sprintf("expected %s, got %s", expected, record[1])})
			continue
		}
		if record[2] == "" {
			errs = append(errs, ValidationError{Line: line, Field: "value", Message: "value is required"})
			continue
		}

		doc.Append(expected, Event{Time: t, Value: record[2]})
	}

	if section != len(Categories)-1 {
		errs = append(errs, ValidationError{Line: line, Message: fmt.Sprintf("expected %d sections, got %d", len(Categories), section+1)})
	}

	if len(errs) > 0 {
		return doc, errs
	}
	return doc, nil
}
