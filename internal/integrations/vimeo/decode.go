package vimeo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/elliotchance/phpserialize"
	"github.com/vlatan/video-helper/internal/models"
)

// decodePHP decodes a PHP serialized list of records
func decodePHP(data []byte) ([]models.VimeoRecord, error) {

	list, err := phpserialize.UnmarshalAssociativeArray(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PHP response; %w", err)
	}

	// Keep the order of the array indexes
	type entry struct {
		index int
		value any
	}

	entries := make([]entry, 0, len(list))
	for k, v := range list {
		index, err := strconv.Atoi(formatField(k))
		if err != nil {
			return nil, fmt.Errorf("failed to decode PHP response; non numeric index %v", k)
		}
		entries = append(entries, entry{index, v})
	}

	slices.SortFunc(entries, func(a, b entry) int { return a.index - b.index })

	records := make([]models.VimeoRecord, 0, len(entries))
	for _, e := range entries {
		fields, ok := e.value.(map[any]any)
		if !ok {
			return nil, fmt.Errorf("failed to decode PHP response; record %d is %T", e.index, e.value)
		}

		record := make(models.VimeoRecord, len(fields))
		for k, v := range fields {
			record[formatField(k)] = formatField(v)
		}
		records = append(records, record)
	}

	return records, nil
}

// decodeJSON decodes a JSON list of records
func decodeJSON(data []byte) ([]models.VimeoRecord, error) {

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response; %w", err)
	}

	records := make([]models.VimeoRecord, 0, len(raw))
	for _, fields := range raw {
		record := make(models.VimeoRecord, len(fields))
		for k, v := range fields {
			record[k] = formatField(v)
		}
		records = append(records, record)
	}

	return records, nil
}

// formatField formats a decoded value as a string
func formatField(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case json.Number:
		return val.String()
	default:
		return models.FormatValue(val)
	}
}
