package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// writeCSV writes one header row plus one row per record, in record order.
// Fields missing from a record come out empty; record keys not listed in
// fieldnames are dropped.
func writeCSV(records []map[string]any, fieldnames []string, path string) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer csvFile.Close()

	writer := csv.NewWriter(csvFile)

	if err := writer.Write(fieldnames); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(fieldnames))
	for _, record := range records {
		for i, field := range fieldnames {
			if v, ok := record[field]; ok {
				row[i] = formatValue(v)
			} else {
				row[i] = ""
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case map[string]any, []any:
		// Nested structures are serialized back to JSON
		jsonBytes, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(jsonBytes)
	default:
		return fmt.Sprintf("%v", v)
	}
}
