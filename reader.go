package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/linkedin/goavro/v2"
)

// readJSONLFile reads one newline-delimited JSON file, flattens each event
// and returns the records together with the set of field names seen. Lines
// that fail to decode are skipped with a warning; blank lines are ignored.
func readJSONLFile(path string) ([]map[string]any, map[string]bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var records []map[string]any
	fields := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	// Increase buffer size for long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping invalid JSON at line %d: %v\n", lineNum, err)
			continue
		}

		flattened := flattenRecord(record)
		records = append(records, flattened)
		for k := range flattened {
			fields[k] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, fields, nil
}

// readAvroFile reads a raw Firehose Avro OCF dump. Each OCF record wraps one
// JSON event in a "message" bytes field; records whose payload is missing or
// not a JSON object are skipped with a warning, like bad JSONL lines.
func readAvroFile(path string) ([]map[string]any, map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ocfReader, err := goavro.NewOCFReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("opening OCF reader for %s: %w", path, err)
	}

	var records []map[string]any
	fields := make(map[string]bool)

	recordNum := 0
	for ocfReader.Scan() {
		recordNum++
		datum, err := ocfReader.Read()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable Avro record %d: %v\n", recordNum, err)
			continue
		}

		datumMap, ok := datum.(map[string]any)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: skipping Avro record %d: not a record (%T)\n", recordNum, datum)
			continue
		}
		message, ok := datumMap["message"].([]byte)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: skipping Avro record %d: message field is not bytes (%T)\n", recordNum, datumMap["message"])
			continue
		}

		var record map[string]any
		if err := json.Unmarshal(message, &record); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping invalid JSON in Avro record %d: %v\n", recordNum, err)
			continue
		}

		flattened := flattenRecord(record)
		records = append(records, flattened)
		for k := range flattened {
			fields[k] = true
		}
	}
	if err := ocfReader.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating OCF records in %s: %w", path, err)
	}

	return records, fields, nil
}
