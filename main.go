package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// processInput reads a single JSONL or Avro file, or every *.json and *.avro
// file in a directory in name order, and returns the combined records and
// field set. Input-level problems (no matching files, not a file or
// directory) are reported on stderr and yield empty results; the caller
// decides whether that is fatal.
func processInput(inputPath string) ([]map[string]any, map[string]bool, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", inputPath, err)
	}

	var inputFiles []string
	if info.IsDir() {
		jsonFiles, err := filepath.Glob(filepath.Join(inputPath, "*.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("listing %s: %w", inputPath, err)
		}
		avroFiles, err := filepath.Glob(filepath.Join(inputPath, "*.avro"))
		if err != nil {
			return nil, nil, fmt.Errorf("listing %s: %w", inputPath, err)
		}
		inputFiles = append(jsonFiles, avroFiles...)
		sort.Strings(inputFiles)
		if len(inputFiles) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no .json or .avro files found in %s\n", inputPath)
			return nil, nil, nil
		}
	} else if info.Mode().IsRegular() {
		inputFiles = []string{inputPath}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s is neither a file nor directory\n", inputPath)
		return nil, nil, nil
	}

	var allRecords []map[string]any
	allFields := make(map[string]bool)

	for _, file := range inputFiles {
		var records []map[string]any
		var fields map[string]bool
		var err error
		if strings.EqualFold(filepath.Ext(file), ".avro") {
			records, fields, err = readAvroFile(file)
		} else {
			records, fields, err = readJSONLFile(file)
		}
		if err != nil {
			return nil, nil, err
		}

		allRecords = append(allRecords, records...)
		for k := range fields {
			allFields[k] = true
		}
		fmt.Printf("Processed %d records from %s\n", len(records), filepath.Base(file))
	}

	return allRecords, allFields, nil
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Println("Usage: jsonl2csv <input.json|input.avro|input_dir> <output.csv>")
		fmt.Println("\nExamples:")
		fmt.Println("  jsonl2csv data.json output.csv")
		fmt.Println("  jsonl2csv ./raw_data/ combined.csv")
		return 1
	}

	inputPath, outputPath := args[0], args[1]

	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input path does not exist: %s\n", inputPath)
		return 1
	}

	fmt.Printf("Processing: %s\n", inputPath)
	records, fields, err := processInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no records found")
		return 1
	}

	fieldnames := fieldOrder(fields)

	if err := writeCSV(records, fieldnames, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	attrColumns := 0
	for _, f := range fieldnames {
		if strings.HasPrefix(f, "attr_") {
			attrColumns++
		}
	}

	fmt.Printf("\nSuccessfully wrote %d records to %s\n", len(records), outputPath)
	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total records: %d\n", len(records))
	fmt.Printf("  Total columns: %d\n", len(fieldnames))
	fmt.Printf("  Attribute columns: %d\n", attrColumns)

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
