package handlers

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var codeColumns = []string{"code", "codigo", "código"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCodesCSV parses a scanner export into the list of codes in file order.
// The code column is found by name (code, codigo or código, case-insensitive).
// A file with a single unnamed column is read as codes from the first row.
// Blank rows are skipped and their 1-based row numbers returned. A leading
// UTF-8 byte order mark, as spreadsheet exports write, is ignored.
func ParseCodesCSV(r io.Reader) ([]string, []int, error) {
	br := bufio.NewReader(r)
	if prefix, _ := br.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := -1
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for _, want := range codeColumns {
			if name == want {
				colIdx = i
			}
		}
	}

	var codes []string
	var blankRows []int
	rowNum := 1

	if colIdx == -1 {
		if len(header) != 1 {
			return nil, nil, fmt.Errorf("missing required column: code")
		}
		// headerless single-column export
		colIdx = 0
		if v := strings.TrimSpace(header[0]); v != "" {
			codes = append(codes, v)
		} else {
			blankRows = append(blankRows, rowNum)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		if colIdx >= len(record) {
			blankRows = append(blankRows, rowNum)
			continue
		}
		code := strings.TrimSpace(record[colIdx])
		if code == "" {
			blankRows = append(blankRows, rowNum)
			continue
		}
		codes = append(codes, code)
	}

	return codes, blankRows, nil
}
