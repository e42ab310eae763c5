package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads all rows. Hand-written scan lists are ragged and padded,
// so field counts are not enforced and leading spaces are dropped.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}
