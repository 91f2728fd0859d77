// Package csvfile implements reading, validating, and rewriting the room
// CSV files that drive bulk room creation.
//
// A room file must carry a header row with at least the locationId and name
// columns (case-sensitive, any column order). Extra columns are ignored for
// submission but preserved on rewrite. Each data row maps to exactly one
// submission outcome: rows that fail validation are kept in place with a
// recorded row error so the output file and console summary stay aligned
// 1:1 with the input rows, and no network call is ever made for them.
//
// After a batch completes the same file is rewritten in place with a DEC
// column (appended if absent) holding the enrollment code for successful
// rows and an empty value for failed ones.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Required and managed column names. Column matching is case-sensitive.
const (
	ColumnLocationID = "locationId"
	ColumnName       = "name"
	ColumnDEC        = "DEC"
)

// Row is one CSV data row. Record holds the original fields in file order
// so extra columns survive a rewrite untouched.
type Row struct {
	Record     []string
	LocationID int
	Name       string
	DEC        string // existing or newly assigned enrollment code
	Err        error  // validation error; set when the row must not be submitted
}

// Provisioned reports whether the row already carried an enrollment code
// when the file was loaded. Such rows are skipped, not re-submitted.
func (r Row) Provisioned() bool {
	return r.Err == nil && r.DEC != ""
}

// File is a loaded room CSV file plus the bookkeeping needed to rewrite it.
type File struct {
	Path   string
	Header []string
	Rows   []Row

	locIdx  int
	nameIdx int
	decIdx  int // -1 when the DEC column is absent from the input
}

// Load reads and validates a room CSV file. The header must contain the
// locationId and name columns; a missing column or an empty file is a load
// error. Row-level problems (non-numeric locationId, empty name) are not
// load errors: they are recorded on the row so the batch can report them
// without dropping the row or calling the network.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty or malformed")
	}

	f := &File{
		Path:   path,
		Header: records[0],
		locIdx: -1, nameIdx: -1, decIdx: -1,
	}
	for i, col := range f.Header {
		switch col {
		case ColumnLocationID:
			f.locIdx = i
		case ColumnName:
			f.nameIdx = i
		case ColumnDEC:
			f.decIdx = i
		}
	}

	var missing []string
	if f.locIdx == -1 {
		missing = append(missing, ColumnLocationID)
	}
	if f.nameIdx == -1 {
		missing = append(missing, ColumnName)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV is missing required columns: %s", strings.Join(missing, ", "))
	}

	if len(records) == 1 {
		return nil, fmt.Errorf("CSV file contains no data rows")
	}

	for _, record := range records[1:] {
		f.Rows = append(f.Rows, f.parseRow(record))
	}

	return f, nil
}

// parseRow validates one data row. locationId must parse as an integer and
// name must be non-empty after trimming.
func (f *File) parseRow(record []string) Row {
	row := Row{Record: record}

	if f.locIdx >= len(record) || f.nameIdx >= len(record) {
		row.Err = fmt.Errorf("row has fewer fields than the header")
		return row
	}

	if f.decIdx >= 0 && f.decIdx < len(record) {
		row.DEC = strings.TrimSpace(record[f.decIdx])
	}

	rawLoc := strings.TrimSpace(record[f.locIdx])
	row.Name = strings.TrimSpace(record[f.nameIdx])

	if rawLoc == "" {
		row.Err = fmt.Errorf("locationId is empty")
		return row
	}
	locationID, err := strconv.Atoi(rawLoc)
	if err != nil {
		row.Err = fmt.Errorf("invalid locationId '%s' - must be a number", rawLoc)
		return row
	}
	row.LocationID = locationID

	if row.Name == "" {
		row.Err = fmt.Errorf("name is empty")
	}
	return row
}

// SetDEC assigns an enrollment code to the row at the given index. Called
// for rows that succeeded during submission; failed rows keep an empty DEC.
func (f *File) SetDEC(i int, dec string) {
	f.Rows[i].DEC = dec
}

// Write rewrites the file in place, appending a DEC column when the input
// did not have one. Row order and extra columns are preserved; only the
// DEC field changes.
func (f *File) Write() error {
	fh, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to rewrite CSV file: %w", err)
	}
	defer fh.Close()

	writer := csv.NewWriter(fh)

	header := f.Header
	appendDEC := f.decIdx == -1
	if appendDEC {
		header = append(append([]string{}, f.Header...), ColumnDEC)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range f.Rows {
		record := append([]string{}, row.Record...)
		// Pad short rows so the DEC field lands in the right column.
		for len(record) < len(f.Header) {
			record = append(record, "")
		}
		if appendDEC {
			record = append(record, row.DEC)
		} else {
			record[f.decIdx] = row.DEC
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}
