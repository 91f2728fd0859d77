package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestCSV is a test helper that writes raw CSV content to a temp file
func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rooms.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeTestCSV(t, "locationId,name\n123,Room A\n456,Room B\n")

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Rows, 2)

	assert.Equal(t, 123, f.Rows[0].LocationID)
	assert.Equal(t, "Room A", f.Rows[0].Name)
	assert.NoError(t, f.Rows[0].Err)
	assert.Equal(t, 456, f.Rows[1].LocationID)
	assert.Equal(t, "Room B", f.Rows[1].Name)
}

func TestLoadColumnOrderDoesNotMatter(t *testing.T) {
	path := writeTestCSV(t, "name,building,locationId\nRoom A,HQ,123\n")

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Rows, 1)
	assert.Equal(t, 123, f.Rows[0].LocationID)
	assert.Equal(t, "Room A", f.Rows[0].Name)
	assert.Equal(t, []string{"Room A", "HQ", "123"}, f.Rows[0].Record)
}

func TestLoadMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing locationId",
			content: "name\nRoom A\n",
			wantErr: "locationId",
		},
		{
			name:    "missing name",
			content: "locationId\n123\n",
			wantErr: "name",
		},
		{
			name:    "wrong case",
			content: "LocationID,Name\n123,Room A\n",
			wantErr: "missing required columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestCSV(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEmptyAndHeaderOnly(t *testing.T) {
	path := writeTestCSV(t, "")
	_, err := Load(path)
	assert.Error(t, err, "empty file must fail to load")

	path = writeTestCSV(t, "locationId,name\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadRowValidation(t *testing.T) {
	path := writeTestCSV(t, "locationId,name\nabc,Room A\n123,\n,Room C\n456,Room D\n")

	f, err := Load(path)
	require.NoError(t, err, "row-level problems must not be load errors")
	require.Len(t, f.Rows, 4)

	assert.Error(t, f.Rows[0].Err)
	assert.Contains(t, f.Rows[0].Err.Error(), "invalid locationId 'abc'")
	assert.Error(t, f.Rows[1].Err)
	assert.Contains(t, f.Rows[1].Err.Error(), "name is empty")
	assert.Error(t, f.Rows[2].Err)
	assert.NoError(t, f.Rows[3].Err)
}

func TestLoadExistingDEC(t *testing.T) {
	path := writeTestCSV(t, "locationId,name,DEC\n123,Room A,EXIST1\n456,Room B,\n")

	f, err := Load(path)
	require.NoError(t, err)
	assert.True(t, f.Rows[0].Provisioned())
	assert.Equal(t, "EXIST1", f.Rows[0].DEC)
	assert.False(t, f.Rows[1].Provisioned())
}

func TestWriteAppendsDECColumn(t *testing.T) {
	path := writeTestCSV(t, "locationId,name,building\n123,Room A,HQ\n456,Room B,East\n")

	f, err := Load(path)
	require.NoError(t, err)

	f.SetDEC(0, "AAA111")
	// Row 1 failed: DEC stays empty.
	require.NoError(t, f.Write())

	records := readAll(t, path)
	assert.Equal(t, []string{"locationId", "name", "building", "DEC"}, records[0])
	assert.Equal(t, []string{"123", "Room A", "HQ", "AAA111"}, records[1])
	assert.Equal(t, []string{"456", "Room B", "East", ""}, records[2])
}

func TestWriteReusesExistingDECColumn(t *testing.T) {
	path := writeTestCSV(t, "DEC,locationId,name\nEXIST1,123,Room A\n,456,Room B\n")

	f, err := Load(path)
	require.NoError(t, err)

	f.SetDEC(1, "BBB222")
	require.NoError(t, f.Write())

	records := readAll(t, path)
	assert.Equal(t, []string{"DEC", "locationId", "name"}, records[0], "DEC column must not be duplicated")
	assert.Equal(t, "EXIST1", records[1][0])
	assert.Equal(t, "BBB222", records[2][0])
}

func TestWriteRoundTripPreservesRows(t *testing.T) {
	// End-to-end shape: 123,Room A,AAA111 and 456,Room B,BBB222.
	path := writeTestCSV(t, "locationId,name\n123,Room A\n456,Room B\n")

	f, err := Load(path)
	require.NoError(t, err)
	f.SetDEC(0, "AAA111")
	f.SetDEC(1, "BBB222")
	require.NoError(t, f.Write())

	records := readAll(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"123", "Room A", "AAA111"}, records[1])
	assert.Equal(t, []string{"456", "Room B", "BBB222"}, records[2])
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	records, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return records
}
