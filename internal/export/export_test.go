package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var exportNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

type countingProgress struct {
	n int
}

func (c *countingProgress) Add(num int) error {
	c.n += num
	return nil
}

func testData() Data {
	expenses := []model.Expense{
		{ID: "e2", Amount: 250.5, Category: model.CategoryLoan, Timestamp: exportNow.Add(-time.Hour).UnixMilli()},
		{ID: "e1", Amount: 1000, Category: model.CategoryLunch, Timestamp: exportNow.Add(-26 * time.Hour).UnixMilli()},
	}
	notes := []model.Note{
		{ID: "n1", Title: "Rent", Content: "due, Friday", Timestamp: exportNow.UnixMilli()},
	}
	return Data{
		Location: time.UTC,
		Expenses: expenses,
		Notes:    notes,
		Derived:  ledger.Derive(expenses, 3500, exportNow),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "csv", want: FormatCSV},
		{input: " XLSX ", want: FormatXLSX},
		{input: "pdf", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	data := testData()
	progress := &countingProgress{}
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, FormatCSV, data, progress))
	assert.Equal(t, data.Records(FormatCSV), progress.n)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"))

	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Amount", "Category", "Time"},
		{"e2", "250.50", "Loan to other", "2024-06-12 14:00:00"},
		{"e1", "1000.00", "Lunch", "2024-06-11 13:00:00"},
	}, rows)
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, time.UTC, nil))

	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	data := testData()
	progress := &countingProgress{}
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, FormatXLSX, data, progress))
	assert.Equal(t, 3, progress.n)
	assert.Equal(t, data.Records(FormatXLSX), progress.n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetExpenses, SheetNotes, SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(SheetExpenses)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"ID", "Amount", "Category", "Time"}, rows[0])
	assert.Equal(t, "e2", rows[1][0])
	assert.Equal(t, "Loan to other", rows[1][2])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "1250.5", rows[3][1])

	title, err := f.GetCellValue(SheetNotes, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Rent", title)

	limit, err := f.GetCellValue(SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3500", limit)

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	var categories []string
	for _, row := range summary {
		if len(row) == 3 && row[0] != "Category" {
			categories = append(categories, row[0])
		}
	}
	assert.Len(t, categories, len(model.Categories()))
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("pdf"), testData(), nil)
	assert.ErrorIs(t, err, common.ErrUnknownFormat)
}
