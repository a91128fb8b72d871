// Package export writes the tracker's expenses and notes to CSV or XLSX
// files.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/unibudget/internal/common"
	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/Veraticus/unibudget/internal/model"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// TimeLayout is used for every timestamp column.
const TimeLayout = "2006-01-02 15:04:05"

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownFormat, s)
	}
}

// Progress receives one tick per written record. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(num int) error
}

// Data is everything an export can contain.
type Data struct {
	Location *time.Location
	Expenses []model.Expense
	Notes    []model.Note
	Derived  ledger.Derived
}

// Records returns the number of progress ticks Write will emit for format.
func (d Data) Records(format Format) int {
	if format == FormatXLSX {
		return len(d.Expenses) + len(d.Notes)
	}
	return len(d.Expenses)
}

func (d Data) location() *time.Location {
	if d.Location == nil {
		return time.Local
	}
	return d.Location
}

// Write encodes data to w. CSV carries expenses only; XLSX adds notes and a
// summary sheet.
func Write(w io.Writer, format Format, data Data, progress Progress) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, data.Expenses, data.location(), progress)
	case FormatXLSX:
		return WriteXLSX(w, data, progress)
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownFormat, string(format))
	}
}

func tick(progress Progress) error {
	if progress == nil {
		return nil
	}
	return progress.Add(1)
}
