package export

import (
	"fmt"
	"io"

	"github.com/Veraticus/unibudget/internal/ledger"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetExpenses = "Expenses"
	SheetNotes    = "Notes"
	SheetSummary  = "Summary"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

type workbookStyles struct {
	header  int
	data    int
	summary int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2563EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return s, err
	}

	s.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return s, err
	}

	s.summary, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FDE68A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	return s, err
}

// WriteXLSX writes a workbook with an Expenses sheet (plus a total row), a
// Notes sheet and a Summary sheet holding the balance, the 7-day series and
// the category breakdown.
func WriteXLSX(w io.Writer, data Data, progress Progress) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetExpenses); err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	for _, name := range []string{SheetNotes, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	if err := writeExpenseSheet(f, styles, data, progress); err != nil {
		return err
	}
	if err := writeNoteSheet(f, styles, data, progress); err != nil {
		return err
	}
	if err := writeSummarySheet(f, styles, data.Derived); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string, widths []float64) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func writeExpenseSheet(f *excelize.File, styles workbookStyles, data Data, progress Progress) error {
	sheet := SheetExpenses
	if err := writeHeader(f, sheet, styles.header,
		[]string{"ID", "Amount", "Category", "Time"},
		[]float64{30, 12, 16, 20}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	loc := data.location()
	var total float64
	for i, e := range data.Expenses {
		row := i + 2
		values := []any{e.ID, e.Amount, string(e.Category), e.Time().In(loc).Format(TimeLayout)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write expense %s: %w", e.ID, err)
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), styles.data); err != nil {
			return err
		}
		total += e.Amount
		if err := tick(progress); err != nil {
			return err
		}
	}

	summaryRow := len(data.Expenses) + 2
	cells := []any{"Total", total, fmt.Sprintf("%d records", len(data.Expenses))}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", summaryRow), &cells); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}
	if err := f.MergeCell(sheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("D%d", summaryRow)); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow), styles.summary)
}

func writeNoteSheet(f *excelize.File, styles workbookStyles, data Data, progress Progress) error {
	sheet := SheetNotes
	if err := writeHeader(f, sheet, styles.header,
		[]string{"ID", "Title", "Content", "Time"},
		[]float64{30, 24, 60, 20}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	loc := data.location()
	for i, n := range data.Notes {
		row := i + 2
		values := []any{n.ID, n.Title, n.Content, n.Time().In(loc).Format(TimeLayout)}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write note %s: %w", n.ID, err)
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), styles.data); err != nil {
			return err
		}
		if err := tick(progress); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, styles workbookStyles, d ledger.Derived) error {
	sheet := SheetSummary
	if err := writeHeader(f, sheet, styles.header,
		[]string{"Metric", "Value"},
		[]float64{24, 16}); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	rows := [][]any{
		{"Weekly limit", d.Limit},
		{"Total spent", d.TotalSpent},
		{"Remaining", d.Remaining},
		{"Used %", d.Percentage},
		{"Over budget", d.IsOverBudget},
		{"Last 7 days", d.WeeklyTotal},
		{},
		{"Day", "Spent"},
	}
	for _, b := range d.DailySeries {
		rows = append(rows, []any{b.Start.Format("Mon 2006-01-02"), b.Amount})
	}
	rows = append(rows, []any{}, []any{"Category", "Spent", "Share %"})
	for _, share := range d.CategoryBreakdown {
		rows = append(rows, []any{string(share.Category), share.Amount, share.Percent})
	}

	for i, values := range rows {
		row := i + 2
		if len(values) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", row, err)
		}
		if label, ok := values[0].(string); ok && (label == "Day" || label == "Category") {
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), styles.summary); err != nil {
				return err
			}
		}
	}
	return nil
}
