package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Veraticus/unibudget/internal/model"
)

// csvHeader names the columns written by WriteCSV.
var csvHeader = []string{"ID", "Amount", "Category", "Time"}

// WriteCSV writes one row per expense, in the given order, with a UTF-8 BOM
// so spreadsheet applications detect the encoding of the category icons.
func WriteCSV(w io.Writer, expenses []model.Expense, loc *time.Location, progress Progress) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range expenses {
		row := []string{
			e.ID,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			string(e.Category),
			e.Time().In(loc).Format(TimeLayout),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write expense %s: %w", e.ID, err)
		}
		if err := tick(progress); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
