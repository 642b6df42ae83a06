package spreadsheet

import (
	"fmt"

	"github.com/weeztools/weezimport/internal/domain"
	"github.com/weeztools/weezimport/pkg/logger"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrNoHeader is returned for a sheet without a header row.
var ErrNoHeader = fmt.Errorf("spreadsheet has no header row")

// Read opens the workbook's active sheet and returns one Row per line after
// the header. Headers are normalized before use as keys; cells beyond the
// header width are ignored.
func Read(path string) ([]*domain.Row, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	lines, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoHeader
	}

	headers := make([]string, len(lines[0]))
	for i, cell := range lines[0] {
		headers[i] = NormalizeHeader(cell)
	}

	rows := make([]*domain.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := domain.NewRow()
		for i, cell := range line {
			if i >= len(headers) {
				break
			}
			row.Set(headers[i], cell)
		}
		rows = append(rows, row)
	}

	logger.Get().Info("loaded spreadsheet",
		zap.String("path", path),
		zap.String("sheet", sheet),
		zap.Int("rows", len(rows)))
	return rows, nil
}
