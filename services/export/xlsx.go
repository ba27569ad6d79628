package exportsvc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/housepoints/core/entry"
)

const (
	scoreboardSheet = "Scoreboard"
	defaultSheet    = "Sheet1"
)

var scoreboardHeader = []interface{}{"Rank", "House", "Colour", "Points", "Entries"}

// WriteScoreboard writes board as a single sheet workbook to w.
func WriteScoreboard(w io.Writer, board entry.Scoreboard) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, scoreboardSheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	title := []interface{}{"Period", string(board.Period), "From", board.Range.Start.String(), "To", board.Range.End.String()}
	if err := f.SetSheetRow(scoreboardSheet, "A1", &title); err != nil {
		return errors.Wrap(err, "writing title row")
	}
	if err := f.SetSheetRow(scoreboardSheet, "A3", &scoreboardHeader); err != nil {
		return errors.Wrap(err, "writing header row")
	}

	for i, h := range board.Houses {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, h.Name, h.Colour, h.Points, h.Entries}
		if err = f.SetSheetRow(scoreboardSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing row %d", i+1)
		}
	}

	if err := f.SetColWidth(scoreboardSheet, "B", "B", 24); err != nil {
		return errors.Wrap(err, "sizing columns")
	}
	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
