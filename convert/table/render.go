package table

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"thesisdoc/common"
	"thesisdoc/convert/model"
	"thesisdoc/thesis"
)

// Render returns header row, data rows and optional caption of the table.
// Recoverable problems are logged and result in a single placeholder block,
// structural ones are returned to the caller. pos is 1-based position of the
// table in its section.
func Render(t *thesis.Table, pos int, log *zap.Logger) ([]model.Block, error) {
	g, err := Normalize(t)
	if err != nil {
		if errors.Is(err, ErrZeroColumns) {
			return nil, fmt.Errorf("table %q: %w", t.ID, err)
		}
		log.Warn("Unable to render table, using placeholder", zap.String("table", t.ID), zap.Error(err))
		return []model.Block{model.NewPlaceholder(Placeholder(t))}, nil
	}

	id := t.ID
	if id == "" {
		id = fmt.Sprintf("table-%d", pos)
	}

	blocks := make([]model.Block, 0, len(g.Rows)+2)
	blocks = append(blocks, model.NewRow(&model.Row{TableID: id, Header: true, Columns: g.Columns, Cells: g.Header}))
	for _, cells := range g.Rows {
		blocks = append(blocks, model.NewRow(&model.Row{TableID: id, Columns: g.Columns, Cells: cells}))
	}
	if c := caption(t); c != "" {
		blocks = append(blocks, model.NewCaption(fmt.Sprintf("Table %d: %s", Number(t, pos), c)))
	}
	return blocks, nil
}

// Number returns table number: explicit one when set, position otherwise.
func Number(t *thesis.Table, pos int) int {
	if t.Number > 0 {
		return t.Number
	}
	return pos
}

// caption of grid tables comes from caption only, pasted tables often carry
// just a title so it is used as well.
func caption(t *thesis.Table) string {
	if t.Shape == common.TableShapeOpaque {
		return t.Label()
	}
	return t.Caption
}

func Placeholder(t *thesis.Table) string {
	label := t.Label()
	if label == "" {
		label = "Untitled"
	}
	return fmt.Sprintf("[Error loading table: %s]", label)
}
