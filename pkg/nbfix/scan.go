package nbfix

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/nbfix/nbfix-go/pkg/nbfix/models"
)

// notebookWidgetsPath is the notebook-level metadata.widgets entry.
const notebookWidgetsPath = "metadata.widgets"

// Scan inspects raw notebook JSON and returns one Removal for every
// malformed metadata.widgets entry: the notebook-level block first, then
// cells in document order. The input is not modified, and nothing outside
// the widgets entries is inspected.
func Scan(doc []byte) []models.Removal {
	var removals []models.Removal

	if w := gjson.GetBytes(doc, notebookWidgetsPath); w.Exists() && !IsValidWidgetState(w) {
		removals = append(removals, models.Removal{
			CellIndex: -1,
			Path:      notebookWidgetsPath,
		})
	}

	cells := gjson.GetBytes(doc, "cells")
	if cells.IsArray() {
		for i, cell := range cells.Array() {
			w := cell.Get("metadata.widgets")
			if w.Exists() && !IsValidWidgetState(w) {
				removals = append(removals, models.Removal{
					CellIndex: i,
					Path:      "cells." + strconv.Itoa(i) + ".metadata.widgets",
				})
			}
		}
	}

	return removals
}
