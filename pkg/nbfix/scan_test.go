package nbfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbfix/nbfix-go/pkg/nbfix/models"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []models.Removal
	}{
		{
			name: "no widgets anywhere",
			doc:  `{"metadata": {"kernelspec": {"name": "python3"}}, "cells": [{"metadata": {}}]}`,
			want: nil,
		},
		{
			name: "valid notebook-level widgets",
			doc:  `{"metadata": {"widgets": {"state": {}}}, "cells": []}`,
			want: nil,
		},
		{
			name: "malformed notebook-level widgets",
			doc:  `{"metadata": {"widgets": {"foo": 1}}, "cells": []}`,
			want: []models.Removal{{CellIndex: -1, Path: "metadata.widgets"}},
		},
		{
			name: "null widgets",
			doc:  `{"metadata": {"widgets": null}}`,
			want: []models.Removal{{CellIndex: -1, Path: "metadata.widgets"}},
		},
		{
			name: "non-object widgets",
			doc:  `{"metadata": {"widgets": [1, 2]}}`,
			want: []models.Removal{{CellIndex: -1, Path: "metadata.widgets"}},
		},
		{
			name: "single malformed cell among three",
			doc: `{"cells": [
				{"metadata": {}},
				{"metadata": {"widgets": {}}},
				{"metadata": {"widgets": {"state": {}}}}
			]}`,
			want: []models.Removal{{CellIndex: 1, Path: "cells.1.metadata.widgets"}},
		},
		{
			name: "notebook level and cells together",
			doc: `{"metadata": {"widgets": "bad"}, "cells": [
				{"metadata": {"widgets": {"state": {"x": {}}}}},
				{"metadata": {"widgets": 7}}
			]}`,
			want: []models.Removal{
				{CellIndex: -1, Path: "metadata.widgets"},
				{CellIndex: 1, Path: "cells.1.metadata.widgets"},
			},
		},
		{
			name: "cells without metadata",
			doc:  `{"cells": [{"cell_type": "markdown", "source": []}]}`,
			want: nil,
		},
		{
			name: "top level is not an object",
			doc:  `[{"metadata": {"widgets": {}}}]`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan([]byte(tt.doc))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanDoesNotModifyInput(t *testing.T) {
	doc := []byte(`{"metadata": {"widgets": {}}, "cells": [{"metadata": {"widgets": null}}]}`)
	before := string(doc)

	removals := Scan(doc)

	require.Len(t, removals, 2)
	assert.Equal(t, before, string(doc))
}

func TestRemovalLocation(t *testing.T) {
	assert.Equal(t, "notebook level", models.Removal{CellIndex: -1}.Location())
	assert.Equal(t, "cell 3", models.Removal{CellIndex: 3}.Location())
}
