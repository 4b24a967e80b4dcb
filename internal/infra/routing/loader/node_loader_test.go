package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `id,lat,lon,demanda,label
2,-23.5614,-46.6559,4,Paulista
0,-23.5505,-46.6333,0,Depot
3,-23.5329,-46.6395,5,Luz

1,-23.5874,-46.6576,3,Ibirapuera
`

func TestLoadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	table, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, table.Nodes, 4)
	for i, n := range table.Nodes {
		assert.Equal(t, i, n.ID, "nodes must be sorted by id")
	}
	assert.InDelta(t, -23.5874, table.Nodes[1].Lat, 1e-9)
	assert.InDelta(t, -46.6576, table.Nodes[1].Lon, 1e-9)
	assert.InDelta(t, 3.0, table.Nodes[1].Demand, 1e-9)
	assert.Zero(t, table.Nodes[0].Demand)
	assert.Len(t, table.Checksum, 64)
	assert.Equal(t, int64(len(sampleCSV)), table.Size)
	assert.Equal(t, path, table.Source)
}

func TestLoadFile_XLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	rows := [][]any{
		{"ID", "Latitude", "Longitude", "Demand"},
		{0, 25.0330, 121.5654, 0},
		{1, 25.0478, 121.5170, 2.5},
		{2, 25.0375, 121.5637, 1},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "nodes.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	require.NoError(t, workbook.Close())

	table, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, table.Nodes, 3)
	assert.InDelta(t, 25.0478, table.Nodes[1].Lat, 1e-9)
	assert.InDelta(t, 2.5, table.Nodes[1].Demand, 1e-9)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidNodes))
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "empty", content: "", wantMsg: "empty"},
		{name: "missing columns", content: "id,lat\n0,1\n", wantMsg: "lon, demand"},
		{name: "non numeric lat", content: "id,lat,lon,demand\n0,abc,1,0\n", wantMsg: "invalid lat \"abc\" at line 2"},
		{name: "fractional id", content: "id,lat,lon,demand\n0.5,1,1,0\n", wantMsg: "invalid id"},
		{name: "gap in ids", content: "id,lat,lon,demand\n0,1,1,0\n2,1,1,1\n", wantMsg: "missing 1"},
		{name: "duplicate ids", content: "id,lat,lon,demand\n0,1,1,0\n1,1,1,1\n1,2,2,1\n", wantMsg: "duplicate node id 1"},
		{name: "depot demand", content: "id,lat,lon,demand\n0,1,1,4\n", wantMsg: "depot demand"},
		{name: "negative demand", content: "id,lat,lon,demand\n0,1,1,0\n1,1,1,-2\n", wantMsg: "invalid demand"},
		{name: "customer without demand", content: "id,lat,lon,demand\n0,1,1,0\n1,1,2,0\n", wantMsg: "customer 1 must have positive demand"},
		{name: "latitude out of range", content: "id,lat,lon,demand\n0,91,1,0\n", wantMsg: "invalid coordinate"},
		{name: "header only", content: "id,lat,lon,demand\n", wantMsg: "depot is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidNodes), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	input := []entity.Node{
		{ID: 1, Lat: 1, Lon: 1, Demand: 2},
		{ID: 0, Lat: 0, Lon: 0},
	}

	out, err := Normalize(input)
	require.NoError(t, err)

	assert.Equal(t, 0, out[0].ID)
	assert.Equal(t, 1, input[0].ID)
}
