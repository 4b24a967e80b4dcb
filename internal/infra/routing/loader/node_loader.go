// Package loader reads delivery node tables from CSV and XLSX files.
package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"fleetplan/internal/domain/entity"
	domainerrors "fleetplan/internal/domain/errors"
	"fleetplan/internal/infra/routing/geo"
	"fleetplan/internal/util"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Required columns. Header matching is case-insensitive.
const (
	columnID     = "id"
	columnLat    = "lat"
	columnLon    = "lon"
	columnDemand = "demand"
)

var columnAliases = map[string]string{
	"id":        columnID,
	"lat":       columnLat,
	"latitude":  columnLat,
	"lon":       columnLon,
	"lng":       columnLon,
	"longitude": columnLon,
	"demand":    columnDemand,
	"demanda":   columnDemand,
}

// NodeTable is a validated node list together with where it came from.
type NodeTable struct {
	Nodes    []entity.Node
	Source   string
	Checksum string
	Size     int64
}

// LoadFile reads a .csv or .xlsx node table, sorts it by id and validates it.
func LoadFile(path string) (*NodeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var nodes []entity.Node
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		nodes, err = ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		nodes, err = ReadXLSX(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "unsupported node file extension %q", ext)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", filepath.Base(path))
	}

	checksum, err := util.ReaderChecksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &NodeTable{
		Nodes:    nodes,
		Source:   path,
		Checksum: checksum,
		Size:     int64(len(data)),
	}, nil
}

// ReadCSV parses a comma separated node table with a header row.
func ReadCSV(r io.Reader) ([]entity.Node, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidNodes, readErr.Error())
		}
		rows = append(rows, record)
	}

	return ParseRows(rows)
}

// ReadXLSX parses the first sheet of a workbook as a node table.
func ReadXLSX(r io.Reader) ([]entity.Node, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "open workbook: %v", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidNodes, "workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "read sheet %s: %v", sheets[0], err)
	}

	return ParseRows(rows)
}

// ParseRows turns a header row plus data rows into normalised nodes. Blank
// rows are skipped, unknown columns are ignored.
func ParseRows(rows [][]string) ([]entity.Node, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidNodes, "node table is empty")
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	nodes := make([]entity.Node, 0, len(rows)-1)
	for k, record := range rows[1:] {
		lineNum := k + 2
		if isBlank(record) {
			continue
		}

		node, parseErr := parseNode(record, columns, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}
		nodes = append(nodes, node)
	}

	return Normalize(nodes)
}

// Normalize returns a copy of nodes sorted by id and checks that ids run
// 0..n-1, the depot carries no demand, every customer demand is finite and
// positive and every coordinate lies on Earth.
func Normalize(nodes []entity.Node) ([]entity.Node, error) {
	if len(nodes) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidNodes, "at least the depot is required")
	}

	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b entity.Node) int {
		return a.ID - b.ID
	})

	for i, n := range sorted {
		if n.ID != i {
			if i > 0 && sorted[i-1].ID == n.ID {
				return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "duplicate node id %d", n.ID)
			}

			return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "node ids must be contiguous from 0, missing %d", i)
		}
		if math.IsNaN(n.Demand) || math.IsInf(n.Demand, 0) || n.Demand < 0 {
			return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "node %d has invalid demand %g", n.ID, n.Demand)
		}
		if n.ID != entity.DepotID && n.Demand == 0 {
			return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "customer %d must have positive demand", n.ID)
		}
		if !geo.IsValidCoordinate(n.Coordinate()) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "node %d has invalid coordinate (%g, %g)", n.ID, n.Lat, n.Lon)
		}
	}
	if sorted[entity.DepotID].Demand != 0 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "depot demand must be 0, got %g", sorted[entity.DepotID].Demand)
	}

	return sorted, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(columnAliases))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if canonical, ok := columnAliases[key]; ok {
			if _, dup := columns[canonical]; !dup {
				columns[canonical] = i
			}
		}
	}

	var missing []string
	for _, required := range []string{columnID, columnLat, columnLon, columnDemand} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidNodes, "missing required columns: %s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func parseNode(record []string, columns map[string]int, lineNum int) (entity.Node, error) {
	field := func(name string) string {
		if idx := columns[name]; idx < len(record) {
			return strings.TrimSpace(record[idx])
		}

		return ""
	}

	idValue, err := strconv.ParseFloat(field(columnID), 64)
	if err != nil || idValue != math.Trunc(idValue) {
		return entity.Node{}, errors.Wrapf(domainerrors.ErrInvalidNodes, "invalid id %q at line %d", field(columnID), lineNum)
	}

	lat, err := strconv.ParseFloat(field(columnLat), 64)
	if err != nil {
		return entity.Node{}, errors.Wrapf(domainerrors.ErrInvalidNodes, "invalid lat %q at line %d", field(columnLat), lineNum)
	}

	lon, err := strconv.ParseFloat(field(columnLon), 64)
	if err != nil {
		return entity.Node{}, errors.Wrapf(domainerrors.ErrInvalidNodes, "invalid lon %q at line %d", field(columnLon), lineNum)
	}

	demand, err := strconv.ParseFloat(field(columnDemand), 64)
	if err != nil {
		return entity.Node{}, errors.Wrapf(domainerrors.ErrInvalidNodes, "invalid demand %q at line %d", field(columnDemand), lineNum)
	}

	return entity.Node{ID: int(idValue), Lat: lat, Lon: lon, Demand: demand}, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
