// Package export renders solved plans as route tables and maps and stores
// them in a blob bucket.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"fleetplan/internal/domain/entity"
	"fleetplan/internal/util"

	"github.com/pkg/errors"
)

// ContentTypeCSV is the media type of route tables.
const ContentTypeCSV = "text/csv"

var routeTableHeader = []string{"route_id", "route_nodes", "route_length"}

// WriteRoutesCSV writes one row per route: its 1-based id, the node sequence
// rendered as "[0, 1, 2, 0]" and its length in kilometres at full precision.
func WriteRoutesCSV(w io.Writer, routes []entity.Route) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(routeTableHeader); err != nil {
		return errors.WithStack(err)
	}
	for _, r := range routes {
		record := []string{
			strconv.Itoa(r.ID),
			util.FormatNodeSequence(r.Nodes),
			strconv.FormatFloat(r.LengthKm, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.WithStack(err)
		}
	}
	writer.Flush()

	return errors.WithStack(writer.Error())
}
