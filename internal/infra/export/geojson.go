package export

import (
	"fleetplan/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ContentTypeGeoJSON is the media type of route maps.
const ContentTypeGeoJSON = "application/geo+json"

// RoutesGeoJSON builds a feature collection with one LineString per route and
// one Point per node, suitable for any web map.
func RoutesGeoJSON(nodes []entity.Node, routes []entity.Route) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for _, r := range routes {
		line := make(orb.LineString, 0, len(r.Nodes))
		for _, id := range r.Nodes {
			if id < 0 || id >= len(nodes) {
				return nil, errors.Errorf("route %d references unknown node %d", r.ID, id)
			}
			line = append(line, orb.Point{nodes[id].Lon, nodes[id].Lat})
		}

		feature := geojson.NewFeature(line)
		feature.Properties["kind"] = "route"
		feature.Properties["route_id"] = r.ID
		feature.Properties["route_length"] = r.LengthKm
		feature.Properties["demand"] = r.Demand
		feature.Properties["origin"] = string(r.Origin)
		feature.Properties["well_formed"] = r.WellFormed
		fc.Append(feature)
	}

	for _, n := range nodes {
		feature := geojson.NewFeature(orb.Point{n.Lon, n.Lat})
		feature.Properties["kind"] = "node"
		feature.Properties["id"] = n.ID
		feature.Properties["demand"] = n.Demand
		feature.Properties["depot"] = n.IsDepot()
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal geojson")
	}

	return data, nil
}
