package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"fleetplan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoutes() []entity.Route {
	return []entity.Route{
		{ID: 1, Nodes: []int{0, 1, 2, 0}, LengthKm: 12.34567, Demand: 7, Origin: entity.RouteOriginPrimary, WellFormed: true},
		{ID: 2, Nodes: []int{0, 3, 0}, LengthKm: 8, Demand: 5, Origin: entity.RouteOriginRecovery},
	}
}

func sampleNodes() []entity.Node {
	return []entity.Node{
		{ID: 0, Lat: -23.5505, Lon: -46.6333},
		{ID: 1, Lat: -23.5614, Lon: -46.6559, Demand: 3},
		{ID: 2, Lat: -23.5329, Lon: -46.6395, Demand: 4},
		{ID: 3, Lat: -23.5874, Lon: -46.6576, Demand: 5},
	}
}

func TestWriteRoutesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRoutesCSV(&buf, sampleRoutes()))

	expected := "route_id,route_nodes,route_length\n" +
		"1,\"[0, 1, 2, 0]\",12.34567\n" +
		"2,\"[0, 3, 0]\",8\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteRoutesCSV_NoRoutes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRoutesCSV(&buf, nil))

	assert.Equal(t, "route_id,route_nodes,route_length\n", buf.String())
}

func TestRoutesGeoJSON(t *testing.T) {
	data, err := RoutesGeoJSON(sampleNodes(), sampleRoutes())
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates json.RawMessage `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FeatureCollection", decoded.Type)
	require.Len(t, decoded.Features, 6)

	first := decoded.Features[0]
	assert.Equal(t, "LineString", first.Geometry.Type)
	assert.Equal(t, "route", first.Properties["kind"])
	assert.InDelta(t, 1.0, first.Properties["route_id"], 1e-9)
	assert.Equal(t, true, first.Properties["well_formed"])

	var line [][]float64
	require.NoError(t, json.Unmarshal(first.Geometry.Coordinates, &line))
	require.Len(t, line, 4)
	assert.InDelta(t, -46.6333, line[0][0], 1e-9, "longitude comes first")
	assert.InDelta(t, -23.5505, line[0][1], 1e-9)

	depot := decoded.Features[2]
	assert.Equal(t, "Point", depot.Geometry.Type)
	assert.Equal(t, true, depot.Properties["depot"])
}

func TestRoutesGeoJSON_UnknownNode(t *testing.T) {
	_, err := RoutesGeoJSON(sampleNodes()[:2], sampleRoutes())
	require.Error(t, err)
}

func TestBlobStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBlobStore(ctx, "mem://", "plans/")
	require.NoError(t, err)
	defer store.Close()

	location, err := store.Put(ctx, "abc/routes.csv", ContentTypeCSV, []byte("route_id\n"))
	require.NoError(t, err)
	assert.Equal(t, "mem://plans/abc/routes.csv", location)

	data, err := store.Get(ctx, "abc/routes.csv")
	require.NoError(t, err)
	assert.Equal(t, "route_id\n", string(data))

	_, err = store.Get(ctx, "missing.csv")
	require.Error(t, err)
}
