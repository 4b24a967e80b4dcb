// Package entity contains the core business objects of the project.
package entity

// DepotID is the node id reserved for the depot, where every route starts and ends.
const DepotID = 0

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Node is a demand point, or the depot when ID equals DepotID.
type Node struct {
	ID     int     `json:"id"`     // Contiguous index in 0..n-1, 0 is the depot.
	Lat    float64 `json:"lat"`    // Latitude in decimal degrees.
	Lon    float64 `json:"lon"`    // Longitude in decimal degrees.
	Demand float64 `json:"demand"` // Units to deliver, 0 for the depot.
}

// Coordinate returns the node position.
func (n Node) Coordinate() Coordinate {
	return Coordinate{Lat: n.Lat, Lon: n.Lon}
}

// IsDepot reports whether the node is the depot.
func (n Node) IsDepot() bool {
	return n.ID == DepotID
}

// Coordinates projects nodes onto their positions, preserving order.
func Coordinates(nodes []Node) []Coordinate {
	coords := make([]Coordinate, len(nodes))
	for i, n := range nodes {
		coords[i] = n.Coordinate()
	}

	return coords
}

// Demands projects nodes onto their demands, preserving order.
func Demands(nodes []Node) []float64 {
	demands := make([]float64, len(nodes))
	for i, n := range nodes {
		demands[i] = n.Demand
	}

	return demands
}

// TotalDemand sums the demand of every node.
func TotalDemand(nodes []Node) float64 {
	var total float64
	for _, n := range nodes {
		total += n.Demand
	}

	return total
}
