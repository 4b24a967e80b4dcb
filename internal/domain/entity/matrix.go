package entity

// DistanceMatrix holds great-circle distances in kilometres indexed by node id.
// It is square, symmetric and zero on the diagonal.
type DistanceMatrix [][]float64

// Size returns the number of nodes the matrix covers.
func (m DistanceMatrix) Size() int {
	return len(m)
}

// RouteLength sums the distances between consecutive nodes of a sequence.
func (m DistanceMatrix) RouteLength(nodes []int) float64 {
	var length float64
	for k := 1; k < len(nodes); k++ {
		length += m[nodes[k-1]][nodes[k]]
	}

	return length
}
