package trip

import "math"

// Location is a named point on the map.
type Location struct {
	Name string
	X, Y float64
}

// Dist returns the straight-line distance to other. It never exceeds the
// length of a road between the two, which makes it a safe search heuristic.
func (l Location) Dist(other Location) float64 {
	return math.Hypot(l.X-other.X, l.Y-other.Y)
}

func (l Location) String() string { return l.Name }

// Road is one directed segment of a named road.
type Road struct {
	Name   string
	Dir    Direction
	Length float64
}

// Reverse returns the segment travelled the other way.
func (r Road) Reverse() Road {
	return Road{Name: r.Name, Dir: r.Dir.Reverse(), Length: r.Length}
}

func (r Road) String() string { return r.Name }
