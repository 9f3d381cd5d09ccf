package particles

import "gonum.org/v1/gonum/spatial/r2"

// Connection joins two particles drawn as a fading line.
type Connection struct {
	A, B     int
	From, To r2.Vec
	Distance float64
	Opacity  float64
}

// Opacity returns the line alpha for two particles at distance d:
// clamp(0.15 - d/1000, 0, 1). Zero means the line is invisible.
func Opacity(d float64) float64 {
	alpha := 0.15 - d/1000
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// Connections lists every unordered pair (i < j) whose distance is strictly
// below ConnectDistance, in index order.
func Connections(particles []Particle) []Connection {
	var out []Connection
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			d := r2.Norm(r2.Sub(particles[i].Pos, particles[j].Pos))
			if d >= ConnectDistance {
				continue
			}
			out = append(out, Connection{
				A:        i,
				B:        j,
				From:     particles[i].Pos,
				To:       particles[j].Pos,
				Distance: d,
				Opacity:  Opacity(d),
			})
		}
	}
	return out
}
