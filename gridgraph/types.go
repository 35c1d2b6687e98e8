package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Blank is the byte treated as an unfilled cell.
const Blank byte = ' '

// GridGraph is an immutable view of a letter grid as a graph.
// filled[y*Width+x] reports whether (x,y) holds a letter.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	filled          []bool
	neighborOffsets [][2]int
}
