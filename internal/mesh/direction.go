package mesh

// Direction identifies one of the six faces of a block.
type Direction uint8

const (
	Down Direction = iota // -Y
	Up                    // +Y
	Left                  // -X
	Right                 // +X
	Front                 // -Z
	Back                  // +Z
)

// Directions lists all six face directions in a stable order.
var Directions = [6]Direction{Down, Up, Left, Right, Front, Back}

var offsets = [6][3]int{
	Down:  {0, -1, 0},
	Up:    {0, 1, 0},
	Left:  {-1, 0, 0},
	Right: {1, 0, 0},
	Front: {0, 0, -1},
	Back:  {0, 0, 1},
}

// Offset returns the unit step towards the neighboring block behind this face.
func (d Direction) Offset() (dx, dy, dz int) {
	o := offsets[d]
	return o[0], o[1], o[2]
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}
