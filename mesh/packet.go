package mesh

// Coords identifies a router's position in the grid, (row, col).
type Coords struct {
	Row uint32
	Col uint32
}

// Packet is the unit routed through the mesh: a destination and an
// opaque payload.
type Packet struct {
	Dest    Coords
	Payload uint64
}

// Direction names one of a router's six ports. Inject and Eject are the
// external (non-mesh) ports; the rest are cardinal neighbors.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Inject
	Eject
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Inject:
		return "Inject"
	case Eject:
		return "Eject"
	default:
		return "?"
	}
}

// inDirs enumerates the five input ports in the fixed order Stage 1 and
// Stage 2 scan them.
var inDirs = [5]Direction{Inject, North, East, South, West}

// outDirs enumerates the five output ports each tick arbitrates over.
var outDirs = [5]Direction{Eject, North, East, South, West}

// flip returns the opposite direction, so a packet sent out of a
// router's N port arrives on the neighbor's S input, etc.
// Inject and Eject flip to each other since they are the two ends of the
// same external port.
func flip(d Direction) Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case Inject:
		return Eject
	case Eject:
		return Inject
	default:
		panic("mesh: flip: unreachable direction")
	}
}
