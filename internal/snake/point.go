package snake

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(d Direction) Point {
	return Point{p.X + d.DX, p.Y + d.DY}
}

func (p Point) Inside(grid int) bool {
	return 0 <= p.X && p.X < grid && 0 <= p.Y && p.Y < grid
}

// Direction is a unit vector with at most one non-zero axis.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{0, 0}
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

func (d Direction) Vertical() bool {
	return d.DY != 0
}

func (d Direction) Horizontal() bool {
	return d.DX != 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps an arrow key name to a direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return None, false
	}
}
