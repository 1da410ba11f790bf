package snake

import (
	"math/rand/v2"
	"strconv"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const (
	// GridSize is the number of cells along each axis.
	GridSize = 20
	// CellPixels is the side of one cell on the renderer's surface.
	CellPixels = 20
)

var Origin = Point{10, 10}

type EventType int

const (
	Render EventType = iota
	GameOver
)

func (t EventType) String() string {
	if t == GameOver {
		return "game_over"
	}
	return "frame"
}

// Event describes the outcome of one tick. Render events carry the draw
// list; GameOver events carry the final score of the session that ended.
type Event struct {
	Type    EventType
	Snake   []Point
	Food    Point
	Score   int
	Message string
}

// FoodSpawner picks the cell of the next food item.
type FoodSpawner func(grid int) Point

// RandomFood spawns food on a uniformly random cell. The snake body is not
// taken into account, so food may land underneath it.
func RandomFood(r *rand.Rand) FoodSpawner {
	return func(grid int) Point {
		return Point{r.IntN(grid), r.IntN(grid)}
	}
}

type Game struct {
	body      deque.Deque[Point]
	food      Point
	direction Direction
	score     int
	spawn     FoodSpawner
}

func NewGame(spawn FoodSpawner) *Game {
	g := &Game{spawn: spawn}
	g.Reset()
	return g
}

// Reset puts a single segment at the origin, stops the snake, zeroes the
// score and respawns food.
func (g *Game) Reset() {
	g.body.Clear()
	g.body.PushFront(Origin)
	g.direction = None
	g.score = 0
	g.food = g.spawn(GridSize)
}

func (g *Game) Head() Point {
	return g.body.Front()
}

func (g *Game) Food() Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Direction() Direction {
	return g.direction
}

func (g *Game) Len() int {
	return g.body.Len()
}

// Snake returns the segments from head to tail.
func (g *Game) Snake() []Point {
	segments := make([]Point, g.body.Len())
	for i := range segments {
		segments[i] = g.body.At(i)
	}
	return segments
}

// SetDirection changes course unless d lies on the axis the snake already
// moves along. It reports whether the direction was accepted.
func (g *Game) SetDirection(d Direction) bool {
	switch {
	case d == None:
		return false
	case d.Vertical() && g.direction.Vertical():
		return false
	case d.Horizontal() && g.direction.Horizontal():
		return false
	}
	g.direction = d
	return true
}

func (g *Game) collides(head Point) bool {
	for i := 1; i < g.body.Len(); i++ {
		if g.body.At(i) == head {
			return true
		}
	}
	return false
}

// Tick advances the game by one step.
func (g *Game) Tick() Event {
	head := g.body.Front().Add(g.direction)
	g.body.PushFront(head)

	if head == g.food {
		g.score++
		g.food = g.spawn(GridSize)
	} else {
		g.body.PopBack()
	}

	if !head.Inside(GridSize) || g.collides(head) {
		score := g.score
		Log.WithFields(logrus.Fields{
			"score": score,
			"head":  head,
		}).Debug("game over")
		g.Reset()
		return Event{
			Type:    GameOver,
			Score:   score,
			Message: "Game Over! Your score: " + strconv.Itoa(score),
		}
	}

	return g.Frame()
}

// Frame describes the current state without advancing it.
func (g *Game) Frame() Event {
	return Event{
		Type:  Render,
		Snake: g.Snake(),
		Food:  g.food,
		Score: g.score,
	}
}
