/*
Package classroom contains the core logic of the presence server: rooms,
their maps, participant sessions, and broadcast fan-out.

This file defines the static map model and position validation. A
position is valid when it lies inside the margin-inset map bounds and
outside every obstacle's padded rectangle.
*/
package classroom

import "vclassroom/internal/app/user"

const (
	// BoundsMargin keeps avatars away from the hard map edges.
	BoundsMargin = 20.0

	// ObstaclePadding expands every obstacle's rejection rectangle on
	// all sides, giving a collision margin larger than the obstacle's
	// visual footprint.
	ObstaclePadding = 15.0
)

// Obstacle kinds.
const (
	ObstacleDesk  = "desk"
	ObstacleWall  = "wall"
	ObstacleBoard = "board"
	ObstacleDoor  = "door"
)

// Obstacle is a static axis-aligned rectangular no-go zone on a map.
type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Kind   string  `json:"type"`
}

// MapConfig is a room's static map: overall dimensions, an optional
// background reference, and the obstacle list. Immutable for the
// lifetime of the room.
type MapConfig struct {
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	BackgroundImage string     `json:"backgroundImage,omitempty"`
	Obstacles       []Obstacle `json:"obstacles"`
}

// IsValidPosition reports whether the point (x, y) is a legal avatar
// position on the given map: within the margin-inset bounds and outside
// every obstacle's padded rectangle. Pure; obstacle checks short-circuit
// on the first rejection.
func IsValidPosition(x, y float64, m MapConfig) bool {
	if x < BoundsMargin || y < BoundsMargin || x > m.Width-BoundsMargin || y > m.Height-BoundsMargin {
		return false
	}

	for _, o := range m.Obstacles {
		if x >= o.X-ObstaclePadding && x <= o.X+o.Width+ObstaclePadding &&
			y >= o.Y-ObstaclePadding && y <= o.Y+o.Height+ObstaclePadding {
			return false
		}
	}

	return true
}

// isValidSpawn is IsValidPosition over a Position value.
func isValidSpawn(p user.Position, m MapConfig) bool {
	return IsValidPosition(p.X, p.Y, m)
}

// DefaultClassroomMap returns the static 800x600 classroom layout the
// default room is seeded with. The exact rectangles are kept in sync
// with what existing clients render.
func DefaultClassroomMap() MapConfig {
	return MapConfig{
		Width:  800,
		Height: 600,
		Obstacles: []Obstacle{
			// Teacher's desk
			{X: 350, Y: 50, Width: 100, Height: 60, Kind: ObstacleDesk},
			// Whiteboard
			{X: 300, Y: 10, Width: 200, Height: 30, Kind: ObstacleBoard},
			// Student desks
			{X: 150, Y: 200, Width: 80, Height: 60, Kind: ObstacleDesk},
			{X: 300, Y: 200, Width: 80, Height: 60, Kind: ObstacleDesk},
			{X: 450, Y: 200, Width: 80, Height: 60, Kind: ObstacleDesk},
			{X: 150, Y: 320, Width: 80, Height: 60, Kind: ObstacleDesk},
			{X: 300, Y: 320, Width: 80, Height: 60, Kind: ObstacleDesk},
			{X: 450, Y: 320, Width: 80, Height: 60, Kind: ObstacleDesk},
			// Walls
			{X: 0, Y: 0, Width: 800, Height: 10, Kind: ObstacleWall},
			{X: 0, Y: 0, Width: 10, Height: 600, Kind: ObstacleWall},
			{X: 790, Y: 0, Width: 10, Height: 600, Kind: ObstacleWall},
			{X: 0, Y: 590, Width: 800, Height: 10, Kind: ObstacleWall},
			// Door
			{X: 700, Y: 590, Width: 60, Height: 10, Kind: ObstacleDoor},
		},
	}
}
