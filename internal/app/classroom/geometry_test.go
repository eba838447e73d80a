package classroom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclassroom/internal/app/classroom"
)

func emptyMap() classroom.MapConfig {
	return classroom.MapConfig{Width: 800, Height: 600}
}

func singleObstacleMap() classroom.MapConfig {
	return classroom.MapConfig{
		Width:  800,
		Height: 600,
		Obstacles: []classroom.Obstacle{
			{X: 300, Y: 200, Width: 80, Height: 60, Kind: classroom.ObstacleDesk},
		},
	}
}

func TestIsValidPosition_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		valid bool
	}{
		{"center of map", 400, 500, true},
		{"exactly on left margin", 20, 300, true},
		{"exactly on right margin", 780, 300, true},
		{"exactly on top margin", 400, 20, true},
		{"exactly on bottom margin", 400, 580, true},
		{"left of margin", 19.9, 300, false},
		{"right of margin", 780.1, 300, false},
		{"above margin", 400, 19.9, false},
		{"below margin", 400, 580.1, false},
		{"negative x", -5, 100, false},
		{"negative y", 100, -5, false},
		{"far outside", 10000, 10000, false},
	}

	m := emptyMap()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, classroom.IsValidPosition(tt.x, tt.y, m))
		})
	}
}

func TestIsValidPosition_ObstaclePadding(t *testing.T) {
	// Obstacle rectangle is (300,200)-(380,260); the padded rejection
	// rectangle is (285,185)-(395,275), inclusive on all edges.
	tests := []struct {
		name  string
		x, y  float64
		valid bool
	}{
		{"inside obstacle", 340, 230, false},
		{"on obstacle edge", 300, 200, false},
		{"inside padding left", 286, 230, false},
		{"exactly on padded left edge", 285, 230, false},
		{"exactly on padded right edge", 395, 230, false},
		{"exactly on padded top edge", 340, 185, false},
		{"exactly on padded bottom edge", 340, 275, false},
		{"just left of padding", 284.9, 230, true},
		{"just right of padding", 395.1, 230, true},
		{"just above padding", 340, 184.9, true},
		{"just below padding", 340, 275.1, true},
		{"aligned in x only", 340, 100, true},
		{"aligned in y only", 100, 230, true},
	}

	m := singleObstacleMap()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, classroom.IsValidPosition(tt.x, tt.y, m))
		})
	}
}

func TestIsValidPosition_OverlappingObstaclesUnion(t *testing.T) {
	m := classroom.MapConfig{
		Width:  800,
		Height: 600,
		Obstacles: []classroom.Obstacle{
			{X: 100, Y: 100, Width: 100, Height: 100, Kind: classroom.ObstacleDesk},
			{X: 150, Y: 150, Width: 100, Height: 100, Kind: classroom.ObstacleDesk},
		},
	}

	// Rejected by both, by only the first, by only the second.
	assert.False(t, classroom.IsValidPosition(160, 160, m))
	assert.False(t, classroom.IsValidPosition(110, 110, m))
	assert.False(t, classroom.IsValidPosition(240, 240, m))

	// Outside both padded rectangles.
	assert.True(t, classroom.IsValidPosition(400, 400, m))
}

func TestDefaultClassroomMap(t *testing.T) {
	m := classroom.DefaultClassroomMap()

	assert.Equal(t, 800.0, m.Width)
	assert.Equal(t, 600.0, m.Height)
	require.Len(t, m.Obstacles, 14)

	kinds := map[string]int{}
	for _, o := range m.Obstacles {
		kinds[o.Kind]++
	}
	assert.Equal(t, 7, kinds[classroom.ObstacleDesk])
	assert.Equal(t, 1, kinds[classroom.ObstacleBoard])
	assert.Equal(t, 4, kinds[classroom.ObstacleWall])
	assert.Equal(t, 1, kinds[classroom.ObstacleDoor])
}
