/*
Package classroom contains the core logic of the presence server.

This file implements spawn placement: picking a random valid starting
position for a newly joined user.
*/
package classroom

import (
	"math/rand/v2"

	"vclassroom/internal/app/user"
)

// spawnAttempts is how many random candidates are drawn before giving
// up and using the fallback point.
const spawnAttempts = 10

// spawnFallback is returned when every random candidate was rejected.
// It is not re-validated; on unusual maps it may itself be invalid,
// which is an accepted limitation of this placement scheme.
var spawnFallback = user.Position{X: 400, Y: 500}

// PickSpawn picks a starting position on the given map. It draws up to
// spawnAttempts uniform-random points inside the margin-inset bounds
// and returns the first one that passes validation, or spawnFallback if
// all attempts fail. Each call is independent; the package-level random
// source in math/rand/v2 is safe for concurrent use.
func PickSpawn(m MapConfig) user.Position {
	for range spawnAttempts {
		candidate := user.Position{
			X: rand.Float64()*(m.Width-2*BoundsMargin) + BoundsMargin,
			Y: rand.Float64()*(m.Height-2*BoundsMargin) + BoundsMargin,
		}

		if isValidSpawn(candidate, m) {
			return candidate
		}
	}

	return spawnFallback
}
