// Package game implements the corridor racer, a toy terminal demo rendered
// with the raytracer in [github.com/slatelang/slate/pkg/trace]. The player
// slides left and right in a corridor, collecting coins and dodging
// obstacles while the floor pattern scrolls past. It shares nothing with the
// language front end beyond living in the same repository.
package game

import (
	"math/rand"

	"github.com/slatelang/slate/pkg/trace"
)

// ObjectKind distinguishes the two spawnable object types.
type ObjectKind int

const (
	Coin ObjectKind = iota
	Obstacle
)

// Object is a coin or obstacle in the corridor, positioned relative to the
// player (negative z is ahead).
type Object struct {
	Pos  trace.Vec3
	Kind ObjectKind
}

// Corridor geometry and tuning. The corridor spans x in [-3, 3] with the
// player clamped slightly inside the walls.
const (
	playerMinX   = -2.5
	playerMaxX   = 2.5
	playerSpeed  = 5.0  // lateral units per second
	spawnZ       = -20  // distance ahead at which objects appear
	despawnZ     = 20   // distance behind at which objects vanish
	hitRadius    = 0.5
	coinScore    = 10
	speedRamp    = 0.5  // forward speed gain per second
	spawnChance  = 0.3  // per-update probability of a new object
	coinFraction = 0.7  // of spawns, how many are coins
)

// State holds one run of the game. Create it with NewState and advance it
// with Update; rendering reads it without mutating.
type State struct {
	PlayerX float64
	Speed   float64
	Score   int
	Over    bool
	Objects []Object
	ZOffset float64

	rng *rand.Rand
}

// NewState starts a run with the given random source. Pass a seeded source
// in tests for reproducible spawns.
func NewState(rng *rand.Rand) *State {
	return &State{Speed: 5.0, rng: rng}
}

// MoveLeft shifts the player left, clamped to the corridor.
func (s *State) MoveLeft(dt float64) {
	s.PlayerX = max(playerMinX, s.PlayerX-playerSpeed*dt)
}

// MoveRight shifts the player right, clamped to the corridor.
func (s *State) MoveRight(dt float64) {
	s.PlayerX = min(playerMaxX, s.PlayerX+playerSpeed*dt)
}

// Update advances the world by dt seconds: objects approach the player,
// collisions are resolved, new objects may spawn and the speed ramps up.
// It is a no-op once the run is over.
func (s *State) Update(dt float64) {
	if s.Over {
		return
	}

	kept := s.Objects[:0]
	for _, obj := range s.Objects {
		obj.Pos.Z += s.Speed * dt

		if obj.Pos.Z > -hitRadius {
			dx := obj.Pos.X - s.PlayerX
			if dx*dx+obj.Pos.Z*obj.Pos.Z < hitRadius*hitRadius {
				if obj.Kind == Coin {
					s.Score += coinScore
					continue
				}
				s.Over = true
				s.Objects = kept
				return
			}
		}
		if obj.Pos.Z < despawnZ {
			kept = append(kept, obj)
		}
	}
	s.Objects = kept

	s.spawn()
	s.Speed += speedRamp * dt
	s.ZOffset += s.Speed * dt
}

func (s *State) spawn() {
	if s.rng.Float64() >= spawnChance {
		return
	}
	kind := Obstacle
	if s.rng.Float64() < coinFraction {
		kind = Coin
	}
	x := playerMinX + s.rng.Float64()*(playerMaxX-playerMinX)
	s.Objects = append(s.Objects, Object{Pos: trace.Vec3{X: x, Z: spawnZ}, Kind: kind})
}

// Scene builds the raytracing objects for the current state: the corridor
// walls with scrolling patterns, the player sphere, and every coin and
// obstacle.
func (s *State) Scene() []trace.Object {
	objects := []trace.Object{
		// Floor, scrolling checkerboard.
		trace.CheckeredPlane{
			Point:       trace.Vec3{Y: -1.5},
			Normal:      trace.Vec3{Y: 1},
			Base:        trace.Color{R: 0.3, G: 0.3, B: 0.3},
			Alt:         trace.Color{R: 0.6, G: 0.6, B: 0.6},
			CheckerSize: 1.5,
			OffsetZ:     s.ZOffset,
		},
		// Left wall.
		trace.CheckeredPlane{
			Point:       trace.Vec3{X: -3},
			Normal:      trace.Vec3{X: 1},
			Base:        trace.Color{R: 0.4, G: 0.2, B: 0.2},
			Alt:         trace.Color{R: 0.6, G: 0.3, B: 0.3},
			CheckerSize: 1.0,
			OffsetZ:     s.ZOffset,
		},
		// Right wall.
		trace.CheckeredPlane{
			Point:       trace.Vec3{X: 3},
			Normal:      trace.Vec3{X: -1},
			Base:        trace.Color{R: 0.2, G: 0.2, B: 0.4},
			Alt:         trace.Color{R: 0.3, G: 0.3, B: 0.6},
			CheckerSize: 1.0,
			OffsetZ:     s.ZOffset,
		},
		// Ceiling.
		trace.CheckeredPlane{
			Point:       trace.Vec3{Y: 1.5},
			Normal:      trace.Vec3{Y: -1},
			Base:        trace.Color{R: 0.2, G: 0.2, B: 0.2},
			Alt:         trace.Color{R: 0.3, G: 0.3, B: 0.3},
			CheckerSize: 1.0,
			OffsetZ:     s.ZOffset,
		},
		// Player marker.
		trace.Sphere{
			Center: trace.Vec3{X: s.PlayerX, Y: -0.8, Z: -1.5},
			Radius: 0.35,
			Color:  trace.Color{R: 0.2, G: 1.0, B: 0.3},
		},
	}

	for _, obj := range s.Objects {
		switch obj.Kind {
		case Coin:
			objects = append(objects, trace.Sphere{Center: obj.Pos, Radius: 0.3, Color: trace.Color{R: 1.0, G: 0.9, B: 0.2}})
		case Obstacle:
			objects = append(objects, trace.Sphere{Center: obj.Pos, Radius: 0.4, Color: trace.Color{R: 1.0, G: 0.2, B: 0.2}})
		}
	}
	return objects
}
