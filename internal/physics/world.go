package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeFloor
	collisionTypeObstacle
)

const obstacleMass = 1.0

// Options sizes the world and its bodies.
type Options struct {
	Width       float64 // Play area width
	Height      float64 // Play area height; the floor sits on this line
	Gravity     float64 // Downward acceleration in units/tick²
	Iterations  int     // Solver iterations per step
	BallRadius  float64
	FloorHeight float64
	ObstacleW   float64
	ObstacleH   float64
}

// World is the body registry and stepper for one session.
// It is not safe for concurrent use; a single driver owns it.
type World struct {
	space         *cp.Space
	opts          Options
	handlersReady bool

	nextID    BodyID
	entries   map[BodyID]*entry
	order     []BodyID
	shapes    map[*cp.Shape]BodyID
	ball      BodyID
	floor     BodyID
	obstacles []BodyID

	pending []CollisionEvent
}

type entry struct {
	id          BodyID
	kind        Kind
	body        *cp.Body
	shape       *cp.Shape
	def         Shape
	static      bool
	frozen      bool
	airFriction float64
}

// NewWorld creates an empty world with constant downward gravity.
func NewWorld(opts Options) *World {
	if opts.Iterations < 1 {
		opts.Iterations = 10
	}
	space := cp.NewSpace()
	space.Iterations = uint(opts.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})

	w := &World{
		space:   space,
		opts:    opts,
		entries: make(map[BodyID]*entry),
		shapes:  make(map[*cp.Shape]BodyID),
	}
	w.ensureHandlers()
	return w
}

// Options returns the options the world was built with.
func (w *World) Options() Options {
	return w.opts
}

// CreateBall adds the player ball at (x, y). The ball is kinematic: only
// SetPosition moves it. A world holds one ball; later calls return it.
func (w *World) CreateBall(x, y float64) BodyID {
	if w.ball != 0 {
		return w.ball
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, w.opts.BallRadius, cp.Vector{})
	shape.SetCollisionType(collisionTypeBall)

	w.ball = w.add(&entry{
		kind:   KindBall,
		body:   body,
		shape:  shape,
		def:    Shape{Kind: ShapeCircle, Radius: w.opts.BallRadius},
		static: true,
	})
	return w.ball
}

// CreateFloor adds the floor sensor: a width × FloorHeight box centred on
// the bottom edge of the play area. Obstacles fall through it.
func (w *World) CreateFloor(width float64) BodyID {
	if w.floor != 0 {
		return w.floor
	}
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: width / 2, Y: w.opts.Height})
	shape := cp.NewBox(body, width, w.opts.FloorHeight, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeFloor)

	w.floor = w.add(&entry{
		kind:   KindFloor,
		body:   body,
		shape:  shape,
		def:    Shape{Kind: ShapeRect, W: width, H: w.opts.FloorHeight},
		static: true,
	})
	return w.floor
}

// CreateObstacles adds count dynamic obstacles at the origin. Callers are
// expected to position them before the first step. The obstacle set is
// fixed once created; later calls return the existing ids.
func (w *World) CreateObstacles(count int) []BodyID {
	if len(w.obstacles) > 0 || count <= 0 {
		return w.Obstacles()
	}
	for i := 0; i < count; i++ {
		e := &entry{
			kind: KindObstacle,
			def:  Shape{Kind: ShapeRect, W: w.opts.ObstacleW, H: w.opts.ObstacleH},
		}
		body := cp.NewBody(obstacleMass, cp.MomentForBox(obstacleMass, w.opts.ObstacleW, w.opts.ObstacleH))
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			if e.frozen {
				b.SetVelocity(0, 0)
				b.SetAngularVelocity(0)
				return
			}
			cp.BodyUpdateVelocity(b, gravity, damping*math.Pow(1-e.airFriction, dt), dt)
		})
		body.SetPositionUpdateFunc(func(b *cp.Body, dt float64) {
			if e.frozen {
				return
			}
			cp.BodyUpdatePosition(b, dt)
		})
		shape := cp.NewBox(body, w.opts.ObstacleW, w.opts.ObstacleH, 0)
		shape.SetCollisionType(collisionTypeObstacle)

		e.body = body
		e.shape = shape
		w.obstacles = append(w.obstacles, w.add(e))
	}
	return w.Obstacles()
}

func (w *World) add(e *entry) BodyID {
	w.nextID++
	e.id = w.nextID
	w.space.AddBody(e.body)
	w.space.AddShape(e.shape)
	w.entries[e.id] = e
	w.order = append(w.order, e.id)
	w.shapes[e.shape] = e.id
	return e.id
}

// Ball returns the ball id, or zero before CreateBall.
func (w *World) Ball() BodyID {
	return w.ball
}

// Floor returns the floor id, or zero before CreateFloor.
func (w *World) Floor() BodyID {
	return w.floor
}

// Obstacles returns the obstacle ids in creation order.
func (w *World) Obstacles() []BodyID {
	return append([]BodyID(nil), w.obstacles...)
}

// Body returns a snapshot of a body.
func (w *World) Body(id BodyID) (Body, bool) {
	e, ok := w.entries[id]
	if !ok {
		return Body{}, false
	}
	return e.snapshot(), true
}

// Bodies returns snapshots of every body in creation order.
func (w *World) Bodies() []Body {
	out := make([]Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entries[id].snapshot())
	}
	return out
}

// Kind returns the kind of a body, or KindUnknown.
func (w *World) Kind(id BodyID) Kind {
	if e, ok := w.entries[id]; ok {
		return e.kind
	}
	return KindUnknown
}

// SetPosition moves a body's centre to (x, y). Unknown ids are ignored.
// The floor stays where CreateFloor put it.
func (w *World) SetPosition(id BodyID, x, y float64) bool {
	e, ok := w.entries[id]
	if !ok || e.kind == KindFloor {
		return false
	}
	e.body.SetPosition(cp.Vector{X: x, Y: y})
	return true
}

// SetVelocity overwrites the velocity of a dynamic body.
func (w *World) SetVelocity(id BodyID, vx, vy float64) bool {
	e, ok := w.entries[id]
	if !ok || e.static {
		return false
	}
	e.body.SetVelocity(vx, vy)
	if vx == 0 && vy == 0 {
		e.body.SetAngularVelocity(0)
	}
	return true
}

// SetAirFriction sets the per-tick velocity damping of an obstacle.
func (w *World) SetAirFriction(id BodyID, f float64) bool {
	e, ok := w.entries[id]
	if !ok || e.kind != KindObstacle {
		return false
	}
	e.airFriction = core.ClampF(f, 0, 1)
	return true
}

// SetFrozen holds a body in place (frozen) or releases it. Frozen bodies
// keep their position and have zero velocity on every step.
func (w *World) SetFrozen(id BodyID, frozen bool) bool {
	e, ok := w.entries[id]
	if !ok || e.static {
		return false
	}
	e.frozen = frozen
	if frozen {
		e.body.SetVelocity(0, 0)
		e.body.SetAngularVelocity(0)
	}
	return true
}

// Step advances the simulation by dt ticks and returns the collisions that
// began during the step. dt <= 0 does nothing.
func (w *World) Step(dt float64) []CollisionEvent {
	if w == nil || w.space == nil || dt <= 0 {
		return nil
	}
	w.ensureHandlers()
	w.pending = nil
	w.space.Step(dt)
	events := w.pending
	w.pending = nil
	return events
}

// Destroy removes every body from the space. The world is unusable afterwards.
func (w *World) Destroy() {
	if w == nil || w.space == nil {
		return
	}
	for _, id := range w.order {
		e := w.entries[id]
		w.space.RemoveShape(e.shape)
		w.space.RemoveBody(e.body)
	}
	w.entries = make(map[BodyID]*entry)
	w.shapes = make(map[*cp.Shape]BodyID)
	w.order = nil
	w.obstacles = nil
	w.ball, w.floor = 0, 0
	w.space = nil
}

func (w *World) ensureHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}

	record := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		idA, okA := world.shapes[shapeA]
		idB, okB := world.shapes[shapeB]
		if !okA || !okB {
			return true
		}
		world.pending = append(world.pending, CollisionEvent{
			A: BodyRef{ID: idA, Kind: world.entries[idA].kind},
			B: BodyRef{ID: idB, Kind: world.entries[idB].kind},
		})
		return true
	}

	floorHandler := w.space.NewCollisionHandler(collisionTypeFloor, collisionTypeObstacle)
	floorHandler.UserData = w
	floorHandler.BeginFunc = record

	ballHandler := w.space.NewCollisionHandler(collisionTypeBall, collisionTypeObstacle)
	ballHandler.UserData = w
	ballHandler.BeginFunc = record

	w.handlersReady = true
}

func (e *entry) snapshot() Body {
	pos := e.body.Position()
	b := Body{
		ID:          e.id,
		Kind:        e.kind,
		Position:    core.Vec{X: pos.X, Y: pos.Y},
		Angle:       e.body.Angle(),
		Shape:       e.def,
		Static:      e.static,
		Frozen:      e.frozen,
		AirFriction: e.airFriction,
	}
	if e.body.GetType() == cp.BODY_DYNAMIC {
		v := e.body.Velocity()
		b.Velocity = core.Vec{X: v.X, Y: v.Y}
	}
	return b
}
