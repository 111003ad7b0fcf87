package bench

import (
	"testing"

	"github.com/TheBitDrifter/satchel"
)

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func newBenchWorld() (satchel.World, satchel.Kind[Position], satchel.Kind[Velocity]) {
	schema := satchel.Factory.NewSchema()
	position := satchel.FactoryNewKind[Position](schema, "Position")
	velocity := satchel.FactoryNewKind[Velocity](schema, "Velocity")
	world := satchel.Factory.NewWorld(schema, satchel.WithCapacity(nPos+nPosVel))

	for i := 0; i < nPosVel; i++ {
		world.Spawn(position.New(Position{}), velocity.New(Velocity{}))
	}
	for i := 0; i < nPos; i++ {
		world.Spawn(position.New(Position{}))
	}
	return world, position, velocity
}

func BenchmarkIterSatchelEach(b *testing.B) {
	b.StopTimer()

	world, position, velocity := newBenchWorld()
	view := satchel.NewMapMut2(position, velocity)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for pos, vel := range view.Each(world) {
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkIterSatchelGet(b *testing.B) {
	b.StopTimer()

	world, position, velocity := newBenchWorld()
	filter := satchel.All(position, velocity)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		for _, entity := range world.Query(filter) {
			pos := satchel.MustGetMut(entity, position)
			vel := satchel.MustGet(entity, velocity)

			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}
