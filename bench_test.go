package warehouse

import "testing"

type benchPosition struct{ X, Y float64 }
type benchVelocity struct{ X, Y float64 }

const (
	benchNPosVel = 10_000
	benchNPos    = 10_000
)

func BenchmarkCreateEntity(b *testing.B) {
	w := NewWorld()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.CreateEntity()
	}
}

func BenchmarkAddComponentMigration(b *testing.B) {
	w := NewWorld()
	entities := w.CreateEntities(b.N)
	b.ResetTimer()
	for _, e := range entities {
		Add(w, e, benchPosition{X: 1, Y: 2})
	}
}

func BenchmarkIterQuery2(b *testing.B) {
	b.StopTimer()
	w := NewWorld()
	for i := 0; i < benchNPosVel; i++ {
		e := w.CreateEntity()
		Add(w, e, benchPosition{})
		Add(w, e, benchVelocity{X: 1, Y: 1})
	}
	for i := 0; i < benchNPos; i++ {
		e := w.CreateEntity()
		Add(w, e, benchPosition{})
	}

	q := NewQuery2[benchPosition, benchVelocity](w)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		q.Begin()
		for q.Next() {
			pos := q.A()
			vel := q.B()
			pos.X += vel.X
			pos.Y += vel.Y
		}
		q.Close()
	}
}

func BenchmarkDestroyAndRecreate(b *testing.B) {
	w := NewWorld()
	entities := w.CreateEntities(1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e := entities[i%len(entities)]
		w.DestroyEntity(e)
		entities[i%len(entities)] = w.CreateEntity()
	}
}
