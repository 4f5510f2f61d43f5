package engine

import "math/rand"

// ShapeSource picks the kind of the next piece.
type ShapeSource interface {
	NextShape() Kind
}

// UniformSource draws every kind independently with equal probability.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a seeded uniform source.
func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// NextShape implements ShapeSource.
func (s *UniformSource) NextShape() Kind {
	return Kind(s.rng.Intn(ShapeCount))
}

// HighScoreStore persists the best score between sessions. Load returns 0
// when nothing usable is stored; Save is fire-and-forget and reports its
// own failures.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// MemoryHighScore keeps the high score in memory only.
type MemoryHighScore struct {
	Score int
	Saves int
}

// Load implements HighScoreStore.
func (m *MemoryHighScore) Load() int { return m.Score }

// Save implements HighScoreStore.
func (m *MemoryHighScore) Save(score int) {
	m.Score = score
	m.Saves++
}
