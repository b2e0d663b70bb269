package ecs

// store is the type-erased view the world keeps of each component table.
type store interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
}

// sparseSet keeps components densely packed in insertion order. Removal
// shifts the tail down so iteration order stays stable across ticks.
type sparseSet[T any] struct {
	sparse        map[Entity]int
	dense         []*T
	denseEntities []Entity
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{sparse: make(map[Entity]int)}
}

func (s *sparseSet[T]) set(e Entity, value *T) {
	if idx, ok := s.sparse[e]; ok {
		s.dense[idx] = value
		return
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, value)
	s.denseEntities = append(s.denseEntities, e)
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.sparse[e]
	if !ok {
		return nil, false
	}
	return s.dense[idx], true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.sparse[e]
	return ok
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.sparse[e]
	if !ok {
		return false
	}
	delete(s.sparse, e)
	s.dense = append(s.dense[:idx], s.dense[idx+1:]...)
	s.denseEntities = append(s.denseEntities[:idx], s.denseEntities[idx+1:]...)
	for i := idx; i < len(s.denseEntities); i++ {
		s.sparse[s.denseEntities[i]] = i
	}
	return true
}

func (s *sparseSet[T]) entities() []Entity {
	out := make([]Entity, len(s.denseEntities))
	copy(out, s.denseEntities)
	return out
}
