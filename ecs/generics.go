package ecs

import "github.com/milk9111/piggy/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops e and all of its components. It returns false when e
// was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, len(w.entities.order))
	copy(out, w.entities.order)
	return out
}

// Add attaches value to e, replacing any previous component of the kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	table(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := table(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := table(w, kind, false)
	return s != nil && s.has(e)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := table(w, kind, false)
	return s != nil && s.remove(e)
}

// ForEach visits every entity holding kind in insertion order. The entity
// list is snapshotted first, so fn may add or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := table(w, kind, false)
	if s == nil {
		return
	}
	for _, e := range s.entities() {
		if v, ok := s.get(e); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds, in the order of the first.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := table(w, ka, false)
	sb := table(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range sa.entities() {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// First returns the earliest entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := table(w, kind, false)
	if s == nil || len(s.denseEntities) == 0 {
		return 0, false
	}
	return s.denseEntities[0], true
}
