package ecs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/piggy/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
			}
		})
	}
}

func TestWorldRecycledSlotInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if old.id() != fresh.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", old.id(), fresh.id())
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if !IsAlive(w, fresh) {
		t.Fatalf("fresh handle should be alive")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { v := 10; return Add(w, e1, ints.Kind(), &v) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				a, b := "a", "b"
				if err := Add(w, e1, strs.Kind(), &a); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), &b)
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
		},
		{
			name:  "replace_int",
			setup: func() error { v := 11; return Add(w, e1, ints.Kind(), &v) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e1, ints.Kind()); *v != 11 {
					t.Fatalf("expected replacement value 11, got %d", *v)
				}
			},
		},
		{
			name:  "remove_str_from_e1",
			setup: func() error { Remove(w, e1, strs.Kind()); return nil },
			check: func(t *testing.T) {
				if Has(w, e1, strs.Kind()) {
					t.Fatalf("string component should be gone from e1")
				}
				if !Has(w, e2, strs.Kind()) {
					t.Fatalf("e2 should keep its string component")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	e := CreateEntity(w)
	v := 1

	if err := Add(w, e, ints.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, &v); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, ints.Kind(), &v); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldIterationOrderIsStable(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	flags := component.NewComponent[bool]()

	var ents []Entity
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		v := i
		_ = Add(w, e, ints.Kind(), &v)
		if i%2 == 0 {
			f := true
			_ = Add(w, e, flags.Kind(), &f)
		}
		ents = append(ents, e)
	}
	DestroyEntity(w, ents[1])

	var got []int
	ForEach(w, ints.Kind(), func(_ Entity, v *int) { got = append(got, *v) })
	if want := []int{0, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = got[:0]
	ForEach2(w, ints.Kind(), flags.Kind(), func(_ Entity, v *int, _ *bool) { got = append(got, *v) })
	if want := []int{0, 2, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	first, ok := First(w, ints.Kind())
	if !ok || first != ents[0] {
		t.Fatalf("expected first entity %v, got %v ok=%v", ents[0], first, ok)
	}
}

type countingSystem struct {
	ticks  int
	events int
}

func (s *countingSystem) Update(w *World) {
	s.ticks++
	s.events += w.Events().Len()
	w.Events().Push(Event{Type: EventCollected})
}

func TestSchedulerFlushesEventsAfterTick(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	s := NewScheduler(sys)

	s.Update(w)
	s.Update(w)

	if sys.ticks != 2 {
		t.Fatalf("expected 2 ticks, got %d", sys.ticks)
	}
	if sys.events != 0 {
		t.Fatalf("events should not leak into the next tick, saw %d", sys.events)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after Update")
	}
}

func TestEntityStringShowsSlotAndGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if got := first.String(); got != "1:0" {
		t.Fatalf("expected 1:0, got %q", got)
	}

	DestroyEntity(w, first)
	reused := CreateEntity(w)
	if got := reused.String(); got != "1:1" {
		t.Fatalf("expected recycled slot 1:1, got %q", got)
	}
	if reused == first {
		t.Fatalf("recycled entity should differ from the destroyed one")
	}
}
