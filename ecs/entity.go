package ecs

import "strconv"

// Entity is a generational handle: the low 32 bits are the slot id, the high
// 32 bits the slot generation. Zero is never a live entity.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String renders the handle as id:generation, which is how entities show up
// in log fields.
func (e Entity) String() string {
	buf := strconv.AppendUint(nil, uint64(e.id()), 10)
	buf = append(buf, ':')
	return string(strconv.AppendUint(buf, uint64(e.generation()), 10))
}
