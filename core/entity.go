package core

import "fmt"

// Entity is a generation-checked handle into the world's entity arena
// Low 32 bits hold the slot index, high 32 bits hold the slot generation
// A handle whose generation no longer matches its slot resolves to "absent"
type Entity uint64

// NoEntity is the zero handle; never issued by the arena
const NoEntity Entity = 0

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether the handle is NoEntity
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	return fmt.Sprintf("%d/%d", e.Index(), e.Generation())
}
