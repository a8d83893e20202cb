package ecs

// mask is a fixed 32-bit membership set. Entities use one instance indexed by
// TypeID for component presence and one indexed by GroupID for groups.
type mask uint32

func (m *mask) set(bit uint8) {
	*m |= 1 << bit
}

func (m *mask) unset(bit uint8) {
	*m &^= 1 << bit
}

func (m mask) has(bit uint8) bool {
	return m&(1<<bit) != 0
}
