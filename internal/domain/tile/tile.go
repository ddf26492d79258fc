package tile

// NoNeighbor marks an empty neighbor slot.
const NoNeighbor = -1

// Arity is the fixed number of neighbor slots, ordered clockwise.
const Arity = 5

type Node struct {
	Neighbors [Arity]int `json:"neighbors" bson:"neighbors" validate:"dive,min=-1,max=20"`
	State     State      `json:"state" bson:"state" validate:"min=0,max=4"`
}

// Map is indexed by node id.
type Map []Node

// Degree returns the number of populated neighbor slots of node id.
func (m Map) Degree(id int) int {
	degree := 0
	for _, n := range m[id].Neighbors {
		if n != NoNeighbor {
			degree++
		}
	}
	return degree
}

func (m Map) HasEdge(from, to int) bool {
	for _, n := range m[from].Neighbors {
		if n == to {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	copy(out, m)
	return out
}
