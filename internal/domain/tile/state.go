package tile

// State is the color tag of a tile.
type State int

const (
	Empty State = iota
	Red
	Green
	Blue
	Cyan
)

var stateNames = [...]string{
	Empty: "empty",
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	Cyan:  "cyan",
}

func (s State) Valid() bool {
	return s >= Empty && s <= Cyan
}

func (s State) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stateNames[s]
}
