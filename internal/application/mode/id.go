package mode

// ID identifies one of the nine top-level game modes.
type ID int

const (
	Start ID = iota + 1
	Options
	Play
	Pause
	Settings
	Menu
	Inventory
	Battle
	GameOver
)

// None is the zero ID, reported before any mode has been activated.
const None ID = 0

// String returns the string representation of the mode id
func (id ID) String() string {
	switch id {
	case None:
		return "None"
	case Start:
		return "Start"
	case Options:
		return "Options"
	case Play:
		return "Play"
	case Pause:
		return "Pause"
	case Settings:
		return "Settings"
	case Menu:
		return "Menu"
	case Inventory:
		return "Inventory"
	case Battle:
		return "Battle"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Valid reports whether id is one of the nine modes.
func (id ID) Valid() bool {
	return id >= Start && id <= GameOver
}

// All returns the nine modes in id order.
func All() []ID {
	return []ID{Start, Options, Play, Pause, Settings, Menu, Inventory, Battle, GameOver}
}
