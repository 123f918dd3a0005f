package pokedex

// DefaultTypeColor is used for any type name without an entry in the table.
const DefaultTypeColor = "#888888"

// typeNames lists the canonical types in the order the filter cycles them.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var typeNames = []string{
	"normal", "fire", "water", "grass", "electric", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var typeColors = map[string]string{
	"normal":   "#A8A878",
	"fire":     "#F08030",
	"water":    "#6890F0",
	"grass":    "#78C850",
	"electric": "#F8D030",
	"ice":      "#98D8D8",
	"fighting": "#C03028",
	"poison":   "#A040A0",
	"ground":   "#E0C068",
	"flying":   "#A890F0",
	"psychic":  "#F85888",
	"bug":      "#A8B820",
	"rock":     "#B8A038",
	"ghost":    "#705898",
	"dragon":   "#7038F8",
	"dark":     "#705848",
	"steel":    "#B8B8D0",
	"fairy":    "#EE99AC",
}

// TypeColor maps a type name to its hex display colour. Unknown names map
// to DefaultTypeColor.
func TypeColor(name string) string {
	if c, ok := typeColors[name]; ok {
		return c
	}
	return DefaultTypeColor
}

// Types returns the canonical type names in display order.
func Types() []string {
	out := make([]string, len(typeNames))
	copy(out, typeNames)
	return out
}

// NextType returns the type filter value after current when cycling through
// "" followed by every canonical type. A negative step cycles backwards.
// Unknown values restart the cycle.
func NextType(current string, step int) string {
	// Position 0 is "all types".
	n := len(typeNames) + 1
	pos := 0
	for i, t := range typeNames {
		if t == current {
			pos = i + 1
			break
		}
	}

	pos = ((pos+step)%n + n) % n
	if pos == 0 {
		return ""
	}
	return typeNames[pos-1]
}
