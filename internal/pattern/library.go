package pattern

import (
	"fmt"
	"sort"
)

var library = map[string]string{
	"block":       "x = 2, y = 2\n2o$2o!",
	"blinker":     "x = 3, y = 1\n3o!",
	"toad":        "x = 4, y = 2\nb3o$3o!",
	"beacon":      "x = 4, y = 4\n2o$2o$2b2o$2b2o!",
	"glider":      "x = 3, y = 3\nbo$2bo$3o!",
	"lwss":        "x = 5, y = 4\nbo2bo$o4b$o3bo$4o!",
	"r_pentomino": "x = 3, y = 3\nb2o$2o$bo!",
	"acorn":       "x = 7, y = 3\nbo5b$3bo3b$2o2b3o!",
	"diehard":     "x = 8, y = 3\n6bob$2o6b$bo3b3o!",
	"pulsar": "x = 13, y = 13\n" +
		"2b3o3b3o2b2$o4bobo4bo$o4bobo4bo$o4bobo4bo$2b3o3b3o2b2$2b3o3b3o2b$" +
		"o4bobo4bo$o4bobo4bo$o4bobo4bo2$2b3o3b3o!",
	"gosper_gun": "x = 36, y = 9\n" +
		"24bo11b$22bobo11b$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o14b$" +
		"2o8bo3bob2o4bobo11b$10bo5bo7bo11b$11bo3bo20b$12b2o!",
}

// Lookup returns a fresh copy of a built-in pattern.
func Lookup(name string) (*Pattern, error) {
	src, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPattern, name, Names())
	}
	p, err := ParseRLE(src)
	if err != nil {
		return nil, fmt.Errorf("built-in %s: %w", name, err)
	}
	p.Name = name
	return p, nil
}

// Names lists the built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
