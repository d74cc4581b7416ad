package scene

import "fmt"

// Return a name that does not collide with any taken name: the prefix
// itself when free, otherwise the prefix suffixed with the smallest
// positive counter formatted to three digits ("x.001", "x.002", ...).
// Terminates for any finite set of taken names.
func NonConflictName(prefix string, taken func(string) bool) string {
	name := prefix
	for i := 1; taken(name); i++ {
		name = fmt.Sprintf("%s.%03d", prefix, i)
	}
	return name
}

// Allocate a free object name.
func (g *Graph) nonConflictObjectName(prefix string) string {
	return NonConflictName(prefix, func(name string) bool {
		_, exists := g.objects[name]
		return exists
	})
}

// Allocate a free property name.
func (g *Graph) nonConflictPropertyName(prefix string) string {
	return NonConflictName(prefix, func(name string) bool {
		_, exists := g.properties[name]
		return exists
	})
}
