package theme

import (
	"fmt"
	"sort"
	"sync"

	apperrors "chiptextfield/internal/errors"
)

// DefaultName is the palette selected when nothing else is configured.
const DefaultName = "tokyonight"

var registry = &palettes{
	byName: make(map[string]Palette),
}

type palettes struct {
	mu          sync.RWMutex
	byName      map[string]Palette
	currentName string
	current     Palette
}

// Register adds a palette under name. The first registered palette becomes
// the current one.
func Register(name string, p Palette) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	_, existed := registry.byName[name]
	registry.byName[name] = p
	if registry.currentName == "" || (existed && registry.currentName == name) {
		registry.currentName = name
		registry.current = p
	}
}

// SetTheme switches to a registered palette by name.
// Returns true if the palette was found and set.
func SetTheme(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if p, ok := registry.byName[name]; ok {
		registry.currentName = name
		registry.current = p
		return true
	}
	return false
}

// Select is SetTheme with a structured error for unknown names.
func Select(name string) error {
	if SetTheme(name) {
		return nil
	}
	return apperrors.New(apperrors.CodeUnknownTheme,
		fmt.Sprintf("unknown theme %q (available: %v)", name, Available()), nil)
}

// Current returns the active palette.
func Current() Palette {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// CurrentName returns the name of the active palette.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.currentName
}

// Lookup returns the palette registered under name.
func Lookup(name string) (Palette, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	p, ok := registry.byName[name]
	return p, ok
}

// Available returns all registered names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedNames()
}

// CycleTheme switches to the next palette in sorted order and returns its name.
func CycleTheme() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := names[0]
	for i, name := range names {
		if name == registry.currentName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	registry.currentName = next
	registry.current = registry.byName[next]
	return next
}

func sortedNames() []string {
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
