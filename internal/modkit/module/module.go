// Package module is the contract every mounted feature satisfies, the record of
// what got mounted and the typed lookup callers use to reach a module's ports
package module

import (
	phttp "faqbridge/internal/platform/net/http"
)

// Module is what modkit mounts
// it lives apart from the feature packages so a module can export its own Ports type without a cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// MountAll mounts each module's routes on r in order and records its name
// a repeated name panics since both would claim the same prefix
func MountAll(r phttp.Router, mods ...Module) {
	seen := make(map[string]bool, len(mods))
	for _, m := range mods {
		name := m.Name()
		if seen[name] {
			panic("module: duplicate module name " + name)
		}
		seen[name] = true
		global.Add(name)
		m.MountRoutes(r)
	}
}
