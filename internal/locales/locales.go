// Package locales builds the capability graphs that ship with the module.
package locales

import "github.com/goliatone/go-datagen/pkg/provider"

// Builtin returns a registry preloaded with every locale graph bundled with
// the module. Callers may register additional locales before starting a run.
func Builtin() *provider.Registry {
	registry := provider.NewRegistry()
	registry.MustRegister("en", newEnglish())
	return registry
}
