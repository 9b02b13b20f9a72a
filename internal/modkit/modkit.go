// Package modkit holds what every API module shares: deps, build options and the mounting base
package modkit

import "faqbridge/internal/modkit/module"

// Module is the contract api.Mount expects from each feature
type Module = module.Module
