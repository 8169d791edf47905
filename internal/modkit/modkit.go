package modkit

import "github.com/promptandpause/promptandpause-sub003/internal/modkit/module"

// Module is the common surface for API modules that can mount routes and expose ports
type Module = module.Module
