// Package scripts contains the sample gameplay scripts used by the sandbox.
package scripts

import (
	"errors"

	"github.com/arcengine/arc"
)

// Register adds every sample script to reg under its type name.
func Register(reg *arc.ScriptRegistry) error {
	return errors.Join(
		reg.Register("Player", NewPlayer),
		reg.Register("Enemy", NewEnemy),
		reg.Register("Camera", NewCamera),
		reg.Register("Box", NewBox),
	)
}
