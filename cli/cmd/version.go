package cmd

import (
	"context"

	"github.com/ardnew/buildfile/pkg"
)

// Version prints the program name and version.
type Version struct{}

// Run executes the version command.
func (Version) Run(_ context.Context, env *Env) error {
	return env.write([]byte(pkg.Name + " " + pkg.Version() + "\n"))
}
