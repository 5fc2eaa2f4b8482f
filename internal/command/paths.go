// Package command implements one handler type per lifecycle command
// (create, provision, configure, release, run, test, destroy, purge),
// each a small stateful orchestrator over the shared skeleton: load the
// source state, transition to the in-flight state and persist, run its
// steps while tracking which one is executing, then transition to the
// success or failed state and persist again.
package command

import "path/filepath"

// Paths computes the per-environment directory layout rooted at three
// configured base directories. data_dir holds persisted environment.json
// documents and their traces; build_dir holds rendered provisioner,
// configuration-engine, and service artifacts; templates_dir is recorded
// per environment and removed by purge, but templates are rendered directly
// from the embedded copy and are not written to it.
type Paths struct {
	DataDir      string
	BuildDir     string
	TemplatesDir string
}

// ForEnvironment returns the four per-environment directories a new
// environment.Base is constructed with.
func (p Paths) ForEnvironment(name string) (dataDir, buildDir, templatesDir, tracesDir string) {
	dataDir = filepath.Join(p.DataDir, name)
	buildDir = filepath.Join(p.BuildDir, name)
	templatesDir = filepath.Join(p.TemplatesDir, name)
	tracesDir = filepath.Join(dataDir, "traces")
	return dataDir, buildDir, templatesDir, tracesDir
}
