package command

import (
	"context"
	"os"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// PurgeHandler implements the Purge command (§4.2.5): removing an
// environment's local data and build directories without touching any
// remote infrastructure. It carries no steps of its own; it is a single
// filesystem operation, not an orchestration of external collaborators.
type PurgeHandler struct {
	deps Deps
}

// NewPurgeHandler constructs a PurgeHandler.
func NewPurgeHandler(deps Deps) PurgeHandler {
	return PurgeHandler{deps: deps}
}

// Execute deletes the named environment's data and build directories. It
// accepts any persisted state, including Destroyed; it never reaches out
// to the remote instance or provider.
func (h PurgeHandler) Execute(ctx context.Context, name string) error {
	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return err
	}
	if any == nil {
		return errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}

	_, buildDir, templatesDir, _ := h.deps.Paths.ForEnvironment(name)

	// Repo.Delete removes the entire per-environment data directory
	// (environment.json and its traces) under the same advisory lock every
	// other command uses.
	if err := h.deps.Repo.Delete(name); err != nil {
		return err
	}
	if err := os.RemoveAll(buildDir); err != nil {
		return errkind.Wrap(errkind.Internal, "failed to remove build directory "+buildDir, err)
	}
	if err := os.RemoveAll(templatesDir); err != nil {
		return errkind.Wrap(errkind.Internal, "failed to remove templates directory "+templatesDir, err)
	}

	h.deps.logger().Info(ctx, "environment purged", "environment", name)
	return nil
}
