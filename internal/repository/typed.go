package repository

import "github.com/torrust/tracker-deploy/internal/environment"

// Typed wraps a Repository and exposes one Save method per lifecycle
// state, named after the state, so a command handler cannot accidentally
// persist the wrong variant under an environment's name: the compiler
// enforces that a Save<State> call only ever accepts that state's struct.
type Typed struct {
	repo *Repository
}

// NewTyped wraps repo in a Typed facade.
func NewTyped(repo *Repository) *Typed {
	return &Typed{repo: repo}
}

func (t *Typed) SaveCreated(e environment.Created) error {
	return t.repo.Save(e.Name.String(), environment.CreatedToAny(e))
}

func (t *Typed) SaveProvisioning(e environment.Provisioning) error {
	return t.repo.Save(e.Name.String(), environment.ProvisioningToAny(e))
}

func (t *Typed) SaveProvisioned(e environment.Provisioned) error {
	return t.repo.Save(e.Name.String(), environment.ProvisionedToAny(e))
}

func (t *Typed) SaveProvisionFailed(e environment.ProvisionFailed) error {
	return t.repo.Save(e.Name.String(), environment.ProvisionFailedToAny(e))
}

func (t *Typed) SaveConfiguring(e environment.Configuring) error {
	return t.repo.Save(e.Name.String(), environment.ConfiguringToAny(e))
}

func (t *Typed) SaveConfigured(e environment.Configured) error {
	return t.repo.Save(e.Name.String(), environment.ConfiguredToAny(e))
}

func (t *Typed) SaveConfigureFailed(e environment.ConfigureFailed) error {
	return t.repo.Save(e.Name.String(), environment.ConfigureFailedToAny(e))
}

func (t *Typed) SaveReleasing(e environment.Releasing) error {
	return t.repo.Save(e.Name.String(), environment.ReleasingToAny(e))
}

func (t *Typed) SaveReleased(e environment.Released) error {
	return t.repo.Save(e.Name.String(), environment.ReleasedToAny(e))
}

func (t *Typed) SaveReleaseFailed(e environment.ReleaseFailed) error {
	return t.repo.Save(e.Name.String(), environment.ReleaseFailedToAny(e))
}

func (t *Typed) SaveRunning(e environment.Running) error {
	return t.repo.Save(e.Name.String(), environment.RunningToAny(e))
}

func (t *Typed) SaveRunFailed(e environment.RunFailed) error {
	return t.repo.Save(e.Name.String(), environment.RunFailedToAny(e))
}

func (t *Typed) SaveDestroying(e environment.Destroying) error {
	return t.repo.Save(e.Name.String(), environment.DestroyingToAny(e))
}

func (t *Typed) SaveDestroyed(e environment.Destroyed) error {
	return t.repo.Save(e.Name.String(), environment.DestroyedToAny(e))
}

func (t *Typed) SaveDestroyFailed(e environment.DestroyFailed) error {
	return t.repo.Save(e.Name.String(), environment.DestroyFailedToAny(e))
}

// LoadAny loads the raw tagged-union document for name, or (nil, nil) if no
// such environment exists. Callers narrow via its TryInto<State> methods.
func (t *Typed) LoadAny(name string) (*environment.AnyEnvironmentState, error) {
	return t.repo.Load(name)
}

// Exists reports whether an environment document exists for name.
func (t *Typed) Exists(name string) (bool, error) {
	return t.repo.Exists(name)
}

// Delete removes the named environment's entire on-disk directory.
func (t *Typed) Delete(name string) error {
	return t.repo.Delete(name)
}

// List returns every environment name with a persisted document.
func (t *Typed) List() ([]string, error) {
	return t.repo.List()
}
