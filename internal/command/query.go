package command

import (
	"context"
	"os"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// ShowHandler implements the read-only Show operation: returning the
// current persisted state of one environment without transitioning it.
type ShowHandler struct {
	deps Deps
}

// NewShowHandler constructs a ShowHandler.
func NewShowHandler(deps Deps) ShowHandler {
	return ShowHandler{deps: deps}
}

// Execute returns the named environment's current state document.
func (h ShowHandler) Execute(ctx context.Context, name string) (environment.AnyEnvironmentState, error) {
	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return environment.AnyEnvironmentState{}, err
	}
	if any == nil {
		return environment.AnyEnvironmentState{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}
	return *any, nil
}

// ListHandler implements the read-only List operation: every environment
// name with a persisted document.
type ListHandler struct {
	deps Deps
}

// NewListHandler constructs a ListHandler.
func NewListHandler(deps Deps) ListHandler {
	return ListHandler{deps: deps}
}

// Execute returns every persisted environment's name, sorted.
func (h ListHandler) Execute(ctx context.Context) ([]string, error) {
	return h.deps.Repo.List()
}

// ValidateHandler implements the read-only Validate operation: parsing and
// validating a creation-config file without touching the repository.
type ValidateHandler struct{}

// NewValidateHandler constructs a ValidateHandler.
func NewValidateHandler() ValidateHandler {
	return ValidateHandler{}
}

// Execute parses the YAML file at path, runs schema validation, and
// converts it to a UserInputs bundle, surfacing the first failure at
// whichever stage it occurs.
func (h ValidateHandler) Execute(ctx context.Context, path string) (ident.EnvironmentName, userinput.UserInputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ident.EnvironmentName{}, userinput.UserInputs{}, errkind.Wrap(errkind.NotFound, "failed to read configuration file "+path, err)
	}

	cfg, err := userinput.ParseEnvironmentCreationConfig(raw)
	if err != nil {
		return ident.EnvironmentName{}, userinput.UserInputs{}, err
	}

	name, err := ident.NewEnvironmentName(cfg.Environment.Name)
	if err != nil {
		return ident.EnvironmentName{}, userinput.UserInputs{}, err
	}

	inputs, err := cfg.ToUserInputs()
	if err != nil {
		return ident.EnvironmentName{}, userinput.UserInputs{}, err
	}

	return name, inputs, nil
}
