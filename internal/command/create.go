package command

import (
	"context"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// CreateHandler implements the Create command (§4.2.1): it has no steps
// and no external side effects besides the environment's own directory,
// so it skips the in-flight "-ing" transition the other commands use.
type CreateHandler struct {
	deps Deps
}

// NewCreateHandler constructs a CreateHandler.
func NewCreateHandler(deps Deps) CreateHandler {
	return CreateHandler{deps: deps}
}

// Execute creates a fresh environment named name from inputs. It fails
// AlreadyExists if name is already taken.
func (h CreateHandler) Execute(ctx context.Context, name ident.EnvironmentName, inputs userinput.UserInputs) (environment.Created, error) {
	exists, err := h.deps.Repo.Exists(name.String())
	if err != nil {
		return environment.Created{}, err
	}
	if exists {
		return environment.Created{}, errkind.New(errkind.AlreadyExists, "environment \""+name.String()+"\" already exists")
	}

	dataDir, buildDir, templatesDir, tracesDir := h.deps.Paths.ForEnvironment(name.String())

	created := environment.Created{Base: environment.Base{
		Name:         name,
		InstanceName: inputs.InstanceName,
		UserInputs:   inputs,
		CreatedAt:    h.deps.clockNow(),
		BuildDir:     buildDir,
		DataDir:      dataDir,
		TemplatesDir: templatesDir,
		TracesDir:    tracesDir,
	}}

	if err := h.deps.Repo.SaveCreated(created); err != nil {
		return environment.Created{}, err
	}

	h.deps.logger().Info(ctx, "environment created", "environment", name.String())
	return created, nil
}
