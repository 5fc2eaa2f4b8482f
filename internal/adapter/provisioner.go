package adapter

import (
	"context"
	"encoding/json"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// Provisioner wraps the OpenTofu-compatible binary invoked against a
// generated project directory. It does not interpret output beyond parsing
// the `output -json` payload; step implementations decide what the parsed
// outputs mean.
type Provisioner struct {
	Runner     Runner
	Binary     string // e.g. "tofu"
	ProjectDir string
}

// NewProvisioner constructs a Provisioner. binary defaults to "tofu" when
// empty.
func NewProvisioner(runner Runner, binary, projectDir string) Provisioner {
	if binary == "" {
		binary = "tofu"
	}
	return Provisioner{Runner: runner, Binary: binary, ProjectDir: projectDir}
}

// Init runs `tofu init`.
func (p Provisioner) Init(ctx context.Context) error {
	_, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "init")
	return err
}

// Validate runs `tofu validate`, a syntactic check only.
func (p Provisioner) Validate(ctx context.Context) error {
	_, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "validate")
	return err
}

// Plan runs `tofu plan`.
func (p Provisioner) Plan(ctx context.Context) error {
	_, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "plan")
	return err
}

// Apply runs `tofu apply -auto-approve`.
func (p Provisioner) Apply(ctx context.Context) error {
	_, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "apply", "-auto-approve")
	return err
}

// Destroy runs `tofu destroy -auto-approve`.
func (p Provisioner) Destroy(ctx context.Context) error {
	_, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "destroy", "-auto-approve")
	return err
}

// Outputs runs `tofu output -json` and decodes the result into a generic
// map; callers index into it for the fields they expect (e.g.
// "instance_ip").
func (p Provisioner) Outputs(ctx context.Context) (map[string]TofuOutput, error) {
	result, err := p.Runner.Run(ctx, p.ProjectDir, p.Binary, "output", "-json")
	if err != nil {
		return nil, err
	}
	var outputs map[string]TofuOutput
	if jsonErr := json.Unmarshal([]byte(result.Stdout), &outputs); jsonErr != nil {
		return nil, errkind.Wrap(errkind.CommandExecution, "failed to parse tofu output -json", jsonErr)
	}
	return outputs, nil
}

// TofuOutput is one entry of `tofu output -json`'s root object.
type TofuOutput struct {
	Value     any  `json:"value"`
	Type      any  `json:"type"`
	Sensitive bool `json:"sensitive"`
}
