package adapter

import "context"

// ConfigEngine wraps the Ansible-compatible playbook runner, invoked
// against a generated inventory and a rendered playbook file. Playbooks are
// written to be idempotent; a run that reports "already done" is a normal
// success, not an error the adapter needs to special-case.
type ConfigEngine struct {
	Runner       Runner
	Binary       string // e.g. "ansible-playbook"
	InventoryDir string
}

// NewConfigEngine constructs a ConfigEngine. binary defaults to
// "ansible-playbook" when empty.
func NewConfigEngine(runner Runner, binary, inventoryDir string) ConfigEngine {
	if binary == "" {
		binary = "ansible-playbook"
	}
	return ConfigEngine{Runner: runner, Binary: binary, InventoryDir: inventoryDir}
}

// RunPlaybook invokes the engine against playbookPath using the inventory
// at inventoryPath.
func (c ConfigEngine) RunPlaybook(ctx context.Context, inventoryPath, playbookPath string) error {
	_, err := c.Runner.Run(ctx, c.InventoryDir, c.Binary, "-i", inventoryPath, playbookPath)
	return err
}
