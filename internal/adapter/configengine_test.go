package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigEngineRunPlaybookInvokesBinaryWithInventoryAndPlaybook(t *testing.T) {
	t.Parallel()

	inventoryDir := t.TempDir()
	fake := writeFakeBinary(t, `echo "$@" > invocation.txt`)

	engine := NewConfigEngine(Runner{}, fake, inventoryDir)
	err := engine.RunPlaybook(context.Background(), "inventory.ini", "playbook.yml")
	require.NoError(t, err)

	recorded, err := os.ReadFile(filepath.Join(inventoryDir, "invocation.txt"))
	require.NoError(t, err)
	require.Contains(t, string(recorded), "-i inventory.ini playbook.yml")
}

func TestNewConfigEngineDefaultsBinary(t *testing.T) {
	t.Parallel()

	engine := NewConfigEngine(Runner{}, "", "/tmp/inventory")
	require.Equal(t, "ansible-playbook", engine.Binary)
}
