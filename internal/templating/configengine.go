package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// ConfigEngineContext is the fully-prepared context for the
// configuration-engine inventory and playbook templates. InstanceIP is
// known only once Provision has reached its "fetch instance info" step,
// so this context cannot be built any earlier in the Provision sequence.
type ConfigEngineContext struct {
	Metadata

	InstanceIP     string
	SSHUsername    string
	PrivateKeyPath string
}

// NewConfigEngineContext prepares a ConfigEngineContext from validated
// inputs and the instance's freshly discovered IP address.
func NewConfigEngineContext(inputs userinput.UserInputs, instanceIP string, generatedAt time.Time) ConfigEngineContext {
	return ConfigEngineContext{
		Metadata:       newMetadata(generatedAt),
		InstanceIP:     instanceIP,
		SSHUsername:    inputs.SSHCredentials.Username.String(),
		PrivateKeyPath: inputs.SSHCredentials.PrivateKeyPath,
	}
}

// ConfigEngineGenerator renders the configuration-engine inventory and the
// two per-step playbooks (install_container_runtime, install_container_compose)
// that Configure invokes in order.
func ConfigEngineGenerator() Generator {
	return newGenerator("templates/config-engine",
		"templates/config-engine/inventory.ini.tmpl",
		"templates/config-engine/install-container-runtime.yml.tmpl",
		"templates/config-engine/install-container-compose.yml.tmpl",
		"templates/config-engine/wait-cloud-init.yml.tmpl",
	)
}
