package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// ProvisionerContext is the fully-prepared context for the OpenTofu
// provisioner project template. Exactly one of the LXD-only or
// Hetzner-only fields is meaningful, selected by which subtree
// ProvisionerGenerator picked; the unused fields are simply left zero.
type ProvisionerContext struct {
	Metadata

	InstanceName string

	// LXD
	ProfileName string

	// Hetzner
	ServerType string
	Location   string
	Image      string
}

// NewProvisionerContext prepares a ProvisionerContext from validated inputs.
func NewProvisionerContext(inputs userinput.UserInputs, generatedAt time.Time) ProvisionerContext {
	ctx := ProvisionerContext{
		Metadata:     newMetadata(generatedAt),
		InstanceName: inputs.InstanceName.String(),
	}
	switch inputs.Provider.Method {
	case userinput.ProvisionMethodLXD:
		ctx.ProfileName = inputs.Provider.LXD.ProfileName.String()
	case userinput.ProvisionMethodHetzner:
		ctx.ServerType = inputs.Provider.Hetzner.ServerType
		ctx.Location = inputs.Provider.Hetzner.Location
		ctx.Image = inputs.Provider.Hetzner.Image
	}
	return ctx
}

// ProvisionerGenerator selects the lxd or hetzner template subtree
// matching the configured provision method.
func ProvisionerGenerator(method userinput.ProvisionMethod) (Generator, error) {
	switch method {
	case userinput.ProvisionMethodLXD:
		return newGenerator("templates/provisioner/lxd", "templates/provisioner/lxd/main.tf.tmpl"), nil
	case userinput.ProvisionMethodHetzner:
		return newGenerator("templates/provisioner/hetzner", "templates/provisioner/hetzner/main.tf.tmpl"), nil
	default:
		return Generator{}, errkind.New(errkind.TemplateRendering, "no provisioner template for method \""+string(method)+"\"")
	}
}
