package userinput

import (
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
)

// ProvisionMethod names the infrastructure provisioner a ProviderConfig
// drives. It selects which OpenTofu template subtree a ProjectGenerator
// renders.
type ProvisionMethod string

const (
	ProvisionMethodLXD     ProvisionMethod = "lxd"
	ProvisionMethodHetzner ProvisionMethod = "hetzner"
)

// ProviderConfig is a closed, tagged union: exactly one of LXD or Hetzner is
// populated, selected by Method.
type ProviderConfig struct {
	Method  ProvisionMethod `json:"method"`
	LXD     *LXDConfig      `json:"lxd,omitempty"`
	Hetzner *HetznerConfig  `json:"hetzner,omitempty"`
}

// LXDConfig drives local provisioning via an LXD profile.
type LXDConfig struct {
	ProfileName ident.ProfileName `json:"profile_name"`
}

// HetznerConfig drives provisioning on Hetzner Cloud.
type HetznerConfig struct {
	APIToken   string `json:"api_token"`
	ServerType string `json:"server_type"`
	Location   string `json:"location"`
	Image      string `json:"image"`
}

func newUnrecognizedProviderError(method string) error {
	return errkind.New(errkind.Validation, "provider method \""+method+"\" is not recognized; expected \"lxd\" or \"hetzner\"")
}

// NewLXDProvider constructs a ProviderConfig backed by LXD.
func NewLXDProvider(profileName string) (ProviderConfig, error) {
	profile, err := ident.NewProfileName(profileName)
	if err != nil {
		return ProviderConfig{}, err
	}
	return ProviderConfig{Method: ProvisionMethodLXD, LXD: &LXDConfig{ProfileName: profile}}, nil
}

// NewHetznerProvider constructs a ProviderConfig backed by Hetzner Cloud.
func NewHetznerProvider(apiToken, serverType, location, image string) (ProviderConfig, error) {
	if apiToken == "" {
		return ProviderConfig{}, errkind.New(errkind.Validation, "hetzner api_token must not be empty")
	}
	if serverType == "" {
		return ProviderConfig{}, errkind.New(errkind.Validation, "hetzner server_type must not be empty")
	}
	if location == "" {
		return ProviderConfig{}, errkind.New(errkind.Validation, "hetzner location must not be empty")
	}
	if image == "" {
		return ProviderConfig{}, errkind.New(errkind.Validation, "hetzner image must not be empty")
	}
	return ProviderConfig{
		Method: ProvisionMethodHetzner,
		Hetzner: &HetznerConfig{
			APIToken:   apiToken,
			ServerType: serverType,
			Location:   location,
			Image:      image,
		},
	}, nil
}
