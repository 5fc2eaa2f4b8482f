// Package userinput defines the deployer's typed configuration tree: the
// surface DTOs an operator writes as YAML, and the validated UserInputs
// bundle those DTOs convert into. Nothing downstream of UserInputs ever
// re-parses a string or re-checks a bound; conversion happens exactly once,
// here.
package userinput

import (
	"path/filepath"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
)

// SSHCredentials locates the keypair used to provision and configure the
// remote instance, plus the remote account they authenticate as.
//
// Key paths are validated for shape (absolute) at construction time; their
// existence on disk is checked only when a command actually needs to read
// them, since a freshly created environment may reference keys that are
// generated later.
type SSHCredentials struct {
	PrivateKeyPath string         `json:"private_key_path"`
	PublicKeyPath  string         `json:"public_key_path"`
	Username       ident.Username `json:"username"`
	Port           int            `json:"port"`
}

// NewSSHCredentials validates and constructs SSHCredentials.
func NewSSHCredentials(privateKeyPath, publicKeyPath, username string, port int) (SSHCredentials, error) {
	if !filepath.IsAbs(privateKeyPath) {
		return SSHCredentials{}, errkind.New(errkind.Validation, "ssh private_key_path must be an absolute path")
	}
	if !filepath.IsAbs(publicKeyPath) {
		return SSHCredentials{}, errkind.New(errkind.Validation, "ssh public_key_path must be an absolute path")
	}
	user, err := ident.NewUsername(username)
	if err != nil {
		return SSHCredentials{}, err
	}
	if port < 1 || port > 65535 {
		return SSHCredentials{}, errkind.New(errkind.Validation, "ssh port must be between 1 and 65535")
	}
	return SSHCredentials{
		PrivateKeyPath: privateKeyPath,
		PublicKeyPath:  publicKeyPath,
		Username:       user,
		Port:           port,
	}, nil
}
