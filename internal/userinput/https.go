package userinput

import (
	"strings"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// HTTPSConfig configures the Caddy reverse proxy's ACME account: the email
// Let's Encrypt notifies, and whether to use its staging CA (avoids rate
// limits while iterating on a domain). Its presence in UserInputs is the
// prerequisite for any per-service domain/use_tls_proxy field to take
// effect; the reverse-proxy generator refuses to run without at least one
// TLS-enabled service regardless.
type HTTPSConfig struct {
	AdminEmail string `json:"admin_email"`
	UseStaging bool   `json:"use_staging"`
}

// NewHTTPSConfig validates and constructs an HTTPSConfig.
func NewHTTPSConfig(adminEmail string, useStaging bool) (HTTPSConfig, error) {
	if adminEmail == "" || !strings.Contains(adminEmail, "@") {
		return HTTPSConfig{}, errkind.New(errkind.Validation, "https admin_email must be a valid email address")
	}
	return HTTPSConfig{AdminEmail: adminEmail, UseStaging: useStaging}, nil
}
