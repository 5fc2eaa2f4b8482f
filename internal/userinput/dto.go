package userinput

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator instance used across this
// package's DTO schema checks.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// EnvironmentCreationConfig is the surface DTO an operator writes as YAML.
// It deserializes with go-playground/validator struct tags enforcing
// presence and shape, then converts to a validated UserInputs bundle via
// ToUserInputs.
type EnvironmentCreationConfig struct {
	Environment    EnvironmentSection     `yaml:"environment" validate:"required"`
	SSHCredentials SSHCredentialsSection  `yaml:"ssh_credentials" validate:"required"`
	Provider       ProviderSection        `yaml:"provider" validate:"required"`
	Tracker        TrackerSection         `yaml:"tracker" validate:"required"`
	HealthCheckAPI *HealthCheckAPISection `yaml:"health_check_api,omitempty"`
	Prometheus     *PrometheusSection     `yaml:"prometheus,omitempty"`
	Grafana        *GrafanaSection        `yaml:"grafana,omitempty"`
	HTTPS          *HTTPSSection          `yaml:"https,omitempty"`
	Backup         *BackupSection         `yaml:"backup,omitempty"`
}

// EnvironmentSection names the environment and its remote instance.
type EnvironmentSection struct {
	Name         string `yaml:"name" validate:"required"`
	InstanceName string `yaml:"instance_name" validate:"required"`
}

// SSHCredentialsSection is the DTO for SSHCredentials.
type SSHCredentialsSection struct {
	PrivateKeyPath string `yaml:"private_key_path" validate:"required"`
	PublicKeyPath  string `yaml:"public_key_path" validate:"required"`
	Username       string `yaml:"username" validate:"required"`
	Port           int    `yaml:"port"`
}

// ProviderSection is a tagged union decoded by its own UnmarshalYAML: "lxd"
// populates LXD, "hetzner" populates Hetzner.
type ProviderSection struct {
	Method  string          `yaml:"-"`
	LXD     *LXDSection     `yaml:"-"`
	Hetzner *HetznerSection `yaml:"-"`
}

// LXDSection is the DTO for LXDConfig.
type LXDSection struct {
	ProfileName string `yaml:"profile_name" validate:"required"`
}

// HetznerSection is the DTO for HetznerConfig.
type HetznerSection struct {
	APIToken   string `yaml:"api_token" validate:"required"`
	ServerType string `yaml:"server_type" validate:"required"`
	Location   string `yaml:"location" validate:"required"`
	Image      string `yaml:"image" validate:"required"`
}

// UnmarshalYAML decodes the tagged "method" discriminator and populates
// exactly one of LXD or Hetzner, mirroring the Step tagged-union decoding
// pattern used elsewhere in this codebase's ancestry.
func (p *ProviderSection) UnmarshalYAML(value *yaml.Node) error {
	var discriminator struct {
		Method string `yaml:"method"`
	}
	if err := value.Decode(&discriminator); err != nil {
		return err
	}

	p.Method = discriminator.Method
	p.LXD = nil
	p.Hetzner = nil

	switch discriminator.Method {
	case "lxd":
		var lxd LXDSection
		if err := value.Decode(&lxd); err != nil {
			return err
		}
		p.LXD = &lxd
	case "hetzner":
		var hetzner HetznerSection
		if err := value.Decode(&hetzner); err != nil {
			return err
		}
		p.Hetzner = &hetzner
	default:
		return errkind.New(errkind.Validation, "provider method \""+discriminator.Method+"\" is not recognized; expected \"lxd\" or \"hetzner\"")
	}
	return nil
}

// TrackerSection is the DTO for TrackerConfig.
type TrackerSection struct {
	Core         TrackerCoreSection   `yaml:"core" validate:"required"`
	UDPTrackers  []UDPTrackerSection  `yaml:"udp_trackers"`
	HTTPTrackers []HTTPTrackerSection `yaml:"http_trackers"`
	HTTPAPI      HTTPAPISection       `yaml:"http_api" validate:"required"`
}

// DatabaseSection is the DTO for DatabaseConfig.
type DatabaseSection struct {
	Driver       string `yaml:"driver" validate:"required,eq=sqlite3"`
	DatabaseName string `yaml:"database_name" validate:"required"`
}

// TrackerCoreSection is the DTO for TrackerCoreConfig.
type TrackerCoreSection struct {
	Database DatabaseSection `yaml:"database" validate:"required"`
	Private  bool            `yaml:"private"`
}

// UDPTrackerSection is the DTO for UDPTrackerConfig.
type UDPTrackerSection struct {
	BindAddress string `yaml:"bind_address" validate:"required"`
}

// HTTPTrackerSection is the DTO for HTTPTrackerConfig.
type HTTPTrackerSection struct {
	BindAddress string `yaml:"bind_address" validate:"required"`
	Domain      string `yaml:"domain,omitempty"`
	UseTLSProxy bool   `yaml:"use_tls_proxy,omitempty"`
}

// HTTPAPISection is the DTO for HTTPAPIConfig.
type HTTPAPISection struct {
	BindAddress string `yaml:"bind_address" validate:"required"`
	AdminToken  string `yaml:"admin_token" validate:"required"`
	Domain      string `yaml:"domain,omitempty"`
	UseTLSProxy bool   `yaml:"use_tls_proxy,omitempty"`
}

// HealthCheckAPISection is the DTO for HealthCheckAPIConfig.
type HealthCheckAPISection struct {
	BindAddress string `yaml:"bind_address" validate:"required"`
	Domain      string `yaml:"domain,omitempty"`
	UseTLSProxy bool   `yaml:"use_tls_proxy,omitempty"`
}

// DefaultHealthCheckAPISection mirrors the upstream default bind address.
func DefaultHealthCheckAPISection() HealthCheckAPISection {
	return HealthCheckAPISection{BindAddress: "127.0.0.1:1313"}
}

// PrometheusSection is the DTO for PrometheusConfig.
type PrometheusSection struct {
	ScrapeIntervalInSecs uint32 `yaml:"scrape_interval_in_secs"`
}

// GrafanaSection is the DTO for GrafanaConfig.
type GrafanaSection struct {
	AdminPassword string `yaml:"admin_password" validate:"required"`
	Domain        string `yaml:"domain,omitempty"`
	UseTLSProxy   bool   `yaml:"use_tls_proxy,omitempty"`
}

// HTTPSSection is the DTO for HTTPSConfig.
type HTTPSSection struct {
	AdminEmail string `yaml:"admin_email" validate:"required,email"`
	UseStaging bool   `yaml:"use_staging,omitempty"`
}

// BackupSection is the DTO for BackupConfig. Both fields default to the
// upstream backup defaults when the section is present but a field is
// omitted; YAML's zero value can't distinguish "omitted" from "explicit
// zero" for these, so ApplyDefaults must run before validation.
type BackupSection struct {
	Schedule      string `yaml:"schedule,omitempty"`
	RetentionDays uint32 `yaml:"retention_days,omitempty"`
}

// ApplyDefaults fills unset fields with the upstream backup defaults.
func (b *BackupSection) ApplyDefaults() {
	if b.Schedule == "" {
		b.Schedule = DefaultCronSchedule
	}
	if b.RetentionDays == 0 {
		b.RetentionDays = DefaultRetentionDays
	}
}

// ParseEnvironmentCreationConfig decodes raw YAML into an
// EnvironmentCreationConfig and runs schema validation, but does not yet
// convert to UserInputs (that conversion can still fail on cross-field
// rules ToUserInputs alone can check, e.g. socket address parsing).
func ParseEnvironmentCreationConfig(raw []byte) (EnvironmentCreationConfig, error) {
	var cfg EnvironmentCreationConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return EnvironmentCreationConfig{}, errkind.Wrap(errkind.Validation, "failed to parse environment configuration", err)
	}
	if cfg.Backup != nil {
		cfg.Backup.ApplyDefaults()
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return EnvironmentCreationConfig{}, errkind.Wrap(errkind.Validation, "environment configuration failed schema validation", err)
	}
	return cfg, nil
}
