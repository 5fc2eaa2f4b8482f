package userinput

import "github.com/torrust/tracker-deploy/internal/ident"

// UserInputs is the validated configuration bundle every command handler
// consumes. It is immutable after construction: every field was already
// validated and converted from its surface DTO by the time UserInputs
// exists, so downstream code never re-parses or re-checks a bound.
type UserInputs struct {
	SSHCredentials SSHCredentials        `json:"ssh_credentials"`
	Provider       ProviderConfig        `json:"provider"`
	InstanceName   ident.InstanceName    `json:"instance_name"`
	Tracker        TrackerConfig         `json:"tracker"`
	HealthCheckAPI *HealthCheckAPIConfig `json:"health_check_api,omitempty"`
	Prometheus     *PrometheusConfig     `json:"prometheus,omitempty"`
	Grafana        *GrafanaConfig        `json:"grafana,omitempty"`
	HTTPS          *HTTPSConfig          `json:"https,omitempty"`
	Backup         *BackupConfig         `json:"backup,omitempty"`
}

// New constructs a UserInputs bundle from already-validated parts. Optional
// sections are passed as nil to mean "not configured".
func New(
	sshCredentials SSHCredentials,
	provider ProviderConfig,
	instanceName ident.InstanceName,
	tracker TrackerConfig,
	healthCheckAPI *HealthCheckAPIConfig,
	prometheus *PrometheusConfig,
	grafana *GrafanaConfig,
	https *HTTPSConfig,
	backup *BackupConfig,
) UserInputs {
	return UserInputs{
		SSHCredentials: sshCredentials,
		Provider:       provider,
		InstanceName:   instanceName,
		Tracker:        tracker,
		HealthCheckAPI: healthCheckAPI,
		Prometheus:     prometheus,
		Grafana:        grafana,
		HTTPS:          https,
		Backup:         backup,
	}
}

// HasBackup reports whether automated backups are configured. Gates the
// Release command's backup-provisioning substeps.
func (u UserInputs) HasBackup() bool { return u.Backup != nil }

// HasPrometheus reports whether metrics scraping is configured. Gates the
// Release command's Prometheus-provisioning substeps.
func (u UserInputs) HasPrometheus() bool { return u.Prometheus != nil }

// HasGrafana reports whether the Grafana dashboard is configured. Gates the
// Release command's Grafana-provisioning substeps.
func (u UserInputs) HasGrafana() bool { return u.Grafana != nil }

// HasAnyTLS reports whether at least one service is configured to be
// reachable via the HTTPS reverse proxy. The reverse-proxy template
// generator refuses to run when this is false.
func (u UserInputs) HasAnyTLS() bool {
	if u.HTTPS == nil {
		return false
	}
	if u.Tracker.HTTPAPI.UseTLSProxy {
		return true
	}
	if u.HealthCheckAPI != nil && u.HealthCheckAPI.UseTLSProxy {
		return true
	}
	if u.Grafana != nil && u.Grafana.UseTLSProxy {
		return true
	}
	for _, httpTracker := range u.Tracker.HTTPTrackers {
		if httpTracker.UseTLSProxy {
			return true
		}
	}
	return false
}

// UsesMySQL reports whether the tracker's core database is MySQL. Currently
// always false: only SQLite is supported, but command handlers gate their
// MySQL-storage-provisioning substep on this predicate so a second driver
// can be added without touching the gate logic.
func (u UserInputs) UsesMySQL() bool { return false }
