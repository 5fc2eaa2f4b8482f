package userinput

import (
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
)

// PrometheusConfig is optional: its absence from UserInputs disables
// metrics scraping for the environment entirely (§ Release gates).
type PrometheusConfig struct {
	ScrapeIntervalInSecs uint32 `json:"scrape_interval_in_secs"`
}

// DefaultPrometheusConfig mirrors the upstream default of a 15 second scrape
// interval.
func DefaultPrometheusConfig() PrometheusConfig {
	return PrometheusConfig{ScrapeIntervalInSecs: 15}
}

// NewPrometheusConfig validates and constructs a PrometheusConfig.
func NewPrometheusConfig(scrapeIntervalInSecs uint32) (PrometheusConfig, error) {
	if scrapeIntervalInSecs == 0 {
		return PrometheusConfig{}, errkind.New(errkind.Validation, "prometheus scrape_interval_in_secs must be greater than 0")
	}
	return PrometheusConfig{ScrapeIntervalInSecs: scrapeIntervalInSecs}, nil
}

// GrafanaConfig is optional: its presence enables the Grafana dashboard
// service and its reverse-proxy entry.
type GrafanaConfig struct {
	AdminPassword string            `json:"admin_password"`
	Domain        *ident.DomainName `json:"domain,omitempty"`
	UseTLSProxy   bool              `json:"use_tls_proxy,omitempty"`
}

// NewGrafanaConfig validates and constructs a GrafanaConfig. domain may be
// empty, meaning Grafana is not proxied.
func NewGrafanaConfig(adminPassword, domain string, useTLSProxy bool) (GrafanaConfig, error) {
	if adminPassword == "" {
		return GrafanaConfig{}, errkind.New(errkind.Validation, "grafana admin_password must not be empty")
	}
	if useTLSProxy && domain == "" {
		return GrafanaConfig{}, errkind.New(errkind.Validation, "grafana use_tls_proxy requires a domain")
	}
	domainPtr, err := optionalDomain(domain)
	if err != nil {
		return GrafanaConfig{}, err
	}
	return GrafanaConfig{AdminPassword: adminPassword, Domain: domainPtr, UseTLSProxy: useTLSProxy}, nil
}
