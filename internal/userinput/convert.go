package userinput

import "github.com/torrust/tracker-deploy/internal/ident"

// ToUserInputs converts the validated surface DTO to a UserInputs bundle,
// performing the cross-field and format checks schema validation alone
// cannot express (socket address parsing, cron field shape, tagged-union
// completeness). The conversion runs one way only: there is no conversion
// from UserInputs back to EnvironmentCreationConfig.
func (c EnvironmentCreationConfig) ToUserInputs() (UserInputs, error) {
	sshCredentials, err := NewSSHCredentials(
		c.SSHCredentials.PrivateKeyPath,
		c.SSHCredentials.PublicKeyPath,
		c.SSHCredentials.Username,
		sshPortOrDefault(c.SSHCredentials.Port),
	)
	if err != nil {
		return UserInputs{}, err
	}

	provider, err := c.Provider.toProviderConfig()
	if err != nil {
		return UserInputs{}, err
	}

	instanceName, err := ident.NewInstanceName(c.Environment.InstanceName)
	if err != nil {
		return UserInputs{}, err
	}

	tracker, err := c.Tracker.toTrackerConfig()
	if err != nil {
		return UserInputs{}, err
	}

	var healthCheckAPI *HealthCheckAPIConfig
	if c.HealthCheckAPI != nil {
		cfg, err := NewHealthCheckAPIConfig(c.HealthCheckAPI.BindAddress, c.HealthCheckAPI.Domain, c.HealthCheckAPI.UseTLSProxy)
		if err != nil {
			return UserInputs{}, err
		}
		healthCheckAPI = &cfg
	}

	var prometheus *PrometheusConfig
	if c.Prometheus != nil {
		cfg, err := NewPrometheusConfig(c.Prometheus.ScrapeIntervalInSecs)
		if err != nil {
			return UserInputs{}, err
		}
		prometheus = &cfg
	}

	var grafana *GrafanaConfig
	if c.Grafana != nil {
		cfg, err := NewGrafanaConfig(c.Grafana.AdminPassword, c.Grafana.Domain, c.Grafana.UseTLSProxy)
		if err != nil {
			return UserInputs{}, err
		}
		grafana = &cfg
	}

	var https *HTTPSConfig
	if c.HTTPS != nil {
		cfg, err := NewHTTPSConfig(c.HTTPS.AdminEmail, c.HTTPS.UseStaging)
		if err != nil {
			return UserInputs{}, err
		}
		https = &cfg
	}

	var backup *BackupConfig
	if c.Backup != nil {
		schedule, err := NewCronSchedule(c.Backup.Schedule)
		if err != nil {
			return UserInputs{}, err
		}
		retention, err := NewRetentionDays(c.Backup.RetentionDays)
		if err != nil {
			return UserInputs{}, err
		}
		cfg := NewBackupConfig(schedule, retention)
		backup = &cfg
	}

	return New(sshCredentials, provider, instanceName, tracker, healthCheckAPI, prometheus, grafana, https, backup), nil
}

func sshPortOrDefault(port int) int {
	if port == 0 {
		return 22
	}
	return port
}

func (p ProviderSection) toProviderConfig() (ProviderConfig, error) {
	switch p.Method {
	case string(ProvisionMethodLXD):
		return NewLXDProvider(p.LXD.ProfileName)
	case string(ProvisionMethodHetzner):
		return NewHetznerProvider(p.Hetzner.APIToken, p.Hetzner.ServerType, p.Hetzner.Location, p.Hetzner.Image)
	default:
		return ProviderConfig{}, newUnrecognizedProviderError(p.Method)
	}
}

func (t TrackerSection) toTrackerConfig() (TrackerConfig, error) {
	database, err := NewSQLiteDatabaseConfig(t.Core.Database.DatabaseName)
	if err != nil {
		return TrackerConfig{}, err
	}
	core := TrackerCoreConfig{Database: database, Private: t.Core.Private}

	udpTrackers := make([]UDPTrackerConfig, 0, len(t.UDPTrackers))
	for _, section := range t.UDPTrackers {
		cfg, err := NewUDPTrackerConfig(section.BindAddress)
		if err != nil {
			return TrackerConfig{}, err
		}
		udpTrackers = append(udpTrackers, cfg)
	}

	httpTrackers := make([]HTTPTrackerConfig, 0, len(t.HTTPTrackers))
	for _, section := range t.HTTPTrackers {
		cfg, err := NewHTTPTrackerConfig(section.BindAddress, section.Domain, section.UseTLSProxy)
		if err != nil {
			return TrackerConfig{}, err
		}
		httpTrackers = append(httpTrackers, cfg)
	}

	httpAPI, err := NewHTTPAPIConfig(t.HTTPAPI.BindAddress, t.HTTPAPI.AdminToken, t.HTTPAPI.Domain, t.HTTPAPI.UseTLSProxy)
	if err != nil {
		return TrackerConfig{}, err
	}

	return TrackerConfig{
		Core:         core,
		UDPTrackers:  udpTrackers,
		HTTPTrackers: httpTrackers,
		HTTPAPI:      httpAPI,
	}, nil
}
