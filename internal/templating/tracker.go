package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// TrackerConfigContext is the fully-prepared context for the tracker
// application's own config.toml, mounted read-only into its container by
// the compose stack.
type TrackerConfigContext struct {
	Metadata

	DatabaseDriver string
	DatabaseName   string
	Private        bool

	UDPTrackerBindAddresses  []string
	HTTPTrackerBindAddresses []string

	HTTPAPIBindAddress string
	HTTPAPIAdminToken  string
}

// NewTrackerConfigContext prepares a TrackerConfigContext from validated
// inputs.
func NewTrackerConfigContext(inputs userinput.UserInputs, generatedAt time.Time) TrackerConfigContext {
	udpAddrs := make([]string, 0, len(inputs.Tracker.UDPTrackers))
	for _, udp := range inputs.Tracker.UDPTrackers {
		udpAddrs = append(udpAddrs, udp.BindAddress)
	}

	httpAddrs := make([]string, 0, len(inputs.Tracker.HTTPTrackers))
	for _, httpTracker := range inputs.Tracker.HTTPTrackers {
		httpAddrs = append(httpAddrs, httpTracker.BindAddress)
	}

	return TrackerConfigContext{
		Metadata:                 newMetadata(generatedAt),
		DatabaseDriver:           string(inputs.Tracker.Core.Database.Driver),
		DatabaseName:             inputs.Tracker.Core.Database.DatabaseName,
		Private:                  inputs.Tracker.Core.Private,
		UDPTrackerBindAddresses:  udpAddrs,
		HTTPTrackerBindAddresses: httpAddrs,
		HTTPAPIBindAddress:       inputs.Tracker.HTTPAPI.BindAddress.String(),
		HTTPAPIAdminToken:        inputs.Tracker.HTTPAPI.AdminToken,
	}
}

// TrackerConfigGenerator renders the tracker application's config.toml.
func TrackerConfigGenerator() Generator {
	return newGenerator("templates/tracker", "templates/tracker/config.toml.tmpl")
}
