package templating

import (
	"net"
	"strconv"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// ComposeContext is the fully-prepared context for the Docker Compose
// stack template. Every port is a plain int extracted ahead of time so
// the template itself never parses a bind address.
type ComposeContext struct {
	Metadata

	HTTPAPIPort      int
	UDPTrackerPorts  []int
	HTTPTrackerPorts []int

	HasMySQL        bool
	HasPrometheus   bool
	HasGrafana      bool
	HasReverseProxy bool
	HasBackup       bool
}

// NewComposeContext prepares a ComposeContext from validated inputs.
func NewComposeContext(inputs userinput.UserInputs, generatedAt time.Time) (ComposeContext, error) {
	udpPorts := make([]int, 0, len(inputs.Tracker.UDPTrackers))
	for _, udp := range inputs.Tracker.UDPTrackers {
		port, err := portFromBindAddress(udp.BindAddress)
		if err != nil {
			return ComposeContext{}, err
		}
		udpPorts = append(udpPorts, port)
	}

	httpPorts := make([]int, 0, len(inputs.Tracker.HTTPTrackers))
	for _, httpTracker := range inputs.Tracker.HTTPTrackers {
		port, err := portFromBindAddress(httpTracker.BindAddress)
		if err != nil {
			return ComposeContext{}, err
		}
		httpPorts = append(httpPorts, port)
	}

	return ComposeContext{
		Metadata:         newMetadata(generatedAt),
		HTTPAPIPort:      inputs.Tracker.HTTPAPI.BindAddress.Port,
		UDPTrackerPorts:  udpPorts,
		HTTPTrackerPorts: httpPorts,
		HasMySQL:         inputs.UsesMySQL(),
		HasPrometheus:    inputs.HasPrometheus(),
		HasGrafana:       inputs.HasGrafana(),
		HasReverseProxy:  inputs.HasAnyTLS(),
		HasBackup:        inputs.HasBackup(),
	}, nil
}

// ComposeGenerator renders the Docker Compose stack.
func ComposeGenerator() Generator {
	return newGenerator("templates/compose", "templates/compose/docker-compose.yml.tmpl")
}

func portFromBindAddress(bindAddress string) (int, error) {
	_, portStr, err := net.SplitHostPort(bindAddress)
	if err != nil {
		return 0, errkind.Wrap(errkind.TemplateRendering, "bind_address \""+bindAddress+"\" is not host:port", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, errkind.Wrap(errkind.TemplateRendering, "bind_address \""+bindAddress+"\" has a non-numeric port", err)
	}
	return port, nil
}
