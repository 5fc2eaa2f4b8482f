package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// PrometheusContext is the fully-prepared context for the Prometheus
// scrape-config template. The caller should only render this when
// inputs.HasPrometheus() is true.
type PrometheusContext struct {
	Metadata

	ScrapeIntervalInSecs uint32
	HTTPAPIPort          int
}

// NewPrometheusContext prepares a PrometheusContext from validated inputs.
func NewPrometheusContext(inputs userinput.UserInputs, generatedAt time.Time) PrometheusContext {
	return PrometheusContext{
		Metadata:             newMetadata(generatedAt),
		ScrapeIntervalInSecs: inputs.Prometheus.ScrapeIntervalInSecs,
		HTTPAPIPort:          inputs.Tracker.HTTPAPI.BindAddress.Port,
	}
}

// PrometheusGenerator renders the Prometheus configuration.
func PrometheusGenerator() Generator {
	return newGenerator("templates/prometheus", "templates/prometheus/prometheus.yml.tmpl")
}
