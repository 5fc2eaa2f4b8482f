package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// GrafanaContext is the fully-prepared context for the Grafana
// provisioning templates. The caller should only render this when
// inputs.HasGrafana() is true.
type GrafanaContext struct {
	Metadata
}

// NewGrafanaContext prepares a GrafanaContext from validated inputs. The
// admin password is not written to any rendered file (neither the
// provisioning files nor the compose stack), so it has no field here.
func NewGrafanaContext(inputs userinput.UserInputs, generatedAt time.Time) GrafanaContext {
	return GrafanaContext{Metadata: newMetadata(generatedAt)}
}

// GrafanaGenerator renders the Grafana datasource provisioning file.
func GrafanaGenerator() Generator {
	return newGenerator("templates/grafana", "templates/grafana/provisioning/datasources/datasource.yml.tmpl")
}
