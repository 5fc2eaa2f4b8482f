package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// defaultGrafanaPort is the container's own listening port; UserInputs has
// no bind-address field for Grafana since it is never exposed directly.
const defaultGrafanaPort = 3000

// ServiceRoute is one reverse-proxy virtual host: a domain name proxying
// to a local port.
type ServiceRoute struct {
	Domain string
	Port   int
}

// ReverseProxyContext is the fully-prepared context for the Caddy reverse
// proxy template. Each optional route is nil unless that service is both
// configured and marked use_tls_proxy.
type ReverseProxyContext struct {
	Metadata

	AdminEmail string
	UseStaging bool

	HTTPAPI      *ServiceRoute
	HealthCheck  *ServiceRoute
	Grafana      *ServiceRoute
	HTTPTrackers []ServiceRoute
}

// NewReverseProxyContext prepares a ReverseProxyContext from validated
// inputs. The caller must check inputs.HasAnyTLS() first; this constructor
// refuses to run otherwise since a Caddyfile with no routes and no ACME
// account is not a useful artifact.
func NewReverseProxyContext(inputs userinput.UserInputs, generatedAt time.Time) (ReverseProxyContext, error) {
	if !inputs.HasAnyTLS() {
		return ReverseProxyContext{}, errkind.New(errkind.TemplateRendering, "reverse proxy generator requires at least one service with use_tls_proxy enabled")
	}

	ctx := ReverseProxyContext{
		Metadata:   newMetadata(generatedAt),
		AdminEmail: inputs.HTTPS.AdminEmail,
		UseStaging: inputs.HTTPS.UseStaging,
	}

	if api := inputs.Tracker.HTTPAPI; api.UseTLSProxy && api.Domain != nil {
		ctx.HTTPAPI = &ServiceRoute{Domain: api.Domain.String(), Port: api.BindAddress.Port}
	}

	if hc := inputs.HealthCheckAPI; hc != nil && hc.UseTLSProxy && hc.Domain != nil {
		ctx.HealthCheck = &ServiceRoute{Domain: hc.Domain.String(), Port: hc.BindAddress.Port}
	}

	if g := inputs.Grafana; g != nil && g.UseTLSProxy && g.Domain != nil {
		ctx.Grafana = &ServiceRoute{Domain: g.Domain.String(), Port: defaultGrafanaPort}
	}

	for _, httpTracker := range inputs.Tracker.HTTPTrackers {
		if !httpTracker.UseTLSProxy || httpTracker.Domain == nil {
			continue
		}
		port, err := portFromBindAddress(httpTracker.BindAddress)
		if err != nil {
			return ReverseProxyContext{}, err
		}
		ctx.HTTPTrackers = append(ctx.HTTPTrackers, ServiceRoute{Domain: httpTracker.Domain.String(), Port: port})
	}

	return ctx, nil
}

// ReverseProxyGenerator renders the Caddy reverse-proxy configuration.
func ReverseProxyGenerator() Generator {
	return newGenerator("templates/reverse-proxy", "templates/reverse-proxy/Caddyfile.tmpl")
}
