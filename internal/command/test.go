package command

import (
	"context"
	"net"
	"strings"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// TestResult is the Test command's outcome: whether the expected services
// were found running, plus advisory DNS warnings that never fail the
// command on their own (§4.2.5/§9).
type TestResult struct {
	ComposeOutput string
	DNSWarnings   []DNSWarning
}

// DNSWarning reports one configured domain whose DNS does not (yet) point
// at the environment's instance: either the lookup itself failed
// (Resolved is false, ResolvedIPs is empty), or it succeeded but returned
// addresses that do not include ExpectedIP (Resolved is true,
// ResolvedIPs holds what was actually returned). Never fails the Test
// command on its own — a domain's propagation delay is outside this
// tool's control.
type DNSWarning struct {
	Domain      string
	ExpectedIP  string
	ResolvedIPs []string
	Resolved    bool
}

// TestHandler implements the Test command (§4.2.5): validating that the
// required services are installed and reachable on a Running environment.
// DNS mismatches are reported as warnings, never as a failing error,
// since a domain's propagation delay is outside this tool's control.
type TestHandler struct {
	deps Deps
}

// NewTestHandler constructs a TestHandler.
func NewTestHandler(deps Deps) TestHandler {
	return TestHandler{deps: deps}
}

// Execute validates the named environment's running stack. It requires the
// environment to be Running.
func (h TestHandler) Execute(ctx context.Context, name string) (TestResult, error) {
	any, err := h.deps.Repo.LoadAny(name)
	if err != nil {
		return TestResult{}, err
	}
	if any == nil {
		return TestResult{}, errkind.New(errkind.NotFound, "environment \""+name+"\" does not exist")
	}
	running, err := any.TryIntoRunning()
	if err != nil {
		return TestResult{}, err
	}

	base := running.Base
	inputs := base.UserInputs
	remote := h.deps.remoteExecFor(running.InstanceIP.String(), inputs.SSHCredentials.Port,
		inputs.SSHCredentials.Username.String(), inputs.SSHCredentials.PrivateKeyPath)

	result, composeErr := remote.ComposePs(remoteBase)
	if composeErr != nil {
		return TestResult{}, composeErr
	}

	warnings := h.dnsWarnings(inputs, running.InstanceIP.String())
	for _, w := range warnings {
		h.deps.logger().Warn(ctx, w.message(), "environment", name)
	}

	return TestResult{ComposeOutput: result.Stdout, DNSWarnings: warnings}, nil
}

// dnsWarnings checks every TLS-proxied domain against the instance's known
// IP, returning one DNSWarning per domain that does not resolve to it. It
// never returns an error: a failed lookup is itself a warning.
func (h TestHandler) dnsWarnings(inputs userinput.UserInputs, instanceIP string) []DNSWarning {
	var domains []string
	if inputs.Tracker.HTTPAPI.UseTLSProxy && inputs.Tracker.HTTPAPI.Domain != nil {
		domains = append(domains, inputs.Tracker.HTTPAPI.Domain.String())
	}
	if inputs.HealthCheckAPI != nil && inputs.HealthCheckAPI.UseTLSProxy && inputs.HealthCheckAPI.Domain != nil {
		domains = append(domains, inputs.HealthCheckAPI.Domain.String())
	}
	if inputs.Grafana != nil && inputs.Grafana.UseTLSProxy && inputs.Grafana.Domain != nil {
		domains = append(domains, inputs.Grafana.Domain.String())
	}
	for _, httpTracker := range inputs.Tracker.HTTPTrackers {
		if httpTracker.UseTLSProxy && httpTracker.Domain != nil {
			domains = append(domains, httpTracker.Domain.String())
		}
	}

	var warnings []DNSWarning
	for _, domain := range domains {
		addrs, err := net.LookupHost(domain)
		if err != nil {
			warnings = append(warnings, DNSWarning{Domain: domain, ExpectedIP: instanceIP, Resolved: false})
			continue
		}
		if !containsIP(addrs, instanceIP) {
			warnings = append(warnings, DNSWarning{Domain: domain, ExpectedIP: instanceIP, ResolvedIPs: addrs, Resolved: true})
		}
	}
	return warnings
}

// message renders w as a single human-readable line, for logging and CLI
// output.
func (w DNSWarning) message() string {
	if !w.Resolved {
		return "domain \"" + w.Domain + "\" did not resolve"
	}
	return "domain \"" + w.Domain + "\" resolves to " + strings.Join(w.ResolvedIPs, ", ") +
		", not the instance's known ip " + w.ExpectedIP
}

func containsIP(addrs []string, target string) bool {
	for _, a := range addrs {
		if a == target {
			return true
		}
	}
	return false
}
