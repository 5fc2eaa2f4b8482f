package userinput

import (
	"net"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
)

// DatabaseDriver names the tracker's storage backend.
type DatabaseDriver string

const DatabaseDriverSQLite DatabaseDriver = "sqlite3"

// DatabaseConfig configures the tracker's persistence layer. SQLite is the
// only supported driver today; the type remains a tagged shape so a second
// driver can be added without breaking callers.
type DatabaseConfig struct {
	Driver       DatabaseDriver `json:"driver"`
	DatabaseName string         `json:"database_name"`
}

// NewSQLiteDatabaseConfig constructs a DatabaseConfig backed by SQLite.
func NewSQLiteDatabaseConfig(databaseName string) (DatabaseConfig, error) {
	if databaseName == "" {
		return DatabaseConfig{}, errkind.New(errkind.Validation, "database_name must not be empty")
	}
	return DatabaseConfig{Driver: DatabaseDriverSQLite, DatabaseName: databaseName}, nil
}

// TrackerCoreConfig configures the tracker's core engine.
type TrackerCoreConfig struct {
	Database DatabaseConfig `json:"database"`
	Private  bool           `json:"private"`
}

// UDPTrackerConfig configures one UDP tracker listener.
type UDPTrackerConfig struct {
	BindAddress string `json:"bind_address"`
}

// HTTPTrackerConfig configures one HTTP tracker listener. Domain is set when
// this listener should be reachable via HTTPS through the reverse proxy.
type HTTPTrackerConfig struct {
	BindAddress string            `json:"bind_address"`
	Domain      *ident.DomainName `json:"domain,omitempty"`
	UseTLSProxy bool              `json:"use_tls_proxy,omitempty"`
}

// HTTPAPIConfig configures the tracker's HTTP administration API. Domain is
// set when the API should be reachable via HTTPS through the reverse proxy.
type HTTPAPIConfig struct {
	BindAddress *net.TCPAddr      `json:"bind_address"`
	AdminToken  string            `json:"admin_token"`
	Domain      *ident.DomainName `json:"domain,omitempty"`
	UseTLSProxy bool              `json:"use_tls_proxy,omitempty"`
}

// HealthCheckAPIConfig configures the deployer's health-check HTTP endpoint.
// Domain is set when the endpoint should be reachable via HTTPS through the
// reverse proxy, which requires UseTLSProxy and a non-nil Domain together.
type HealthCheckAPIConfig struct {
	BindAddress *net.TCPAddr      `json:"bind_address"`
	Domain      *ident.DomainName `json:"domain,omitempty"`
	UseTLSProxy bool              `json:"use_tls_proxy,omitempty"`
}

// NewHealthCheckAPIConfig validates and constructs a HealthCheckAPIConfig.
// domain may be empty, meaning the endpoint is not proxied.
func NewHealthCheckAPIConfig(bindAddress, domain string, useTLSProxy bool) (HealthCheckAPIConfig, error) {
	addr, err := net.ResolveTCPAddr("tcp", bindAddress)
	if err != nil {
		return HealthCheckAPIConfig{}, errkind.Wrap(errkind.Validation, "health_check_api bind_address \""+bindAddress+"\" is not a valid host:port", err)
	}
	if addr.Port == 0 {
		return HealthCheckAPIConfig{}, errkind.New(errkind.Validation, "health_check_api bind_address must not use dynamic port assignment (port 0)")
	}
	if useTLSProxy && domain == "" {
		return HealthCheckAPIConfig{}, errkind.New(errkind.Validation, "health_check_api use_tls_proxy requires a domain")
	}
	domainPtr, err := optionalDomain(domain)
	if err != nil {
		return HealthCheckAPIConfig{}, err
	}
	return HealthCheckAPIConfig{BindAddress: addr, Domain: domainPtr, UseTLSProxy: useTLSProxy}, nil
}

// TrackerConfig is the validated configuration for the tracker application
// itself: its core engine plus every listener it exposes.
type TrackerConfig struct {
	Core         TrackerCoreConfig   `json:"core"`
	UDPTrackers  []UDPTrackerConfig  `json:"udp_trackers"`
	HTTPTrackers []HTTPTrackerConfig `json:"http_trackers"`
	HTTPAPI      HTTPAPIConfig       `json:"http_api"`
}

// NewUDPTrackerConfig validates bindAddress as host:port and constructs a
// UDPTrackerConfig.
func NewUDPTrackerConfig(bindAddress string) (UDPTrackerConfig, error) {
	if err := validateBindAddress(bindAddress); err != nil {
		return UDPTrackerConfig{}, err
	}
	return UDPTrackerConfig{BindAddress: bindAddress}, nil
}

// NewHTTPTrackerConfig validates bindAddress as host:port and constructs an
// HTTPTrackerConfig. domain may be empty, meaning this listener is not
// proxied.
func NewHTTPTrackerConfig(bindAddress, domain string, useTLSProxy bool) (HTTPTrackerConfig, error) {
	if err := validateBindAddress(bindAddress); err != nil {
		return HTTPTrackerConfig{}, err
	}
	if useTLSProxy && domain == "" {
		return HTTPTrackerConfig{}, errkind.New(errkind.Validation, "http_tracker use_tls_proxy requires a domain")
	}
	domainPtr, err := optionalDomain(domain)
	if err != nil {
		return HTTPTrackerConfig{}, err
	}
	return HTTPTrackerConfig{BindAddress: bindAddress, Domain: domainPtr, UseTLSProxy: useTLSProxy}, nil
}

// NewHTTPAPIConfig validates bindAddress as host:port, rejects a dynamic
// port (0), and constructs an HTTPAPIConfig. domain may be empty, meaning
// the API is not proxied.
func NewHTTPAPIConfig(bindAddress, adminToken, domain string, useTLSProxy bool) (HTTPAPIConfig, error) {
	addr, err := net.ResolveTCPAddr("tcp", bindAddress)
	if err != nil {
		return HTTPAPIConfig{}, errkind.Wrap(errkind.Validation, "http_api bind_address \""+bindAddress+"\" is not a valid host:port", err)
	}
	if addr.Port == 0 {
		return HTTPAPIConfig{}, errkind.New(errkind.Validation, "http_api bind_address must not use dynamic port assignment (port 0)")
	}
	if adminToken == "" {
		return HTTPAPIConfig{}, errkind.New(errkind.Validation, "http_api admin_token must not be empty")
	}
	if useTLSProxy && domain == "" {
		return HTTPAPIConfig{}, errkind.New(errkind.Validation, "http_api use_tls_proxy requires a domain")
	}
	domainPtr, err := optionalDomain(domain)
	if err != nil {
		return HTTPAPIConfig{}, err
	}
	return HTTPAPIConfig{BindAddress: addr, AdminToken: adminToken, Domain: domainPtr, UseTLSProxy: useTLSProxy}, nil
}

func optionalDomain(domain string) (*ident.DomainName, error) {
	if domain == "" {
		return nil, nil
	}
	d, err := ident.NewDomainName(domain)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func validateBindAddress(bindAddress string) error {
	addr, err := net.ResolveTCPAddr("tcp", bindAddress)
	if err != nil {
		return errkind.Wrap(errkind.Validation, "bind_address \""+bindAddress+"\" is not a valid host:port", err)
	}
	if addr.Port == 0 {
		return errkind.New(errkind.Validation, "bind_address must not use dynamic port assignment (port 0)")
	}
	return nil
}
