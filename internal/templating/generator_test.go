package templating

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

var fixedGeneratedAt = time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

func newMinimalUserInputs(t *testing.T) userinput.UserInputs {
	t.Helper()

	creds, err := userinput.NewSSHCredentials("/abs/testing_rsa", "/abs/testing_rsa.pub", "torrust", 22)
	require.NoError(t, err)
	provider, err := userinput.NewLXDProvider("lxd-e2e-provision")
	require.NoError(t, err)
	instance, err := ident.NewInstanceName("torrust-vm-e2e-provision")
	require.NoError(t, err)
	database, err := userinput.NewSQLiteDatabaseConfig("tracker.db")
	require.NoError(t, err)
	httpAPI, err := userinput.NewHTTPAPIConfig("0.0.0.0:1212", "token", "", false)
	require.NoError(t, err)
	udpTracker, err := userinput.NewUDPTrackerConfig("0.0.0.0:6969")
	require.NoError(t, err)

	tracker := userinput.TrackerConfig{
		Core:        userinput.TrackerCoreConfig{Database: database, Private: false},
		UDPTrackers: []userinput.UDPTrackerConfig{udpTracker},
		HTTPAPI:     httpAPI,
	}

	return userinput.New(creds, provider, instance, tracker, nil, nil, nil, nil, nil)
}

func TestProvisionerGeneratorLXDRendersInstanceAndProfile(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	ctx := NewProvisionerContext(inputs, fixedGeneratedAt)
	require.Equal(t, "torrust-vm-e2e-provision", ctx.InstanceName)
	require.Equal(t, "lxd-e2e-provision", ctx.ProfileName)

	gen, err := ProvisionerGenerator(inputs.Provider.Method)
	require.NoError(t, err)

	outDir := t.TempDir()
	rendered, err := gen.Render(outDir, ctx)
	require.NoError(t, err)
	require.Equal(t, outDir, rendered)

	contents, err := os.ReadFile(filepath.Join(outDir, "main.tf"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "torrust-vm-e2e-provision")
	require.Contains(t, string(contents), "lxd-e2e-provision")
	require.NotContains(t, string(contents), ".tmp")
}

func TestProvisionerGeneratorUnknownMethodErrors(t *testing.T) {
	t.Parallel()

	_, err := ProvisionerGenerator(userinput.ProvisionMethod("unknown"))
	require.Error(t, err)
	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.TemplateRendering, domainErr.Kind)
}

func TestComposeGeneratorIsDeterministic(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	ctx, err := NewComposeContext(inputs, fixedGeneratedAt)
	require.NoError(t, err)
	require.Equal(t, 1212, ctx.HTTPAPIPort)
	require.Equal(t, []int{6969}, ctx.UDPTrackerPorts)
	require.False(t, ctx.HasReverseProxy)

	gen := ComposeGenerator()

	firstDir := t.TempDir()
	_, err = gen.Render(firstDir, ctx)
	require.NoError(t, err)
	firstContents, err := os.ReadFile(filepath.Join(firstDir, "docker-compose.yml"))
	require.NoError(t, err)

	secondDir := t.TempDir()
	_, err = gen.Render(secondDir, ctx)
	require.NoError(t, err)
	secondContents, err := os.ReadFile(filepath.Join(secondDir, "docker-compose.yml"))
	require.NoError(t, err)

	require.Equal(t, firstContents, secondContents)
	require.Contains(t, string(firstContents), "6969:6969/udp")
	require.NotContains(t, string(firstContents), "mysql:")
}

func TestComposeGeneratorRejectsUnparsableBindAddress(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	inputs.Tracker.UDPTrackers[0].BindAddress = "not-a-valid-address"

	_, err := NewComposeContext(inputs, fixedGeneratedAt)
	require.Error(t, err)
}

func TestReverseProxyContextRefusesWithoutAnyTLS(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	require.False(t, inputs.HasAnyTLS())

	_, err := NewReverseProxyContext(inputs, fixedGeneratedAt)
	require.Error(t, err)
	var domainErr *errkind.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errkind.TemplateRendering, domainErr.Kind)
}

func TestReverseProxyContextIncludesOnlyProxiedServices(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	https, err := userinput.NewHTTPSConfig("admin@example.com", true)
	require.NoError(t, err)
	inputs.HTTPS = &https

	httpAPI, err := userinput.NewHTTPAPIConfig("0.0.0.0:1212", "token", "tracker.example.com", true)
	require.NoError(t, err)
	inputs.Tracker.HTTPAPI = httpAPI

	ctx, err := NewReverseProxyContext(inputs, fixedGeneratedAt)
	require.NoError(t, err)
	require.NotNil(t, ctx.HTTPAPI)
	require.Equal(t, "tracker.example.com", ctx.HTTPAPI.Domain)
	require.Equal(t, 1212, ctx.HTTPAPI.Port)
	require.Nil(t, ctx.HealthCheck)
	require.Nil(t, ctx.Grafana)
	require.True(t, ctx.UseStaging)

	gen := ReverseProxyGenerator()
	outDir := t.TempDir()
	_, err = gen.Render(outDir, ctx)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(outDir, "Caddyfile"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "tracker.example.com")
	require.Contains(t, string(contents), "acme_ca https://acme-staging-v02.api.letsencrypt.org/directory")
}

func TestPrometheusGeneratorRendersScrapeInterval(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	prometheusCfg, err := userinput.NewPrometheusConfig(30)
	require.NoError(t, err)
	inputs.Prometheus = &prometheusCfg

	ctx := NewPrometheusContext(inputs, fixedGeneratedAt)
	gen := PrometheusGenerator()
	outDir := t.TempDir()
	_, err = gen.Render(outDir, ctx)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(outDir, "prometheus.yml"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "scrape_interval: 30s")
	require.Contains(t, string(contents), "tracker:1212")
}

func TestBackupGeneratorRendersScheduleAndRetention(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	backupCfg := userinput.NewBackupConfig(userinput.DefaultCronScheduleValue(), userinput.DefaultRetentionDaysValue())
	inputs.Backup = &backupCfg

	ctx := NewBackupContext(inputs, fixedGeneratedAt)
	gen := BackupGenerator()
	outDir := t.TempDir()
	_, err := gen.Render(outDir, ctx)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(outDir, "backup.sh"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "# schedule: 0 3 * * *")
	require.Contains(t, string(contents), "RETENTION_DAYS=7")
}

func TestComposeGeneratorCopiesStaticAssetVerbatim(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	ctx, err := NewComposeContext(inputs, fixedGeneratedAt)
	require.NoError(t, err)

	gen := ComposeGenerator()
	outDir := t.TempDir()
	_, err = gen.Render(outDir, ctx)
	require.NoError(t, err)

	original, err := templateFS.ReadFile("templates/compose/static/NOTES.txt")
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(outDir, "static", "NOTES.txt"))
	require.NoError(t, err)
	require.Equal(t, original, copied)
}

func TestGrafanaGeneratorRendersDatasource(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	grafanaCfg, err := userinput.NewGrafanaConfig("s3cr3t", "", false)
	require.NoError(t, err)
	inputs.Grafana = &grafanaCfg

	ctx := NewGrafanaContext(inputs, fixedGeneratedAt)
	gen := GrafanaGenerator()
	outDir := t.TempDir()
	_, err = gen.Render(outDir, ctx)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(outDir, "provisioning", "datasources", "datasource.yml"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "type: prometheus")
}

func TestConfigEngineGeneratorRendersSSHUsernameAndInstanceIP(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	ctx := NewConfigEngineContext(inputs, "10.0.0.5", fixedGeneratedAt)
	gen := ConfigEngineGenerator()
	outDir := t.TempDir()
	_, err := gen.Render(outDir, ctx)
	require.NoError(t, err)

	runtime, err := os.ReadFile(filepath.Join(outDir, "install-container-runtime.yml"))
	require.NoError(t, err)
	require.Contains(t, string(runtime), `remote_user: "torrust"`)

	compose, err := os.ReadFile(filepath.Join(outDir, "install-container-compose.yml"))
	require.NoError(t, err)
	require.Contains(t, string(compose), `remote_user: "torrust"`)

	inventory, err := os.ReadFile(filepath.Join(outDir, "inventory.ini"))
	require.NoError(t, err)
	require.Contains(t, string(inventory), "10.0.0.5")
	require.Contains(t, string(inventory), "ansible_user=torrust")
}

func TestTrackerConfigGeneratorRendersDatabaseAndListeners(t *testing.T) {
	t.Parallel()

	inputs := newMinimalUserInputs(t)
	httpTracker, err := userinput.NewHTTPTrackerConfig("0.0.0.0:7070", "", false)
	require.NoError(t, err)
	inputs.Tracker.HTTPTrackers = []userinput.HTTPTrackerConfig{httpTracker}

	ctx := NewTrackerConfigContext(inputs, fixedGeneratedAt)
	require.Equal(t, "sqlite3", ctx.DatabaseDriver)
	require.Equal(t, "tracker.db", ctx.DatabaseName)
	require.False(t, ctx.Private)
	require.Equal(t, []string{"0.0.0.0:6969"}, ctx.UDPTrackerBindAddresses)
	require.Equal(t, []string{"0.0.0.0:7070"}, ctx.HTTPTrackerBindAddresses)

	gen := TrackerConfigGenerator()
	outDir := t.TempDir()
	_, err = gen.Render(outDir, ctx)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(outDir, "config.toml"))
	require.NoError(t, err)
	require.Contains(t, string(contents), `driver = "sqlite3"`)
	require.Contains(t, string(contents), `bind_address = "0.0.0.0:6969"`)
	require.Contains(t, string(contents), `bind_address = "0.0.0.0:7070"`)
	require.Contains(t, string(contents), `bind_address = "0.0.0.0:1212"`)
}

func TestPortFromBindAddressRejectsMissingPort(t *testing.T) {
	t.Parallel()

	_, err := portFromBindAddress("0.0.0.0")
	require.Error(t, err)
}

func TestHealthCheckAPIConfigPortIsExtractable(t *testing.T) {
	t.Parallel()

	cfg, err := userinput.NewHealthCheckAPIConfig("127.0.0.1:1313", "", false)
	require.NoError(t, err)
	var addr *net.TCPAddr = cfg.BindAddress
	require.Equal(t, 1313, addr.Port)
}
