package command

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torrust/tracker-deploy/internal/environment"
	"github.com/torrust/tracker-deploy/internal/errkind"
	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/repository"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// newTestUserInputs builds a minimal, valid UserInputs bundle: SSH over
// LXD, SQLite-backed tracker, no optional sections. Individual tests add
// optional sections to exercise the Release command's gates.
func newTestUserInputs(t *testing.T) userinput.UserInputs {
	t.Helper()

	instanceName, err := ident.NewInstanceName("torrust-vm-test")
	require.NoError(t, err)
	profile, err := ident.NewProfileName("torrust-profile")
	require.NoError(t, err)
	provider, err := userinput.NewLXDProvider(profile.String())
	require.NoError(t, err)
	ssh, err := userinput.NewSSHCredentials("/home/user/.ssh/id_ed25519", "/home/user/.ssh/id_ed25519.pub", "torrust", 22)
	require.NoError(t, err)
	db, err := userinput.NewSQLiteDatabaseConfig("tracker.db")
	require.NoError(t, err)
	httpAPI, err := userinput.NewHTTPAPIConfig("127.0.0.1:1212", "s3cr3t", "", false)
	require.NoError(t, err)
	tracker := userinput.TrackerConfig{
		Core:    userinput.TrackerCoreConfig{Database: db, Private: false},
		HTTPAPI: httpAPI,
	}
	return userinput.New(ssh, provider, instanceName, tracker, nil, nil, nil, nil, nil)
}

// newTestBase builds an environment.Base rooted under t.TempDir(), so every
// handler under test can create real directories on disk.
func newTestBase(t *testing.T, name string) environment.Base {
	t.Helper()

	envName, err := ident.NewEnvironmentName(name)
	require.NoError(t, err)
	root := t.TempDir()

	return environment.Base{
		Name:         envName,
		InstanceName: newTestUserInputs(t).InstanceName,
		UserInputs:   newTestUserInputs(t),
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		BuildDir:     filepath.Join(root, "build", name),
		DataDir:      filepath.Join(root, "data", name),
		TemplatesDir: filepath.Join(root, "templates", name),
		TracesDir:    filepath.Join(root, "data", name, "traces"),
	}
}

// newTestDeps builds a Deps backed by a real on-disk repository, a fixed
// clock, no-op logging, and the default trace writer (which writes real
// trace files under an environment's traces directory) — enough for any
// handler that doesn't reach out to a real subprocess or network connection.
func newTestDeps(t *testing.T) Deps {
	t.Helper()

	root := t.TempDir()
	return Deps{
		Repo: repository.NewTyped(repository.New(filepath.Join(root, "data"))),
		Clock: fixedClock{at: time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)},
		Paths: Paths{
			DataDir:      filepath.Join(root, "data"),
			BuildDir:     filepath.Join(root, "build"),
			TemplatesDir: filepath.Join(root, "templates"),
		},
	}
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// validEnvironmentCreationConfigYAML renders a minimal, valid
// EnvironmentCreationConfig YAML document naming the given environment.
func validEnvironmentCreationConfigYAML(name string) string {
	return `
environment:
  name: ` + name + `
  instance_name: torrust-vm-` + name + `
ssh_credentials:
  private_key_path: /home/user/.ssh/id_ed25519
  public_key_path: /home/user/.ssh/id_ed25519.pub
  username: torrust
  port: 22
provider:
  method: lxd
  profile_name: torrust-profile
tracker:
  core:
    database:
      driver: sqlite3
      database_name: tracker.db
    private: false
  http_api:
    bind_address: "127.0.0.1:1212"
    admin_token: s3cr3t
`
}

func requireWrongState(t *testing.T, err error, expected string) {
	t.Helper()
	require.Error(t, err)
	var wrongState *errkind.WrongStateError
	require.ErrorAs(t, err, &wrongState)
	require.Equal(t, expected, wrongState.Expected)
}
