package adapter

import (
	"os"
	"path"
	"time"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// RemoteExec runs container-runtime commands on the provisioned instance
// over SSH — the Release/Run/Test handlers' way of placing release
// artifacts on the instance and starting and checking the remote compose
// stack without the core ever shelling out to `ssh` directly.
type RemoteExec struct {
	Host           string
	Port           int
	Username       string
	PrivateKeyPath string
	DialTimeout    time.Duration
}

// NewRemoteExec constructs a RemoteExec.
func NewRemoteExec(host string, port int, username, privateKeyPath string) RemoteExec {
	return RemoteExec{Host: host, Port: port, Username: username, PrivateKeyPath: privateKeyPath, DialTimeout: 10 * time.Second}
}

// Run executes command on the remote host and returns its captured output.
func (r RemoteExec) Run(command string) (CommandResult, error) {
	client, err := dialClient(r.Host, r.Port, r.Username, r.PrivateKeyPath, r.dialTimeout())
	if err != nil {
		return CommandResult{}, err
	}
	defer client.Close()
	return runOneCommand(client, command)
}

// ComposeUp runs `docker compose up -d` in workDir on the remote host.
func (r RemoteExec) ComposeUp(workDir string) (CommandResult, error) {
	return r.Run("cd " + workDir + " && docker compose up -d")
}

// ComposePs runs `docker compose ps` in workDir on the remote host, used
// by the Test command to check that the expected services are up.
func (r RemoteExec) ComposePs(workDir string) (CommandResult, error) {
	return r.Run("cd " + workDir + " && docker compose ps")
}

// CopyFile deploys the file at localPath to remotePath on the remote host,
// creating remotePath's parent directory first. It is the Release
// handler's deploy_* steps' way of placing rendered artifacts without a
// file-transfer collaborator of its own, by streaming the file over the
// same SSH connection a command would run on.
func (r RemoteExec) CopyFile(localPath, remotePath string) error {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return errkind.Wrap(errkind.CommandExecution, "failed to read local artifact "+localPath, err)
	}

	client, err := dialClient(r.Host, r.Port, r.Username, r.PrivateKeyPath, r.dialTimeout())
	if err != nil {
		return err
	}
	defer client.Close()

	remoteDir := path.Dir(remotePath)
	if _, err := runOneCommand(client, "mkdir -p "+remoteDir); err != nil {
		return err
	}
	return streamToRemoteFile(client, remotePath, content)
}

func (r RemoteExec) dialTimeout() time.Duration {
	if r.DialTimeout <= 0 {
		return 10 * time.Second
	}
	return r.DialTimeout
}
