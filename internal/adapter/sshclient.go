package adapter

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// dialClient opens an SSH connection authenticated with the private key at
// privateKeyPath, mirroring the collaborator contract's
// "ssh -o BatchMode=yes" semantics: host-key verification never prompts,
// it simply accepts whatever key the host presents, since this tool has no
// interactive terminal to confirm a fingerprint against.
func dialClient(host string, port int, username, privateKeyPath string, timeout time.Duration) (*ssh.Client, error) {
	keyBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, errkind.Wrap(errkind.Connectivity, "failed to read ssh private key "+privateKeyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, errkind.Wrap(errkind.Connectivity, "failed to parse ssh private key "+privateKeyPath, err)
	}

	config := &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, errkind.Wrap(errkind.Connectivity, "failed to connect to "+addr, err)
	}
	return client, nil
}

// streamToRemoteFile writes content to remotePath on the other end of
// client by piping it through `cat > remotePath`'s stdin, avoiding a
// dependency on a file-transfer subsystem the remote host may not run.
func streamToRemoteFile(client *ssh.Client, remotePath string, content []byte) error {
	session, err := client.NewSession()
	if err != nil {
		return errkind.Wrap(errkind.Connectivity, "failed to open ssh session", err)
	}
	defer session.Close()

	stdin, err := session.StdinPipe()
	if err != nil {
		return errkind.Wrap(errkind.Connectivity, "failed to open stdin pipe", err)
	}

	var stderr bytes.Buffer
	session.Stderr = &stderr

	if err := session.Start(fmt.Sprintf("cat > %s", remotePath)); err != nil {
		return errkind.Wrap(errkind.CommandExecution, "failed to start remote write to "+remotePath, err)
	}
	if _, err := stdin.Write(content); err != nil {
		return errkind.Wrap(errkind.CommandExecution, "failed to stream content to "+remotePath, err)
	}
	if err := stdin.Close(); err != nil {
		return errkind.Wrap(errkind.CommandExecution, "failed to close remote write stream for "+remotePath, err)
	}
	if err := session.Wait(); err != nil {
		return errkind.Wrap(errkind.CommandExecution, "remote write failed for "+remotePath+": "+stderr.String(), err)
	}
	return nil
}

// runOneCommand opens a session on an established client, runs command,
// and returns its captured output.
func runOneCommand(client *ssh.Client, command string) (CommandResult, error) {
	session, err := client.NewSession()
	if err != nil {
		return CommandResult{}, errkind.Wrap(errkind.Connectivity, "failed to open ssh session", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Run(command); err != nil {
		return CommandResult{Stdout: stdout.String(), Stderr: stderr.String()},
			errkind.Wrap(errkind.CommandExecution, "remote command failed: "+command, err)
	}
	return CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
