// Package templating renders every on-disk artifact the deployer produces:
// the OpenTofu provisioner project, the Ansible-style configuration-engine
// playbook, the Docker Compose stack, the Caddy reverse-proxy config, the
// Prometheus and Grafana configs, and the backup script. Every context is
// fully prepared in Go before a template ever runs (Context Data
// Preparation): templates receive scalar/list fields only, with no
// arithmetic or branching beyond simple presence checks and loops.
package templating

import "embed"

//go:embed templates
var templateFS embed.FS
