// Package environment implements the type-state Environment entity: the
// single source of truth for where a managed environment sits in its
// lifecycle. States are modeled as distinct concrete struct types rather
// than a generic Environment[S] — Go has no way to restrict a generic
// parameter to a closed set of types, so the type-state discipline instead
// comes from each state exposing only the transition methods valid from
// it, consuming the receiver by value.
package environment

import (
	"net"
	"time"

	"github.com/torrust/tracker-deploy/internal/ident"
	"github.com/torrust/tracker-deploy/internal/userinput"
)

// Base holds the fields every lifecycle state carries, per invariants I3
// and I4: identity and configuration never change once an environment is
// created.
type Base struct {
	Name         ident.EnvironmentName
	InstanceName ident.InstanceName
	UserInputs   userinput.UserInputs
	CreatedAt    time.Time
	BuildDir     string
	DataDir      string
	TemplatesDir string
	TracesDir    string
}

// InstanceInfo holds the fields every state from Provisioned onward
// carries (invariant I1: a non-empty instance IP).
type InstanceInfo struct {
	InstanceIP net.IP
	Method     userinput.ProvisionMethod
}
