package main

import (
	"github.com/torrust/tracker-deploy/internal/errkind"
)

// remediationFor returns the registered remediation hint for err's
// classified kind, so every subcommand's error output carries the same
// operator guidance the handlers themselves classify errors by.
func remediationFor(err error) string {
	return errkind.Help(errkind.KindOf(err))
}
