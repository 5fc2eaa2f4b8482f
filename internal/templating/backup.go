package templating

import (
	"time"

	"github.com/torrust/tracker-deploy/internal/userinput"
)

// BackupContext is the fully-prepared context for the backup script
// template. The caller should only render this when inputs.HasBackup()
// is true.
type BackupContext struct {
	Metadata

	Schedule      string
	RetentionDays uint32
}

// NewBackupContext prepares a BackupContext from validated inputs.
func NewBackupContext(inputs userinput.UserInputs, generatedAt time.Time) BackupContext {
	return BackupContext{
		Metadata:      newMetadata(generatedAt),
		Schedule:      inputs.Backup.Schedule.String(),
		RetentionDays: inputs.Backup.RetentionDays.Uint32(),
	}
}

// BackupGenerator renders the backup script.
func BackupGenerator() Generator {
	return newGenerator("templates/backup", "templates/backup/backup.sh.tmpl")
}
