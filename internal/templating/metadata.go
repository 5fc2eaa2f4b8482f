package templating

import "time"

// Metadata is flattened into every rendered context so generated artifacts
// are self-dating: a reader of the file on disk can tell when the deployer
// produced it without consulting anything else.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
}

func newMetadata(generatedAt time.Time) Metadata {
	return Metadata{GeneratedAt: generatedAt}
}
