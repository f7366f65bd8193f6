package job

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"noa/internal/services"
)

// DefaultBaseDir is the conventional workspace parent used when the caller
// does not supply one.
const DefaultBaseDir = "workspaces"

// AnnotationProcessedBy is the conventional annotation list stages append
// themselves to in addition to the Steps trace.
const AnnotationProcessedBy = "processed_by"

// Job is the unit of work carried through the pipeline. Payload is opaque to
// the pipeline; Steps is the ordered, append-only trace of completed stage
// names; Annotations is an open extension map for stage-specific bookkeeping.
type Job struct {
	Payload     any
	Workspace   string
	Steps       []string
	Annotations map[string][]string
}

// Create allocates a fresh, collision-free workspace under baseDir and returns
// a Job with an empty trace. The workspace directory name embeds a random
// identifier so concurrent creations never collide. Allocation failures are
// tagged with services.ErrWorkspace and are fatal to the caller.
func Create(payload any, baseDir string) (*Job, error) {
	base := baseDir
	if base == "" {
		base = DefaultBaseDir
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, services.Wrap(services.ErrWorkspace, "job", "create base directory", base, err)
	}

	id := uuid.New()
	workspace := filepath.Join(base, "job-"+hex.EncodeToString(id[:]))
	if err := os.Mkdir(workspace, 0o755); err != nil {
		return nil, services.Wrap(services.ErrWorkspace, "job", "create workspace", workspace, err)
	}

	return &Job{Payload: payload, Workspace: workspace}, nil
}

// RecordStep appends name to the trace and writes a marker file named after
// the stage containing exactly the stage name. Duplicate names append again;
// the trace is never deduplicated or reordered.
func (j *Job) RecordStep(name string) error {
	j.Steps = append(j.Steps, name)
	marker := filepath.Join(j.Workspace, name+".txt")
	if err := os.WriteFile(marker, []byte(name), 0o644); err != nil {
		return services.Wrap(services.ErrWorkspace, "job", "write marker", name, err)
	}
	return nil
}

// Annotate appends value to the named annotation list, allocating the
// extension map on first use.
func (j *Job) Annotate(key, value string) {
	if j.Annotations == nil {
		j.Annotations = make(map[string][]string)
	}
	j.Annotations[key] = append(j.Annotations[key], value)
}

// ID returns the workspace directory name, which uniquely identifies the job.
func (j *Job) ID() string {
	return filepath.Base(j.Workspace)
}

// MarkerPath returns the on-disk marker location for a stage name.
func (j *Job) MarkerPath(name string) string {
	return filepath.Join(j.Workspace, name+".txt")
}

func (j *Job) String() string {
	return fmt.Sprintf("Job(%s, %d steps)", j.ID(), len(j.Steps))
}
