package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rhicksrad/India/internal/utils"
)

// SourceCount records how many rows one source table contributed and how
// many it lost to drops.
type SourceCount struct {
	Name    string `json:"name"`
	Kept    int    `json:"kept"`
	Dropped int    `json:"dropped"`
}

// Manifest records one build run: what went in, what came out.
type Manifest struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Sources    []SourceCount `json:"sources"`
	Outputs    []WriteResult `json:"outputs"`
}

// NewManifest stamps a fresh run record.
func NewManifest() *Manifest {
	return &Manifest{RunID: uuid.NewString(), StartedAt: time.Now().UTC()}
}

// AddSource appends one source's row accounting.
func (m *Manifest) AddSource(name string, kept, dropped int) {
	m.Sources = append(m.Sources, SourceCount{Name: name, Kept: kept, Dropped: dropped})
}

// Save finalizes the manifest and writes it next to the outputs.
func (m *Manifest) Save(dir string) error {
	m.FinishedAt = time.Now().UTC()
	b, err := utils.PrettyJSON(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, ManifestFile), b); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
