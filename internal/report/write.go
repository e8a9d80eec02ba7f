package report

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rhicksrad/India/internal/logging"
	"github.com/rhicksrad/India/internal/utils"
)

// Output file names within the output directory.
const (
	IncidenceFile = "incidence_summary.json"
	CuisineFile   = "cuisine_summary.json"
	JoinedFile    = "regions_joined.json"
	ManifestFile  = "manifest.json"
)

// OutputTooLargeError reports an output collection that serialized past the
// byte ceiling.
type OutputTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *OutputTooLargeError) Error() string {
	return fmt.Sprintf("output %s is %d bytes, over the %d byte ceiling", e.Path, e.Size, e.Limit)
}

// WriteResult records one written output file.
type WriteResult struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
	Rows  int    `json:"rows"`
}

// Write serializes the three collections into dir. Each file is checked
// against the byte ceiling before touching disk; the first oversized
// collection aborts the run, naming its file. A maxBytes of 0 disables the
// ceiling.
func Write(out *Outputs, dir string, maxBytes int64) ([]WriteResult, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}
	files := []struct {
		name string
		v    any
		rows int
	}{
		{IncidenceFile, out.Incidence, len(out.Incidence)},
		{CuisineFile, out.Cuisine, len(out.Cuisine)},
		{JoinedFile, out.Joined, len(out.Joined)},
	}
	results := make([]WriteResult, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		b, err := utils.PrettyJSON(f.v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.name, err)
		}
		if maxBytes > 0 && int64(len(b)) > maxBytes {
			return nil, &OutputTooLargeError{Path: path, Size: int64(len(b)), Limit: maxBytes}
		}
		if err := utils.SafeWriteFile(path, b); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
		logging.Debug("wrote output", zap.String("path", path), zap.Int("bytes", len(b)), zap.Int("rows", f.rows))
		results = append(results, WriteResult{Path: path, Bytes: int64(len(b)), Rows: f.rows})
	}
	return results, nil
}
