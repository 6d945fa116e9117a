package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DiskStore writes Transcripts as JSON files to a directory.
type DiskStore struct {
	mu  sync.Mutex
	dir string
}

var _ Store = &DiskStore{}

// NewDiskStore creates a new DiskStore writing to dir.  If dir is empty,
// a temp directory is created lazily on the first Save.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Save writes a Transcript as a JSON file to disk, naming it after the
// transcript ID.  A transcript without an ID is given a fresh one.
func (s *DiskStore) Save(t *Transcript) error {
	dir, err := s.ensureDir()
	if err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshalling transcript %s", t.ID)
	}
	if err := os.WriteFile(s.path(dir, t.ID), data, 0o644); err != nil {
		return errors.Wrapf(err, "writing transcript %s", t.ID)
	}
	return nil
}

// Load reads a Transcript from disk.
func (s *DiskStore) Load(runID string) (*Transcript, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, errors.Wrapf(err, "bad run id %q", runID)
	}
	dir, err := s.ensureDir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(dir, runID))
	if err != nil {
		return nil, errors.Wrapf(err, "reading transcript %s", runID)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling transcript %s", runID)
	}
	return &t, nil
}

// Dir returns the directory holding transcripts, creating it if need be.
func (s *DiskStore) Dir() (string, error) {
	return s.ensureDir()
}

// Path returns the file a transcript with the given ID is saved to.
func (s *DiskStore) Path(runID string) (string, error) {
	dir, err := s.ensureDir()
	if err != nil {
		return "", err
	}
	return s.path(dir, runID), nil
}

func (s *DiskStore) path(dir, runID string) string {
	return filepath.Join(dir, runID+".json")
}

func (s *DiskStore) ensureDir() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", errors.Wrap(err, "creating transcript directory")
		}
		return s.dir, nil
	}
	dir, err := os.MkdirTemp("", "scriptrunner-runs-*")
	if err != nil {
		return "", errors.Wrap(err, "creating transcript directory")
	}
	s.dir = dir
	return dir, nil
}
