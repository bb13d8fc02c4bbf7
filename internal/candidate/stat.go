package candidate

import (
	"errors"
	"os"

	"github.com/djherbis/times"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
)

// ErrNoBirthTime is returned when the filesystem does not record a
// creation time for a file.
var ErrNoBirthTime = errors.New("creation time not available on this filesystem")

// Stater reads the metadata of a candidate file.
type Stater interface {
	Stat(path string) (Meta, error)
}

// FSStater reads metadata from the local filesystem.
type FSStater struct{}

// Stat returns size, creation time, and modification time for path. A file
// without a recorded creation time cannot be ranked, so that is an error.
func (FSStater) Stat(path string) (Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, apperr.IO("reading metadata", path, err)
	}

	ts, err := times.Stat(path)
	if err != nil {
		return Meta{}, apperr.IO("reading timestamps", path, err)
	}
	if !ts.HasBirthTime() {
		return Meta{}, apperr.IO("reading creation time", path, ErrNoBirthTime)
	}

	return Meta{
		Size:     info.Size(),
		Created:  ts.BirthTime(),
		Modified: info.ModTime(),
	}, nil
}
