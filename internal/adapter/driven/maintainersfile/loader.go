// Package maintainersfile loads a MaintainerDirectory from a MAINTAINERS
// text file on disk. Loading is all-or-nothing: a malformed line fails the
// whole load, before any pull request is processed.
package maintainersfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/taxonomy"
)

// Load reads the maintainers file at path into a directory.
func Load(path string) (*model.MaintainerDirectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening maintainers file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dir, err := model.ParseMaintainerDirectory(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return dir, nil
}

// LoadForRepo resolves the conventional maintainers file name for a target
// repo ("core" or "extras") under baseDir and loads it.
func LoadForRepo(baseDir, repo string) (*model.MaintainerDirectory, error) {
	name, ok := taxonomy.MaintainerFiles[repo]
	if !ok {
		return nil, fmt.Errorf("no maintainers file known for repo %q", repo)
	}
	return Load(filepath.Join(baseDir, name))
}
