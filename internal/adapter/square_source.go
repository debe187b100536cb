package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "loshu.dev/pkg/loshu/internal/model"
)

// SquareSource locates and reads matrices stored on disk so the domain can
// verify them without touching the filesystem directly.
type SquareSource interface {
	// Glob expands doublestar patterns (e.g. squares/**/*.json) into a sorted,
	// de-duplicated list of files.
	Glob(patterns []string) ([]m.Path, error)

	// ReadSquare loads the matrix stored at path, choosing the decoder from the extension.
	ReadSquare(path m.Path) (m.SquareFile, error)
}

// LocalSquareSource reads squares from the local filesystem.
type LocalSquareSource struct{}

// NewLocalSquareSource constructs a LocalSquareSource.
func NewLocalSquareSource() *LocalSquareSource {
	return &LocalSquareSource{}
}

// Glob implements SquareSource.
func (s *LocalSquareSource) Glob(patterns []string) ([]m.Path, error) {
	seen := map[string]struct{}{}
	paths := make([]m.Path, 0)

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		slog.Debug("Expanded pattern", "pattern", pattern, "matches", len(matches))

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			paths = append(paths, m.Path(match))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %v", patterns)
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i] < paths[j]
	})

	return paths, nil
}

// ReadSquare implements SquareSource.
func (s *LocalSquareSource) ReadSquare(path m.Path) (m.SquareFile, error) {
	// #nosec G304 - path is provided explicitly by the user
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.SquareFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	mx, err := DecodeMatrix(FormatForPath(path), content)
	if err != nil {
		return m.SquareFile{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return m.SquareFile{Path: path, Matrix: mx}, nil
}
