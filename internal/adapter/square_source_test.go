package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "loshu.dev/pkg/loshu/internal/model"
)

func TestLocalSquareSource_Glob(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "odd", "deep"))
	writeTestFile(t, filepath.Join(root, "a.json"), "[[1]]")
	writeTestFile(t, filepath.Join(root, "odd", "b.json"), "[[1]]")
	writeTestFile(t, filepath.Join(root, "odd", "deep", "c.json"), "[[1]]")
	writeTestFile(t, filepath.Join(root, "odd", "deep", "d.csv"), "1")

	source := NewLocalSquareSource()

	t.Run("double star descends into subdirectories", func(t *testing.T) {
		paths, err := source.Glob([]string{filepath.Join(root, "**", "*.json")})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.json")),
			m.Path(filepath.Join(root, "odd", "b.json")),
			m.Path(filepath.Join(root, "odd", "deep", "c.json")),
		}, paths)
	})

	t.Run("overlapping patterns are de-duplicated", func(t *testing.T) {
		paths, err := source.Glob([]string{
			filepath.Join(root, "odd", "**", "*"),
			filepath.Join(root, "odd", "deep", "*.csv"),
		})
		require.NoError(t, err)
		assert.Len(t, paths, 3)
	})

	t.Run("literal path", func(t *testing.T) {
		paths, err := source.Glob([]string{filepath.Join(root, "a.json")})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "a.json"))}, paths)
	})

	t.Run("directories are not matched", func(t *testing.T) {
		_, err := source.Glob([]string{filepath.Join(root, "odd")})
		require.Error(t, err)
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := source.Glob([]string{filepath.Join(root, "*.txt")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no files match")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := source.Glob([]string{filepath.Join(root, "[")})
		require.Error(t, err)
	})
}

func TestLocalSquareSource_ReadSquare(t *testing.T) {
	root := t.TempDir()
	source := NewLocalSquareSource()
	want := m.Matrix{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json rows", "rows.json", "[[2,7,6],[9,5,1],[4,3,8]]"},
		{"json square object", "square.json", `{"dimension":3,"magicConstant":15,"matrix":[[2,7,6],[9,5,1],[4,3,8]]}`},
		{"yaml rows", "rows.yaml", "- [2, 7, 6]\n- [9, 5, 1]\n- [4, 3, 8]\n"},
		{"yaml report square", "square.yml", "dimension: 3\nmatrix:\n  - [2, 7, 6]\n  - [9, 5, 1]\n  - [4, 3, 8]\n"},
		{"csv", "square.csv", "2,7,6\n9, 5, 1\n4,3,8\n"},
		{"text", "square.txt", "2 7 6\n\n9 5 1\n 4  3  8 \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(root, tt.file)
			writeTestFile(t, path, tt.content)

			file, err := source.ReadSquare(m.Path(path))
			require.NoError(t, err)
			assert.Equal(t, m.Path(path), file.Path)
			assert.Equal(t, want, file.Matrix)
		})
	}
}

func TestLocalSquareSource_ReadSquareErrors(t *testing.T) {
	root := t.TempDir()
	source := NewLocalSquareSource()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"non numeric csv", "bad.csv", "1,2\nx,4\n"},
		{"empty json", "empty.json", "[]"},
		{"scalar json", "scalar.json", "42"},
		{"blank text", "blank.txt", "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(root, tt.file)
			writeTestFile(t, path, tt.content)

			_, err := source.ReadSquare(m.Path(path))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := source.ReadSquare(m.Path(filepath.Join(root, "missing.json")))
		require.Error(t, err)
	})
}
