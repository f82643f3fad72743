package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tlrerrors "tlr/internal/errors"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, file := range files {
		fullPath := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte("<test_results/>"), 0644))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"smoke.xml",
		"nightly/api.xml",
		"nightly/deep/ui.xml",
		"nightly/notes.txt",
		"nightly/xmlrpc-notes.txt",
		"build_xml",
		"archive/old.xml.bak",
		".cache/hidden.xml",
		"vendor/lib.xml",
	})

	t.Run("selects files containing the dotted extension at any depth", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(tmpDir, "xml")
		require.NoError(t, err)

		assert.Equal(t, []string{
			".cache/hidden.xml",
			"archive/old.xml.bak",
			"nightly/api.xml",
			"nightly/deep/ui.xml",
			"smoke.xml",
			"vendor/lib.xml",
		}, relAll(t, tmpDir, results))
	})

	t.Run("skips ignored directory names", func(t *testing.T) {
		results, err := NewScanner([]string{"vendor", ".cache"}).Scan(tmpDir, "xml")
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("extension without a dot does not match", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(tmpDir, "xml")
		require.NoError(t, err)
		names := relAll(t, tmpDir, results)
		assert.NotContains(t, names, "build_xml")
		assert.NotContains(t, names, "nightly/xmlrpc-notes.txt")
	})

	t.Run("leading dot in extension is accepted", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(tmpDir, ".xml")
		require.NoError(t, err)
		assert.Len(t, results, 6)
	})

	t.Run("extension matched as substring", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(tmpDir, "xml.")
		require.NoError(t, err)
		assert.Equal(t, []string{"archive/old.xml.bak"}, relAll(t, tmpDir, results))
	})

	t.Run("no matching files", func(t *testing.T) {
		results, err := NewScanner(nil).Scan(tmpDir, "json")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("returns read error for non-existent directory", func(t *testing.T) {
		_, err := NewScanner(nil).Scan(filepath.Join(tmpDir, "missing"), "xml")
		require.Error(t, err)
		assert.True(t, tlrerrors.IsKind(err, tlrerrors.KindRead))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := NewScanner(nil).Scan(filepath.Join(tmpDir, "smoke.xml"), "xml")
		require.Error(t, err)
		assert.True(t, tlrerrors.IsKind(err, tlrerrors.KindRead))
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"~", home},
		{"~/logs", filepath.Join(home, "logs")},
		{"/abs/~/logs", "/abs/~/logs"},
		{"relative", "relative"},
		{"~other/logs", "~other/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScanner_Scan_HomeShorthand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeTree(t, home, []string{"results/smoke.xml"})

	results, err := NewScanner(nil).Scan("~/results", "xml")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(home, "results", "smoke.xml"), results[0])
}
