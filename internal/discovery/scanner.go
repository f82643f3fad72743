package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tlrerrors "tlr/internal/errors"
)

// Scanner scans a directory tree for log files
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directory names to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds every file under root whose name contains "." followed by the
// extension. The match is substring containment, not a suffix check, so "xml"
// selects "run.xml.bak" but not "build_xml". A leading "~" in root is
// expanded to the home directory.
func (s *Scanner) Scan(root, extension string) ([]string, error) {
	var logFiles []string
	marker := "." + strings.TrimPrefix(extension, ".")

	expanded, err := ExpandHome(root)
	if err != nil {
		return nil, tlrerrors.Read(root, "expand home directory", err)
	}

	root = filepath.Clean(expanded)
	info, err := os.Stat(root)
	if err != nil {
		return nil, tlrerrors.Read(root, "log directory does not exist", err)
	}
	if !info.IsDir() {
		return nil, tlrerrors.Read(root, "log path is not a directory", nil)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && s.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.Contains(d.Name(), marker) {
			logFiles = append(logFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, tlrerrors.Read(root, "walk log directory", err)
	}

	return logFiles, nil
}

// ExpandHome replaces a leading "~" with the current user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
