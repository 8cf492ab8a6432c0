package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const gitignoreHeader = `# proxygrid home, generated by "proxygrid config init".
# config.yaml is meant to be tracked; log output is not.
`

// GitignoreContent builds the .gitignore for a proxygrid home. Log files are
// always ignored by extension. When logFile lives below home, its directory
// is ignored as well, so rotated or renamed logs stay out of commits.
func GitignoreContent(home, logFile string) string {
	var b strings.Builder
	b.WriteString(gitignoreHeader)
	if dir, ok := logDirWithin(home, logFile); ok {
		b.WriteString(dir + "/\n")
	}
	b.WriteString("*.log\n")
	return b.String()
}

// logDirWithin returns the directory of logFile relative to home, in slash
// form. It fails for an empty logFile, a file directly in home, or a file
// outside home.
func logDirWithin(home, logFile string) (string, bool) {
	if logFile == "" {
		return "", false
	}
	rel, err := filepath.Rel(home, filepath.Dir(logFile))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// EnsureGitignore writes the .gitignore for home unless one exists. It
// reports whether a file was written and never touches an existing one.
func EnsureGitignore(home, logFile string) (bool, error) {
	path := filepath.Join(home, ".gitignore")

	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("checking .gitignore at %s: %w", path, err)
	}

	if err := os.MkdirAll(home, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", home, err)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if err := os.WriteFile(path, []byte(GitignoreContent(home, logFile)), 0o644); err != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", path, err)
	}
	return true, nil
}
