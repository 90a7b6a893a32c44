package contextinfo

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoDevcontainer is returned when no candidate path exists under the repo root.
var ErrNoDevcontainer = errors.New("no devcontainer.json found")

// Info holds the working context a detection runs in.
type Info struct {
	Cwd          string
	RepoRoot     string
	InRepo       bool
	Devcontainer string
}

// Detect collects cwd, repo root, and the first existing devcontainer candidate.
func Detect(candidates []string) (Info, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Info{}, err
	}
	return DetectFrom(cwd, candidates), nil
}

// DetectFrom is Detect rooted at an explicit directory.
func DetectFrom(start string, candidates []string) Info {
	repo, inRepo := findRepoRoot(start)
	return Info{
		Cwd:          start,
		RepoRoot:     repo,
		InRepo:       inRepo,
		Devcontainer: findDevcontainer(repo, candidates),
	}
}

// DevcontainerPath returns the discovered devcontainer file or ErrNoDevcontainer.
func (i Info) DevcontainerPath() (string, error) {
	if i.Devcontainer == "" {
		return "", ErrNoDevcontainer
	}
	return i.Devcontainer, nil
}

func findRepoRoot(start string) (string, bool) {
	cur := start
	for {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			return cur, true
		}
		next := filepath.Dir(cur)
		if next == cur {
			return start, false
		}
		cur = next
	}
}

// findDevcontainer checks candidates in order; glob patterns resolve to
// their lexically first regular-file match.
func findDevcontainer(root string, candidates []string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		pattern := c
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if st, err := os.Stat(m); err == nil && st.Mode().IsRegular() {
				return m
			}
		}
	}
	return ""
}
