package contextinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var defaultCandidates = []string{
	".devcontainer/devcontainer.json",
	".devcontainer.json",
	".devcontainer/*/devcontainer.json",
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectFromFindsRepoRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, ".devcontainer", "devcontainer.json"))

	info := DetectFrom(sub, defaultCandidates)
	if !info.InRepo || info.RepoRoot != root {
		t.Fatalf("expected repo root %s, got %+v", root, info)
	}
	if info.Cwd != sub {
		t.Fatalf("expected cwd %s, got %s", sub, info.Cwd)
	}
	path, err := info.DevcontainerPath()
	if err != nil || path != filepath.Join(root, ".devcontainer", "devcontainer.json") {
		t.Fatalf("unexpected devcontainer %q err=%v", path, err)
	}
}

func TestDetectFromCandidateOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".devcontainer.json"))
	writeFile(t, filepath.Join(root, ".devcontainer", "python", "devcontainer.json"))

	info := DetectFrom(root, defaultCandidates)
	if info.Devcontainer != filepath.Join(root, ".devcontainer.json") {
		t.Fatalf("expected root-level file first, got %q", info.Devcontainer)
	}
}

func TestDetectFromGlobCandidate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".devcontainer", "node", "devcontainer.json"))
	writeFile(t, filepath.Join(root, ".devcontainer", "go", "devcontainer.json"))

	info := DetectFrom(root, defaultCandidates)
	if info.Devcontainer != filepath.Join(root, ".devcontainer", "go", "devcontainer.json") {
		t.Fatalf("expected lexically first match, got %q", info.Devcontainer)
	}
}

func TestDetectFromNothingFound(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".devcontainer.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	info := DetectFrom(root, defaultCandidates)
	if _, err := info.DevcontainerPath(); !errors.Is(err, ErrNoDevcontainer) {
		t.Fatalf("expected ErrNoDevcontainer, got %v", err)
	}
}
