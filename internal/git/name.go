package git

import (
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// DisplayName resolves the human-readable identifier for a repository:
// the basename of its origin remote URL with any .git suffix stripped,
// falling back to the directory name when no remote is configured.
// Opening the repository here also validates the path before any git
// invocation runs against it.
func DisplayName(repoPath string) (string, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return "", fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	if name := remoteName(repo); name != "" {
		return name, nil
	}

	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

func remoteName(repo *gogit.Repository) string {
	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return NameFromRemoteURL(urls[0])
}

// NameFromRemoteURL extracts the repository name from a remote URL in
// any of the common forms (https, ssh, scp-like, local path).
func NameFromRemoteURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, "/")

	name := url
	if idx := strings.LastIndexAny(name, "/:"); idx != -1 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".git")
}
