// Package git detects repository context using go-git.
package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Context describes the repository the timer is running in.
type Context struct {
	Branch string
	Commit string
}

// String formats the context as "branch@shortsha" for display.
func (c Context) String() string {
	return fmt.Sprintf("%s@%s", c.Branch, shortHash(c.Commit))
}

// Detect scans dir (or the working directory when dir is empty) for a
// git repository and returns its branch and HEAD commit.
func Detect(dir string) (Context, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return Context{}, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repoPath, err := findRepo(dir)
	if err != nil {
		return Context{}, fmt.Errorf("git repository not found: %w", err)
	}

	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return Context{}, fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return Context{}, fmt.Errorf("failed to get HEAD: %w", err)
	}

	branch := head.Name().Short()
	if branch == "HEAD" {
		branch = "detached"
	}

	return Context{
		Branch: branch,
		Commit: head.Hash().String(),
	}, nil
}

// findRepo traverses up the directory tree to find a .git directory.
func findRepo(startPath string) (string, error) {
	currentPath := startPath

	for {
		gitPath := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return currentPath, nil
		}

		// A .git file containing a gitdir reference marks a worktree.
		if err == nil && !info.IsDir() {
			content, err := os.ReadFile(gitPath)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return currentPath, nil
			}
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	return "", fmt.Errorf("no .git directory found")
}

// shortHash abbreviates a commit hash for display.
func shortHash(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
