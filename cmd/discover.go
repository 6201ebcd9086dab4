package cmd

import (
	"os"

	"github.com/mvargas/gitlet-go/internal/repo"
)

// currentRepo discovers the repository rooted at (or above) the current
// working directory. Every verb but init calls this first.
func currentRepo() (*repo.Repository, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return repo.Discover(dir)
}
