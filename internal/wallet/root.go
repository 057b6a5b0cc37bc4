package wallet

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	privateDir  = ".private"
	walletsDir  = "wallets"
	walletsFile = "wallets.json"
)

var projectMarkers = []string{"package.json", ".env", "contracts", ".private", "go.mod"}

// FindProjectRoot walks up from start to the first directory holding a
// project marker. It falls back to start.
func FindProjectRoot(fs afero.Fs, start string) string {
	dir := filepath.Clean(start)
	for {
		for _, marker := range projectMarkers {
			if ok, _ := afero.Exists(fs, filepath.Join(dir, marker)); ok {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// StorePath returns the wallets file location for a project root.
func StorePath(projectRoot string) string {
	return filepath.Join(projectRoot, privateDir, walletsDir, walletsFile)
}
