package resources

import "github.com/LegacyCodeHQ/resprune/fsys"

// Config describes a single run. It is built once from the command line
// and passed by value.
type Config struct {
	Category      Category
	RootDir       string
	ResourcesPath string
	// DryRun reports unused resources without deleting them.
	DryRun bool
	// FS defaults to the host filesystem when nil.
	FS fsys.FileSystem
}

func (c Config) fileSystem() fsys.FileSystem {
	if c.FS == nil {
		return fsys.OS()
	}
	return c.FS
}
