package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = "icws.yaml"

	// DefaultPackagesDir is the directory holding one subdirectory per package.
	DefaultPackagesDir = "packages"

	// DefaultRegistryFile maps package names to fetch locators.
	DefaultRegistryFile = "ic_packages_info.json"

	// DefaultDependenciesFile is the per-package dependency declaration.
	DefaultDependenciesFile = "ic_dependencies.json"

	// DefaultBuildFile is the build file emitted into the packages directory.
	DefaultBuildFile = "CMakeLists.txt"

	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".icws"

	// JournalFileName is the name of the fetch journal inside StateDirName.
	JournalFileName = "journal.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout describes where a workspace keeps its files.
// Relative entries are resolved against Root.
type Layout struct {
	Root             string
	PackagesDir      string
	RegistryFile     string
	DependenciesFile string
	BuildFile        string
	// FetchParallelism bounds concurrent fetches within one batch. Zero means one per CPU.
	FetchParallelism int
}

// DefaultLayout returns the layout used when the workspace has no config file.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:             root,
		PackagesDir:      DefaultPackagesDir,
		RegistryFile:     DefaultRegistryFile,
		DependenciesFile: DefaultDependenciesFile,
		BuildFile:        DefaultBuildFile,
	}
}

// PackagesPath returns the absolute-or-root-relative packages directory.
func (l Layout) PackagesPath() string {
	return l.resolve(l.PackagesDir)
}

// PackagePath returns the directory a package lives in.
func (l Layout) PackagePath(name InternedString) string {
	return filepath.Join(l.PackagesPath(), name.String())
}

// DeclarationPath returns the dependency declaration file of a package.
func (l Layout) DeclarationPath(name InternedString) string {
	return filepath.Join(l.PackagePath(name), l.DependenciesFile)
}

// RegistryPath returns the registry file path.
func (l Layout) RegistryPath() string {
	return l.resolve(l.RegistryFile)
}

// BuildFilePath returns the build file path inside the packages directory.
func (l Layout) BuildFilePath() string {
	return filepath.Join(l.PackagesPath(), l.BuildFile)
}

// JournalPath returns the fetch journal path.
func (l Layout) JournalPath() string {
	return filepath.Join(l.Root, StateDirName, JournalFileName)
}

func (l Layout) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.Root, p)
}
