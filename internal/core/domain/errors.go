package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageAlreadyExists is returned when a snapshot receives two records with the same name.
	ErrPackageAlreadyExists = zerr.New("package already exists")

	// ErrInvalidPackageName is returned when a package identifier is empty or cannot name a directory.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrCycleDetected is returned when the dependency graph of known packages contains a cycle.
	ErrCycleDetected = zerr.New("circular dependency")

	// ErrDependencyNotPresent is returned when packages cannot be ordered because a
	// dependency they declare has no package record and is not Unknown.
	ErrDependencyNotPresent = zerr.New("dependency not present")

	// ErrRegistryNotFound is returned when the workspace has no registry file.
	ErrRegistryNotFound = zerr.New("registry file not found")

	// ErrRegistryReadFailed is returned when the registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read registry file")

	// ErrRegistryParseFailed is returned when the registry file is not a JSON object of strings.
	ErrRegistryParseFailed = zerr.New("failed to parse registry file")

	// ErrDeclarationNotFound is returned when a package directory has no dependency declaration.
	ErrDeclarationNotFound = zerr.New("dependency declaration not found")

	// ErrDeclarationReadFailed is returned when a dependency declaration cannot be read.
	ErrDeclarationReadFailed = zerr.New("failed to read dependency declaration")

	// ErrDeclarationParseFailed is returned when a dependency declaration is not a JSON array of strings.
	ErrDeclarationParseFailed = zerr.New("failed to parse dependency declaration")

	// ErrWorkspaceUnreadable is returned when the packages directory cannot be created or listed.
	ErrWorkspaceUnreadable = zerr.New("workspace is not accessible")

	// ErrConfigReadFailed is returned when the workspace config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the workspace config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the workspace config has invalid values.
	ErrConfigInvalid = zerr.New("invalid config")

	// ErrFetchFailed is returned when a package cannot be fetched from its locator.
	ErrFetchFailed = zerr.New("failed to fetch package")

	// ErrBuildFileWriteFailed is returned when the build file cannot be written.
	ErrBuildFileWriteFailed = zerr.New("failed to write build file")

	// ErrJournalReadFailed is returned when the fetch journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read fetch journal")

	// ErrJournalUnmarshalFailed is returned when the fetch journal cannot be unmarshaled.
	ErrJournalUnmarshalFailed = zerr.New("failed to unmarshal fetch journal")

	// ErrJournalWriteFailed is returned when the fetch journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write fetch journal")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrNoPackagesSpecified is returned when add is called without identifiers.
	ErrNoPackagesSpecified = zerr.New("no packages specified")
)
