package constants

import "os"

// Permissions of files and folders created by the CLI.
const (
	// DefaultFilePermissions is rw-r--r--, used for downloads and config files without secrets.
	DefaultFilePermissions os.FileMode = 0o644
	// DefaultFolderPermissions is rwxr-xr-x, used for missing download folders.
	DefaultFolderPermissions os.FileMode = 0o755
	// SecretFilePermissions is rw-------, applied to a config file once it holds jwt_secret.
	SecretFilePermissions os.FileMode = 0o600
)

// Extensions that select a data file decoder. Anything else is read as YAML.
const (
	ExtensionJSON = ".json"
	ExtensionTOML = ".toml"
)
