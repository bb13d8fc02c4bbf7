package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/norareidy/i-need-a-reference/internal/branding"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyRepos           = "repos"
	KeyParentDir       = "parent_dir"
	KeyExtension       = "extension"
	KeyEditor          = "editor"
	KeySlowPrint       = "slow_print"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyRequiredVersion = "required_version"
)

// Dir returns the path to the config directory (~/.ineedaref/).
// The <PREFIX>_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ineedaref/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// setDefaults registers the built-in value of every key.
func setDefaults() {
	viper.SetDefault(KeyRepos, candidate.DefaultRepos)
	viper.SetDefault(KeyParentDir, "..")
	viper.SetDefault(KeyExtension, candidate.DefaultExtension)
	viper.SetDefault(KeyEditor, "")
	viper.SetDefault(KeySlowPrint, true)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "text")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Reset clears all loaded settings. Tests use it between cases.
func Reset() {
	viper.Reset()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	if key == KeyRepos {
		return strings.Join(Repos(), ",")
	}
	return viper.GetString(key)
}

// Repos returns the sibling repositories to search. A comma-separated
// string (as set from the environment or `config set`) is split.
func Repos() []string {
	raw := viper.GetStringSlice(KeyRepos)
	var repos []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				repos = append(repos, part)
			}
		}
	}
	return repos
}

// ParentDir returns the directory that contains the base directory.
func ParentDir() string { return viper.GetString(KeyParentDir) }

// Extension returns the docs source file extension.
func Extension() string { return viper.GetString(KeyExtension) }

// Editor returns the configured editor command, falling back to $VISUAL
// and $EDITOR. Empty means the system default opener.
func Editor() string {
	if e := viper.GetString(KeyEditor); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return os.Getenv("EDITOR")
}

// SlowPrint reports whether progress messages are typed out slowly.
func SlowPrint() bool { return viper.GetBool(KeySlowPrint) }

// LogLevel returns the zerolog level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// LogFormat returns "text" or "json".
func LogFormat() string { return viper.GetString(KeyLogFormat) }

// RequiredVersion returns the semver constraint the binary must satisfy.
func RequiredVersion() string { return viper.GetString(KeyRequiredVersion) }

// ErrInvalid is returned by Set when the value would leave the config file
// failing the schema.
var ErrInvalid = errors.New("invalid config")

// Set stores a config key-value pair in the config file. Only keys already
// in the file plus key are written, never environment overrides or
// defaults. The file is validated before it is written and left untouched
// when the new content would be invalid.
func Set(key, value string) error {
	v, err := parseValue(key, value)
	if err != nil {
		return err
	}

	configFile := FilePath()
	settings, err := readSettings(configFile)
	if err != nil {
		return err
	}
	settings[key] = v

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s", ErrInvalid, result.Issues[0])
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, v)
	return nil
}

// readSettings returns the keys stored in the config file, or an empty map
// when there is no file yet.
func readSettings(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var settings map[string]interface{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return settings, nil
}

// parseValue converts a command-line value to the type stored under key.
func parseValue(key, value string) (interface{}, error) {
	switch key {
	case KeyRepos:
		var repos []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				repos = append(repos, part)
			}
		}
		return repos, nil
	case KeySlowPrint:
		return parseBool(value)
	default:
		return value, nil
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}
