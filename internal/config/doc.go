// Package config manages user-level settings stored at ~/.ineedaref/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the list of sibling docs repositories to search, and validates the file
// against an embedded JSON schema.
package config
