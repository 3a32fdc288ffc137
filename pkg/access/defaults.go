package access

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults configures the fallback grant set applied to managers whose
// profile carries no explicit permissions.
type Defaults struct {
	ManagerPermissions []string `yaml:"manager_permissions"`
}

// ErrInvalidDefaults is returned when a defaults document cannot be parsed.
var ErrInvalidDefaults = errors.New("access.invalid_defaults")

// LoadDefaults reads a YAML defaults document.
//
//	manager_permissions:
//	  - view_dashboard
//	  - view_inventory
func LoadDefaults(r io.Reader) (Defaults, error) {
	var d Defaults
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return Defaults{}, errors.Join(ErrInvalidDefaults, err)
	}
	return d, nil
}

// LoadDefaultsFile reads a YAML defaults document from disk.
func LoadDefaultsFile(path string) (Defaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("open defaults file: %w", err)
	}
	defer f.Close()

	return LoadDefaults(f)
}
