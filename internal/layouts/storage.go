// Package layouts stores named window dumps under the user config directory.
package layouts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1broseidon/wincfg/internal/dumpfile"
	"github.com/1broseidon/wincfg/internal/snapshot"
)

const fileExt = ".txt"

// Dir returns the directory holding saved layouts.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "wincfg", "layouts"), nil
}

// ValidateName rejects names that are empty, carry surrounding whitespace, or
// would escape the layouts directory.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("layout name is required")
	}
	if trimmed != name {
		return fmt.Errorf("invalid layout name %q: leading or trailing whitespace", name)
	}
	if strings.Contains(name, string(os.PathSeparator)) || strings.Contains(name, "/") || name != filepath.Base(name) {
		return fmt.Errorf("invalid layout name %q", name)
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return fmt.Errorf("invalid layout name %q", name)
	}
	return nil
}

func layoutPath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+fileExt), nil
}

// Write saves records under name in dump format, replacing any previous save.
func Write(name string, records []snapshot.Record) error {
	path, err := layoutPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	var buf bytes.Buffer
	if err := dumpfile.Encode(&buf, records); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write layout %q: %w", name, err)
	}
	return nil
}

// Open returns the saved dump for name. The caller closes it.
func Open(name string) (*os.File, error) {
	path, err := layoutPath(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %q: %w", name, err)
	}
	return f, nil
}

func Delete(name string) error {
	path, err := layoutPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", name, err)
	}
	return nil
}

// List returns saved layout names in sorted order.
func List() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, fileExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(out)
	return out, nil
}
