package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baajarmeh/wooridb/internal/engine"
	"github.com/baajarmeh/wooridb/internal/wql"
)

// Catalog is one YAML file of WQL statements executed at boot, typically
// CREATE ENTITY declarations plus fixture inserts.
type Catalog struct {
	Name    string   `yaml:"name"`
	Queries []string `yaml:"queries"`
}

// LoadCatalogs reads every .yaml/.yml file in dir, sorted by file name.
// A missing directory is not an error; a server can run without seeds.
func LoadCatalogs(dir string) ([]Catalog, error) {
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var catalogs []Catalog
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var c Catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("seed catalog %s: %w", name, err)
		}
		// catalog name defaults to the file name
		if c.Name == "" {
			c.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, nil
}

// Apply parses and executes every query of every catalog, in order. The
// first failure aborts with the catalog and query position attached.
func Apply(storage *engine.Storage, catalogs []Catalog) error {
	for _, c := range catalogs {
		for n, q := range c.Queries {
			cmd, err := wql.Parse(q)
			if err != nil {
				return fmt.Errorf("seed %s query %d: %s", c.Name, n+1, err)
			}
			if _, err := storage.Execute(cmd); err != nil {
				return fmt.Errorf("seed %s query %d: %w", c.Name, n+1, err)
			}
		}
	}
	return nil
}
