package repositories

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

// FileSource reads the schedule from a TOML or YAML data file on every
// Load, so edits to the file show up on the next request.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (source *FileSource) Load(_ context.Context) (models.Schedule, error) {
	data, err := os.ReadFile(source.path)
	if err != nil {
		return models.Schedule{}, models.NewLoadError(err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(source.path)); ext {
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = fmt.Errorf("unsupported data file extension %q", ext)
	}
	if err != nil {
		return models.Schedule{}, models.NewLoadError(
			fmt.Errorf("%s: %w", source.path, err),
		)
	}

	return doc.toSchedule(), nil
}
