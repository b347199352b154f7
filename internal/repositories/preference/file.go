package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileConfig holds configuration for the JSON file repository
type FileConfig struct {
	// Path of the JSON document, e.g. commandsave.json
	Path string
}

// fileRepository stores the set as a flat {"<steamid>": true} JSON object
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed preference repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Load reads the JSON document
func (r *fileRepository) Load(ctx context.Context) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoadOutput{OptOuts: map[string]bool{}}, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var optOuts map[string]bool
	if err := json.Unmarshal(data, &optOuts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, r.path, err)
	}

	// a literal null decodes to a nil map
	if optOuts == nil {
		optOuts = map[string]bool{}
	}

	return &LoadOutput{OptOuts: optOuts}, nil
}

// Save rewrites the document through a temp file and rename so a crash
// mid-write never leaves a truncated file behind
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return ErrNilInput
	}

	optOuts := input.OptOuts
	if optOuts == nil {
		optOuts = map[string]bool{}
	}

	data, err := json.Marshal(optOuts)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace preferences: %w", err)
	}

	return nil
}
