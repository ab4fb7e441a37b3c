package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/01DesignX/alva/pkg/models"
)

const (
	PatternsFile = "patterns.yaml"
)

// patternLibrary is the on-disk shape of the registry.
type patternLibrary struct {
	Patterns []*models.Pattern `yaml:"patterns"`
}

// PatternRegistry manages the pattern library of a project.
type PatternRegistry struct {
	mu      sync.RWMutex
	library *patternLibrary
	path    string
}

// NewPatternRegistry loads the pattern library from .alva/patterns.yaml,
// or starts empty when the file does not exist yet.
func NewPatternRegistry() (*PatternRegistry, error) {
	registryPath := filepath.Join(AlvaDir, PatternsFile)

	r := &PatternRegistry{
		path: registryPath,
	}

	if err := r.Load(); err != nil {
		if os.IsNotExist(err) {
			r.library = &patternLibrary{}
			return r, nil
		}
		return nil, fmt.Errorf("failed to load pattern registry: %w", err)
	}

	return r, nil
}

// Load reads the pattern library from disk
func (r *PatternRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var library patternLibrary
	if err := yaml.Unmarshal(data, &library); err != nil {
		return fmt.Errorf("failed to parse pattern registry: %w", err)
	}

	r.library = &library
	return nil
}

// Save writes the pattern library to disk
func (r *PatternRegistry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(r.library)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern registry: %w", err)
	}

	// Write atomically
	tmpFile := r.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write pattern registry: %w", err)
	}

	if err := os.Rename(tmpFile, r.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save pattern registry: %w", err)
	}

	return nil
}

// Patterns returns the registered patterns in declaration order.
func (r *PatternRegistry) Patterns() []*models.Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Pattern, len(r.library.Patterns))
	copy(out, r.library.Patterns)
	return out
}

// PatternByID retrieves a pattern by its identity.
func (r *PatternRegistry) PatternByID(id string) (*models.Pattern, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pat := range r.library.Patterns {
		if pat.ID == id {
			return pat, true
		}
	}
	return nil, false
}

// Add registers a pattern, replacing any existing pattern with the
// same ID.
func (r *PatternRegistry) Add(pat *models.Pattern) error {
	if pat == nil || pat.ID == "" {
		return fmt.Errorf("pattern must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.library.Patterns {
		if existing.ID == pat.ID {
			r.library.Patterns[i] = pat
			return nil
		}
	}
	r.library.Patterns = append(r.library.Patterns, pat)
	return nil
}

// Len reports the number of registered patterns.
func (r *PatternRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.library.Patterns)
}
