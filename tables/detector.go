package tables

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tsawler/toolbox/model"
)

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect finds tables in a page
	Detect(page *model.Page) ([]*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Config holds detector configuration
type Config struct {
	// Rows holding fewer fragments than this are dropped during row grouping
	MinFragmentsPerRow int

	// Minimum rows for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int

	// Maximum horizontal gap between spans merged into one column (points)
	ColumnTolerance float64

	// Row threshold used when there are too few fragments to measure gaps (points)
	DefaultRowGap float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinFragmentsPerRow: 2,
		MinRows:            2,
		MinCols:            2,
		ColumnTolerance:    10,
		DefaultRowGap:      2,
	}
}

// Validate reports whether every threshold is usable.
func (c Config) Validate() error {
	switch {
	case c.MinFragmentsPerRow < 0:
		return fmt.Errorf("min fragments per row must not be negative, got %d", c.MinFragmentsPerRow)
	case c.MinRows < 0:
		return fmt.Errorf("min rows must not be negative, got %d", c.MinRows)
	case c.MinCols < 0:
		return fmt.Errorf("min cols must not be negative, got %d", c.MinCols)
	case c.ColumnTolerance < 0:
		return fmt.Errorf("column tolerance must not be negative, got %g", c.ColumnTolerance)
	case c.DefaultRowGap < 0:
		return fmt.Errorf("default row gap must not be negative, got %g", c.DefaultRowGap)
	}
	return nil
}

// DetectorRegistry holds registered detectors
type DetectorRegistry struct {
	mu        sync.RWMutex
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector
func (r *DetectorRegistry) Register(detector Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name
func (r *DetectorRegistry) Get(name string) Detector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.detectors[name]
}

// List returns all registered detector names in sorted order
func (r *DetectorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a detector by name
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	RegisterDetector(NewAlignedDetector())
}
