package tables

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tsawler/pdfstruct/model"
)

// DefaultDetector names the detector used when none is chosen
const DefaultDetector = "lines"

// Detector finds table candidates among the drawings of one page.
// Implementations must be safe for concurrent use across pages.
type Detector interface {
	Detect(page int, drawings []model.Drawing) []model.Table
	Name() string
}

// DetectorRegistry maps names to detectors
type DetectorRegistry struct {
	mu        sync.RWMutex
	detectors map[string]Detector
}

// NewRegistry creates an empty registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{detectors: make(map[string]Detector)}
}

// Register adds detector under its name, replacing any previous one
func (r *DetectorRegistry) Register(detector Detector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors[detector.Name()] = detector
}

// Get returns the detector registered as name
func (r *DetectorRegistry) Get(name string) (Detector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.detectors[name]
	if !ok {
		return nil, fmt.Errorf("unknown table detector %q", name)
	}
	return d, nil
}

// List returns the registered names, sorted
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

var globalRegistry = NewRegistry()

// RegisterDetector makes detector available to GetDetector
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector returns the globally registered detector called name
func GetDetector(name string) (Detector, error) {
	return globalRegistry.Get(name)
}

// ListDetectors returns the globally registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	RegisterDetector(NewFinder())
}
