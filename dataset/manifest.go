package dataset

import (
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunSpec is one run entry of a study manifest: a name plus the BOLD and
// events files that hold its data.
type RunSpec struct {
	Name   string `yaml:"name"`
	BOLD   string `yaml:"bold"`
	Events string `yaml:"events"`
}

// Manifest describes a study in one of two layouts:
//
//   - run layout: one RunSpec per run, each with its own BOLD and
//     events.tsv files;
//   - session layout: a single session-long BOLD file plus a per-scan
//     label table whose chunk column splits the session into runs.
//
// Relative file paths are resolved against the directory the manifest
// was loaded from (see Resolve).
type Manifest struct {
	Study      string           `yaml:"study"`
	TR         float64          `yaml:"tr"`
	Conditions []string         `yaml:"conditions,omitempty"`
	Runs       []RunSpec        `yaml:"runs,omitempty"`
	BOLD       string           `yaml:"bold,omitempty"`
	Labels     string           `yaml:"labels,omitempty"`
	Masks      map[string][]int `yaml:"masks,omitempty"`

	dir string // directory of the loaded manifest file
}

// LoadManifest reads and validates a YAML study manifest.
//
// Errors: ErrEmptyManifest, ErrBadTR, ErrNoRuns, ErrBadRunSpec,
// ErrMixedLayout, ErrBadSessionSpec, ErrMaskOutOfRange (negative mask
// index), plus wrapped I/O and YAML decode failures.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)

	if err = m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest's structural and value contracts.
func (m *Manifest) Validate() error {
	// Stage 1 — shape.
	if m.TR == 0 && len(m.Runs) == 0 && len(m.Masks) == 0 && m.BOLD == "" && m.Labels == "" {
		return ErrEmptyManifest
	}
	if len(m.Runs) > 0 && (m.BOLD != "" || m.Labels != "") {
		return ErrMixedLayout
	}
	if len(m.Runs) == 0 {
		if m.BOLD == "" && m.Labels == "" {
			return ErrNoRuns
		}
		if m.BOLD == "" || m.Labels == "" {
			return ErrBadSessionSpec
		}
	}

	// Stage 2 — values.
	if m.TR <= 0 || math.IsNaN(m.TR) || math.IsInf(m.TR, 0) {
		return ErrBadTR
	}
	for i := range m.Runs {
		if m.Runs[i].BOLD == "" || m.Runs[i].Events == "" {
			return ErrBadRunSpec
		}
	}
	for _, mask := range m.Masks {
		for _, v := range mask {
			if v < 0 {
				return ErrMaskOutOfRange
			}
		}
	}
	return nil
}

// Resolve turns a manifest-relative path into an absolute-enough path
// rooted at the manifest's directory. Absolute inputs pass through.
func (m *Manifest) Resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

// Run returns the run entry with the given name.
//
// Errors: ErrUnknownRun.
func (m *Manifest) Run(name string) (*RunSpec, error) {
	for i := range m.Runs {
		if m.Runs[i].Name == name {
			return &m.Runs[i], nil
		}
	}
	return nil, ErrUnknownRun
}

// Mask returns a copy of the named ROI voxel index list.
//
// Errors: ErrUnknownMask.
func (m *Manifest) Mask(name string) ([]int, error) {
	mask, ok := m.Masks[name]
	if !ok {
		return nil, ErrUnknownMask
	}
	out := make([]int, len(mask))
	copy(out, mask)
	return out, nil
}
