// Package manifest loads verify manifests: YAML lists of puzzle inputs and
// the answers they are expected to produce.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/phlip9/aoc20/internal/runner"
)

//go:embed schema.cue
var schemaCUE string

var (
	// ErrInvalid marks a manifest that could not be parsed or failed the schema.
	ErrInvalid = errors.New("invalid manifest")

	// ErrMismatch marks a result whose answers differ from the expectation.
	ErrMismatch = errors.New("answer mismatch")
)

// Manifest is a parsed verify manifest.
type Manifest struct {
	// Concurrency caps the number of days solved at once. Zero means no cap.
	Concurrency int `yaml:"concurrency,omitempty"`

	Puzzles []Puzzle `yaml:"puzzles"`
}

// Puzzle is one input file and what it should solve to.
type Puzzle struct {
	Day    string `yaml:"day"`
	Input  string `yaml:"input"`
	Expect Expect `yaml:"expect,omitempty"`
}

// Expect holds the expected answers. A nil part is not checked.
type Expect struct {
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}

// Load reads the manifest at path. Relative input paths are resolved against
// the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	m.resolve(filepath.Dir(path))
	return m, nil
}

// Parse decodes and validates manifest YAML. Input paths are left as written.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: manifest is empty", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalid, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalid, err)
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &m, nil
}

// validate checks the decoded document against the embedded CUE schema.
func validate(raw any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return def.Unify(doc).Validate(cue.Concrete(true))
}

func (m *Manifest) resolve(base string) {
	for i, p := range m.Puzzles {
		if !filepath.IsAbs(p.Input) && base != "" {
			m.Puzzles[i].Input = filepath.Join(base, p.Input)
		}
	}
}

// Jobs returns one runner job per puzzle, in manifest order.
func (m *Manifest) Jobs() []runner.Job {
	jobs := make([]runner.Job, len(m.Puzzles))
	for i, p := range m.Puzzles {
		jobs[i] = runner.Job{Day: p.Day, Input: p.Input}
	}
	return jobs
}

// Check compares a finished run against the puzzle's expectation. It returns
// the run's own error if the solve failed, an ErrMismatch error if a stated
// part differs, and nil otherwise.
func (p Puzzle) Check(r runner.Result) error {
	if r.Err != nil {
		return r.Err
	}
	var diffs []string
	if want := p.Expect.Part1; want != nil && *want != r.Answer.Part1 {
		diffs = append(diffs, fmt.Sprintf("part1 = %d, want %d", r.Answer.Part1, *want))
	}
	if want := p.Expect.Part2; want != nil && *want != r.Answer.Part2 {
		diffs = append(diffs, fmt.Sprintf("part2 = %d, want %d", r.Answer.Part2, *want))
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(diffs, ", "))
	}
	return nil
}
