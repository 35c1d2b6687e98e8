package wordlist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is a decoded puzzle block. Zero values mean "not set"; the caller
// falls back to its own defaults.
type Config struct {
	Size       int
	Passes     int
	Seed       int64
	SeedLetter byte
	Order      string
	Words      []string // inline words followed by word_file contents
}

// hclPuzzleFile represents the top-level structure of a puzzle file for decoding.
type hclPuzzleFile struct {
	Puzzle *hclPuzzle `hcl:"puzzle,block"`
}

type hclPuzzle struct {
	Size       *int     `hcl:"size,optional"`
	Passes     *int     `hcl:"passes,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	SeedLetter *string  `hcl:"seed_letter,optional"`
	Order      *string  `hcl:"order,optional"`
	Words      []string `hcl:"words,optional"`
	WordFile   *string  `hcl:"word_file,optional"`
}

// LoadConfig reads and decodes the HCL puzzle file at path.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	return ParseConfig(src, path)
}

// ParseConfig decodes HCL source. filename is used in diagnostics and to
// resolve a relative word_file.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclPuzzleFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if parsed.Puzzle == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoPuzzle)
	}

	p := parsed.Puzzle
	cfg := &Config{Words: p.Words}
	if p.Size != nil {
		if *p.Size < 1 {
			return nil, fmt.Errorf("%s: size = %d: %w", filename, *p.Size, ErrBadConfig)
		}
		cfg.Size = *p.Size
	}
	if p.Passes != nil {
		if *p.Passes < 1 {
			return nil, fmt.Errorf("%s: passes = %d: %w", filename, *p.Passes, ErrBadConfig)
		}
		cfg.Passes = *p.Passes
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.SeedLetter != nil {
		l := *p.SeedLetter
		if len(l) != 1 || !isASCIILetter(l[0]) {
			return nil, fmt.Errorf("%s: seed_letter = %q: %w", filename, l, ErrBadConfig)
		}
		cfg.SeedLetter = l[0]
	}
	if p.Order != nil {
		cfg.Order = *p.Order
	}
	if p.WordFile != nil && *p.WordFile != "" {
		path := *p.WordFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(filename), path)
		}
		more, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: word_file: %w", filename, err)
		}
		cfg.Words = append(cfg.Words, more...)
	}
	return cfg, nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
