package questionbank

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"nexaterminal/internal/model"
)

const bankPattern = "**/*.{yaml,yml}"

// Decode reads one bank from YAML. Missing sanction or grade tables are
// filled with the defaults and grades are sorted by min, descending.
func Decode(r io.Reader) (*model.Bank, error) {
	var b model.Bank
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	normalize(&b)
	return &b, nil
}

// LoadFile reads and validates a single bank file
func LoadFile(path string) (*model.Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadDir loads every YAML bank below dir, in lexical path order
func LoadDir(dir string) ([]*model.Bank, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), bankPattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(matches)

	banks := make([]*model.Bank, 0, len(matches))
	for _, m := range matches {
		b, err := LoadFile(filepath.Join(dir, filepath.FromSlash(m)))
		if err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, nil
}

// Export writes a bank as YAML
func Export(w io.Writer, b *model.Bank) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return err
	}
	return enc.Close()
}

func normalize(b *model.Bank) {
	if len(b.Sanctions) == 0 {
		b.Sanctions = defaultSanctions()
	}
	if len(b.Grades) == 0 {
		b.Grades = defaultGrades()
	}
	sort.SliceStable(b.Grades, func(i, j int) bool {
		return b.Grades[i].Min > b.Grades[j].Min
	})
}
