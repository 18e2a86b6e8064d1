// Package picker selects a random wallpaper from a directory.
// Entries can be filtered by file name suffix; every remaining
// candidate is equally likely to be chosen.
package picker

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Picker избира случаен файл от Dir
type Picker struct {
	Dir      string
	Suffixes []string

	// Rand is used by Choose; nil means the global source.
	Rand   *rand.Rand
	Logger *zap.Logger
}

// New създава Picker с nop logger
func New(dir string, suffixes []string) *Picker {
	return &Picker{
		Dir:      dir,
		Suffixes: suffixes,
		Logger:   zap.NewNop(),
	}
}

// Candidates returns the matching entry names in directory listing order.
// Subdirectories are never candidates.
func (p *Picker) Candidates() ([]string, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !Matches(entry.Name(), p.Suffixes) {
			continue
		}
		candidates = append(candidates, entry.Name())
	}

	p.logger().Debug("listed candidates",
		zap.String("dir", p.Dir),
		zap.Int("entries", len(entries)),
		zap.Int("candidates", len(candidates)),
		zap.Strings("suffixes", p.Suffixes),
	)

	return candidates, nil
}

// Choose returns one of candidates uniformly at random, or "" for an empty slice.
func (p *Picker) Choose(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if p.Rand != nil {
		return candidates[p.Rand.IntN(len(candidates))]
	}
	return candidates[rand.IntN(len(candidates))]
}

// Pick returns the path of a random candidate joined with Dir.
// An empty candidate set yields *NoCandidatesError.
func (p *Picker) Pick() (string, error) {
	candidates, err := p.Candidates()
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		return "", &NoCandidatesError{Dir: p.Dir, Label: FilterLabel(p.Suffixes)}
	}

	name := p.Choose(candidates)
	path := filepath.Join(p.Dir, name)

	p.logger().Debug("picked wallpaper", zap.String("path", path))

	return path, nil
}

// Matches reports whether name ends with one of suffixes.
// A list without non-empty suffixes matches everything.
func Matches(name string, suffixes []string) bool {
	filtered := false
	for _, suffix := range suffixes {
		if suffix == "" {
			continue
		}
		filtered = true
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return !filtered
}

// FilterLabel връща етикет за съобщението, напр. [".png"] -> "PNG"
func FilterLabel(suffixes []string) string {
	var labels []string
	for _, suffix := range suffixes {
		label := strings.ToUpper(strings.TrimPrefix(suffix, "."))
		if label != "" {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, "/")
}

func (p *Picker) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
