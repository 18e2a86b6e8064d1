package launcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/wallpick/pkg/config"
)

// PathPlaceholder се замества с пътя до избрания файл
const PathPlaceholder = "{path}"

// Template описва една външна команда
type Template struct {
	Name    string   `mapstructure:"-"`
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	Order   int      `mapstructure:"order"`
}

// Argv splits Command shell-style, appends Args and substitutes path.
// When no argument holds the placeholder the path becomes the last argument.
func (t Template) Argv(path string) ([]string, error) {
	words, err := shellquote.Split(t.Command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", t.Command, err)
	}
	words = append(words, t.Args...)

	if len(words) == 0 || words[0] == "" {
		return nil, fmt.Errorf("%s: %w", t.Name, ErrEmptyCommand)
	}

	argv := make([]string, 0, len(words)+1)
	substituted := false
	for _, word := range words {
		if strings.Contains(word, PathPlaceholder) {
			word = strings.ReplaceAll(word, PathPlaceholder, path)
			substituted = true
		}
		argv = append(argv, word)
	}

	if !substituted {
		argv = append(argv, path)
	}

	return argv, nil
}

// Decode decodes one [commands.<name>] table.
func Decode(name string, raw map[string]any) (Template, error) {
	tpl := Template{Name: name}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &tpl,
	})
	if err != nil {
		return Template{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Template{}, fmt.Errorf("command %s: %w", name, err)
	}

	// Провери командата още при зареждане
	if _, err := tpl.Argv(""); err != nil {
		return Template{}, fmt.Errorf("command %s: %w", name, err)
	}

	return tpl, nil
}

// FromConfig returns the enabled commands sorted by order, then name.
func FromConfig(cfg *config.Config) ([]Template, error) {
	var templates []Template

	for name, raw := range cfg.Commands {
		if !cfg.IsCommandEnabled(name) {
			continue
		}

		tpl, err := Decode(name, raw)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Order != templates[j].Order {
			return templates[i].Order < templates[j].Order
		}
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}
