// Package launcher starts the external tools that apply a wallpaper.
// Commands come from the [commands.*] config tables, are expanded
// with the selected file path, and are started fire-and-forget:
// nothing waits for them and their failures never fail a run.
package launcher

import (
	"go.uber.org/zap"

	"github.com/lvim-tech/wallpick/pkg/utils"
)

// StartFunc стартира процес без да чака за него
type StartFunc func(name string, args ...string) error

// Runner стартира всички templates с даден път
type Runner struct {
	Templates []Template
	Start     StartFunc
	Logger    *zap.Logger
}

// NewRunner създава Runner с detached процеси
func NewRunner(templates []Template, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Templates: templates,
		Start:     utils.StartDetachedProcess,
		Logger:    logger,
	}
}

// LaunchAll starts every template with path in order and returns how many started.
// Errors are logged at debug level only.
func (r *Runner) LaunchAll(path string) int {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if r.Start == nil {
		logger.Debug("launch skipped", zap.Error(ErrNoStarter))
		return 0
	}

	started := 0
	for _, tpl := range r.Templates {
		argv, err := tpl.Argv(path)
		if err != nil {
			logger.Debug("invalid command", zap.String("name", tpl.Name), zap.Error(err))
			continue
		}

		if err := r.Start(argv[0], argv[1:]...); err != nil {
			logger.Debug("failed to start command",
				zap.String("name", tpl.Name),
				zap.Strings("argv", argv),
				zap.Error(err),
			)
			continue
		}

		logger.Debug("started command", zap.String("name", tpl.Name), zap.Strings("argv", argv))
		started++
	}

	return started
}
