package launcher

import "errors"

var (
	// ErrEmptyCommand се връща когато командата няма изпълним файл
	ErrEmptyCommand = errors.New("empty command")

	// ErrNoStarter се връща когато Runner няма StartFunc
	ErrNoStarter = errors.New("no process starter configured")
)

// IsEmptyCommand проверява дали грешката е от празна команда
func IsEmptyCommand(err error) bool {
	return errors.Is(err, ErrEmptyCommand)
}
