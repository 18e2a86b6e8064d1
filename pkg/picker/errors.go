package picker

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates се връща когато в директорията няма подходящи файлове
	ErrNoCandidates = errors.New("no candidate files")
)

// NoCandidatesError reports an empty candidate set for Dir.
// Label names the filter, e.g. "PNG"; it is empty when no filter is set.
type NoCandidatesError struct {
	Dir   string
	Label string
}

func (e *NoCandidatesError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("No files found in %s", e.Dir)
	}
	return fmt.Sprintf("No %s files found in %s", e.Label, e.Dir)
}

// Is makes errors.Is(err, ErrNoCandidates) match.
func (e *NoCandidatesError) Is(target error) bool {
	return target == ErrNoCandidates
}

// IsNoCandidates проверява дали грешката е от празен списък
func IsNoCandidates(err error) bool {
	return errors.Is(err, ErrNoCandidates)
}
