// Package deps verifies the external binaries voicescript shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency a pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// FFprobe is the only external binary the analyzer needs.
func FFprobe() Requirement {
	return Requirement{
		Name:        "ffprobe",
		Command:     "ffprobe",
		Description: "audio duration measurement",
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		command := strings.TrimSpace(req.Command)
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Verify returns an error describing the first unavailable requirement.
func Verify(requirements []Requirement) error {
	for _, status := range Check(requirements) {
		if !status.Available {
			return fmt.Errorf("%s unavailable (%s): %s", status.Name, status.Description, status.Detail)
		}
	}
	return nil
}
