// Package services defines shared utilities consumed by the analyzer and
// generator pipelines and their external integrations.
//
// It owns the structured error markers plus the Wrap helper that tag failures
// with a consistent class (configuration, validation, external tool, not
// found) so the CLIs can report them uniformly. Use these helpers when wiring
// new pipeline logic so error handling stays consistent across both tools.
package services
