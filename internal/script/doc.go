// Package script implements the narration script generation pipeline: style
// resolution, chunk planning, prompt construction, remote generation, and
// session persistence.
package script
