// Package template extracts placeholder tags from record templates and
// defines the renderer seam the generation pipeline writes through.
package template
