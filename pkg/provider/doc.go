// Package provider holds the locale-keyed registry of data-generation
// capabilities and resolves placeholder tags against it.
package provider
