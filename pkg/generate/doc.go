// Package generate coordinates the full pipeline from template text to
// framed records on the output sink.
package generate
