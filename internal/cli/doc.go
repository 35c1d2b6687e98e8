// Package cli implements the crossgrid command line: flag parsing, input
// gathering from arguments, word files and HCL puzzle files, rendering, and
// per-run logging. cmd/crossgrid only calls Execute.
package cli
