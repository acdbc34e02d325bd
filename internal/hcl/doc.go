// Package hcl provides the concrete HCL implementation of roadmap loading.
// It is responsible for file discovery, parsing, block validation with
// source-ranged diagnostics, and HCL-to-model translation.
package hcl
