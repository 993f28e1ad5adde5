// Package filesystem provides filesystem implementations for specreport.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and test filesystems.
package filesystem
