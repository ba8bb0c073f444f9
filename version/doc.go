// Package version reports the build of the running binary.
//
// Version and Commit may be set at link time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=0.3.0"
//
// Otherwise they are read from the VCS stamp the Go toolchain embeds.
package version
