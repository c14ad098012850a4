//go:build noraster

package icon

// Built with -tags noraster: no backend, Available reports false.
