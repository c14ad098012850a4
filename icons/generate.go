// Package icons holds the generated extension icons.
package icons

//go:generate go run ../cmd/mkicons
