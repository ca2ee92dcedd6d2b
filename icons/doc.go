// Package icons holds the browser extension's toolbar icons.
// Regenerate them with go generate ./icons.
package icons

//go:generate go run ../cmd/mkicon
