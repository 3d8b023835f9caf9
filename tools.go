//go:build tools

// Package tools pins mockgen, which regenerates the mocks package through
// the go:generate directives next to each mocked interface.
package jobchat

import (
	_ "go.uber.org/mock/mockgen"
)
