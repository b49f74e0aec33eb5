// Package cmd implements the wikiai command tree. Commands depend on the
// narrow AppContext interface rather than the full application, which
// keeps them testable against fakes.
package cmd

import (
	"github.com/wikiai/wikiai/pkg/catalog"
)

// AppContext defines the interface commands need from the app. Logging
// travels through the command context, not this interface.
type AppContext interface {
	Repository() (*catalog.Repository, error)
	Queue() (*catalog.Queue, error)
}
