package context

import (
	"time"
)

// Version information.
var (
	ReleaseVersion = "None"
	BuildTS        = "None"
	GitHash        = "None"
	GitBranch      = "None"
	GitLog         = "None"
	GolangVersion  = "None"
	ConfigFile     = "None"
)

// ClientContext is the runtime context of one client handle
type ClientContext struct {
	ID      int64  // Client uniq ID
	TraceID string // TraceID tags log lines of this handle
	Created time.Time
	Updated time.Time
	LastCmd string
}

// NewClientContext new client context object, id must be uniq
func NewClientContext(id int64, traceID string) *ClientContext {
	now := time.Now()
	return &ClientContext{
		ID:      id,
		TraceID: traceID,
		Created: now,
		Updated: now,
	}
}

// Touch records the command about to run on this handle
func (c *ClientContext) Touch(cmd string) {
	c.Updated = time.Now()
	c.LastCmd = cmd
}
