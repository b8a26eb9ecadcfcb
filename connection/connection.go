/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package connection holds the handle returned for a connection attempt.
package connection

import (
	"fmt"
	"sync"
)

// Result is the outcome of a connection attempt, or the state of a handle.
type Result int

const (
	// Connected means the receiver is attached and will be invoked.
	Connected Result = 0

	// SigsIncompatible means the receiver's parameters are not a prefix of the event's.
	SigsIncompatible Result = -1

	// SignalNotFound means the emitter has no event with the requested signature.
	SignalNotFound Result = -2

	// Disconnected means the connection was made and later released.
	Disconnected Result = -3
)

// String returns a readable result name.
func (r Result) String() string {
	switch r {
	case Connected:
		return "connected"
	case SigsIncompatible:
		return "sigs_incompatible"
	case SignalNotFound:
		return "signal_not_found"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Owner is the resource that keeps a connection alive.
type Owner interface {
	// ID returns a unique identifier for diagnostics.
	ID() string
	// Destroy releases the owner. It must be idempotent.
	Destroy()
}

// Connection is a handle on one connection attempt.
// Its owner is held only while the status is Connected.
type Connection struct {
	mu     sync.Mutex
	id     string
	status Result
	owner  Owner
}

// New returns a handle for owner with the given status. When status is not
// Connected the owner is released immediately and not retained.
func New(owner Owner, status Result) *Connection {
	c := &Connection{status: status}
	if owner != nil {
		c.id = owner.ID()
	}
	if status != Connected {
		if owner != nil {
			owner.Destroy()
		}
		return c
	}
	c.owner = owner
	return c
}

// Connected reports whether the status is Connected.
func (c *Connection) Connected() bool {
	return c.Status() == Connected
}

// Status returns the current status.
func (c *Connection) Status() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ID returns the owner's identifier, or "" when there never was one.
func (c *Connection) ID() string { return c.id }

// Disconnect releases the owner if it is still held and sets the status to
// Disconnected. Later calls only keep the status at Disconnected.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	owner := c.owner
	c.owner = nil
	c.status = Disconnected
	c.mu.Unlock()

	if owner != nil {
		owner.Destroy()
	}
}

// String renders the handle for diagnostics.
func (c *Connection) String() string {
	if c.id == "" {
		return fmt.Sprintf("connection(%s)", c.Status())
	}
	return fmt.Sprintf("connection(%s, %s)", c.id, c.Status())
}
