// File: collection.go
// Title: Command Collection
// Description: A btree-ordered index of command descriptors keyed by their
//              normalized name. Readers may share a Collection across goroutines;
//              Add and Merge take a write lock.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package commands

import (
	"strings"
	"sync"

	"github.com/google/btree"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
)

const btreeDegree = 8

type entry struct {
	key string
	cmd CommandDescriptor
}

func entryLess(a, b entry) bool {
	return a.key < b.key
}

// Options configures a Collection
type Options struct {
	Logger *mdwlog.Logger
}

// Collection is a set of command descriptors indexed by normalized name
type Collection struct {
	tree   *btree.BTreeG[entry]
	logger *mdwlog.Logger
	mutex  sync.RWMutex
}

// New creates an empty collection
func New(opts Options) *Collection {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Collection{
		tree:   btree.NewG(btreeDegree, entryLess),
		logger: opts.Logger.WithName("basic-commands"),
	}
}

// FromDescriptors builds a collection with default options
func FromDescriptors(cmds ...CommandDescriptor) (*Collection, error) {
	c := New(Options{})
	for _, cmd := range cmds {
		if err := c.Add(cmd); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustFromDescriptors is FromDescriptors that panics on error
func MustFromDescriptors(cmds ...CommandDescriptor) *Collection {
	c, err := FromDescriptors(cmds...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add validates and registers a command. Names that normalize to an existing
// key are rejected.
func (c *Collection) Add(cmd CommandDescriptor) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := cmd.Key()
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.tree.Get(entry{key: key}); exists {
		return mdwerror.Newf("command %q already registered", key).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("commands.Add").
			WithDetail("command", key)
	}
	c.tree.ReplaceOrInsert(entry{key: key, cmd: cmd})

	c.logger.Trace("command registered", mdwlog.Fields{
		"command": key,
		"args":    len(cmd.Args),
	})
	return nil
}

// Merge adds every command of other. The first duplicate aborts the merge.
func (c *Collection) Merge(other *Collection) error {
	for _, cmd := range other.All() {
		if err := c.Add(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a command by name. Case and whitespace runs are ignored, so
// "WAIT   Key" finds "wait key". A nil collection has no commands.
func (c *Collection) Lookup(name string) (CommandDescriptor, bool) {
	if c == nil {
		return CommandDescriptor{}, false
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, ok := c.tree.Get(entry{key: mdwstringx.NormalizeSpace(name)})
	return e.cmd, ok
}

// Len returns the number of commands
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.tree.Len()
}

// All returns every command in ascending key order
func (c *Collection) All() []CommandDescriptor {
	if c == nil {
		return nil
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]CommandDescriptor, 0, c.tree.Len())
	c.tree.Ascend(func(e entry) bool {
		out = append(out, e.cmd)
		return true
	})
	return out
}

// Prefix returns the commands whose key starts with prefix, in key order
func (c *Collection) Prefix(prefix string) []CommandDescriptor {
	if c == nil {
		return nil
	}
	p := mdwstringx.NormalizeSpace(prefix)

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var out []CommandDescriptor
	c.tree.AscendGreaterOrEqual(entry{key: p}, func(e entry) bool {
		if !strings.HasPrefix(e.key, p) {
			return false
		}
		out = append(out, e.cmd)
		return true
	})
	return out
}

// Names returns every command key in ascending order
func (c *Collection) Names() []string {
	cmds := c.All()
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Key()
	}
	return names
}
