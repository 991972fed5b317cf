// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/clockface"
)

// ErrUnwrittenRead reports a pass sampling a target that no earlier
// pass in the frame has written.
var ErrUnwrittenRead = errors.New("render: pass reads a target not written by an earlier pass")

// Pass is one stage of the frame: it samples zero or more previously
// written targets and writes one or more others. Declared reads and
// writes drive the graph's ordering validation; Execute does the
// actual work.
type Pass interface {
	Name() string
	Reads() []*Target
	Writes() []*Target
	Execute() error
}

// Graph sequences the frame's passes. The orchestrator owns pass
// ordering and target lifetimes; the shading logic lives entirely in
// the passes themselves.
//
// Ordering is explicit: passes run in the order added. Validate (and
// Execute, which validates first) enforces the read-after-write rule
// — every target a pass samples must have been written by a strictly
// earlier pass of the same frame, since a texture cannot be sampled
// and rendered to at once.
type Graph struct {
	passes []Pass
}

// Add appends a pass to the frame.
func (g *Graph) Add(p Pass) { g.passes = append(g.passes, p) }

// Passes returns the passes in execution order.
func (g *Graph) Passes() []Pass { return g.passes }

// Validate checks the read-after-write rule for every pass.
func (g *Graph) Validate() error {
	written := map[*Target]bool{}
	for _, p := range g.passes {
		for _, r := range p.Reads() {
			if !written[r] {
				return fmt.Errorf("%w: pass %q reads %q", ErrUnwrittenRead, p.Name(), r.Name())
			}
		}
		for _, w := range p.Writes() {
			written[w] = true
		}
	}
	return nil
}

// Execute validates the graph, then runs every pass in order. The
// first failing pass aborts the frame.
func (g *Graph) Execute() error {
	if err := g.Validate(); err != nil {
		return err
	}
	log := clockface.Logger()
	for _, p := range g.passes {
		log.Debug("render: executing pass", "pass", p.Name())
		if err := p.Execute(); err != nil {
			return fmt.Errorf("render: pass %q: %w", p.Name(), err)
		}
	}
	return nil
}

// FuncPass wraps a function as a Pass for hosts that do not need a
// dedicated type per pass.
type FuncPass struct {
	PassName string
	Read     []*Target
	Write    []*Target
	Run      func() error
}

func (f *FuncPass) Name() string      { return f.PassName }
func (f *FuncPass) Reads() []*Target  { return f.Read }
func (f *FuncPass) Writes() []*Target { return f.Write }
func (f *FuncPass) Execute() error    { return f.Run() }
