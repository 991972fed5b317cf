// Package clockface renders analog and digital clock faces from
// procedurally generated geometry: rings, arcs, disks, instanced digit
// cards and flagged segment islands are synthesized from small numeric
// parameter blocks and resolved to anti-aliased shapes per fragment,
// with no vector-graphics toolkit involved.
//
// The root package holds the leaf types every pipeline shares: Vec2,
// RGBA and its packed 32-bit form, Pixmap, and DrawspaceScales, the
// per-frame mapping between model space, normalized device coordinates
// and physical pixels. Shape synthesis lives in shape, instanced
// sprites in sprite, screen-space compositors in composite, and the
// pass sequencing in render. The gpu package carries the same programs
// as WGSL for WebGPU execution.
//
// All parameter blocks are plain value types supplied fresh per draw;
// the pipelines retain nothing across frames beyond what the host
// re-supplies.
package clockface
