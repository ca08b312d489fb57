// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

// frame records one acquired resource and its pending release action.
// Created only after a successful acquisition; the typed handle is captured
// in the release closure at dispatch time, keeping the record monomorphic.
type frame struct {
	depth   int
	handle  any
	release func() error
}

// Record is the LIFO unwind record of currently open frames.
// Insertion order is acquisition order; at any moment it holds exactly the
// resources currently open. The zero value is an empty record. A Record is
// owned exclusively by one driver run and is not safe for concurrent use.
type Record struct {
	frames []frame
}

// Depth is the number of open frames: the logical nesting level the
// procedure's scoped code has reached.
func (r *Record) Depth() int {
	return len(r.frames)
}

// push registers a frame for a successfully acquired handle.
func (r *Record) push(handle any, release func() error) {
	r.frames = append(r.frames, frame{
		depth:   len(r.frames) + 1,
		handle:  handle,
		release: release,
	})
}

// Unwind releases every open frame, most recently pushed first, and returns
// the release failures encountered in that order. A frame is removed exactly
// when its release is invoked, regardless of the release outcome, so a
// failed release never prevents the remaining frames from being attempted.
// The record is empty when Unwind returns.
func (r *Record) Unwind() []ReleaseError {
	var failures []ReleaseError
	for len(r.frames) > 0 {
		top := len(r.frames) - 1
		f := r.frames[top]
		r.frames[top] = frame{}
		r.frames = r.frames[:top]
		if err := f.release(); err != nil {
			failures = append(failures, ReleaseError{Depth: f.depth, Err: err})
		}
	}
	return failures
}
