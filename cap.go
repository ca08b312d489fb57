// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scop

// Capability is the acquire/release contract for one concrete resource.
// Acquire and Release perform the real external action (opening a file
// descriptor, taking a lock, dialing a connection); this is the only point
// where such effects occur.
//
// Acquire returns the resource handle, or an error. Returning
// iox.ErrWouldBlock means the acquisition cannot make progress yet; the
// driver backs off and retries the same request. Any other error is an
// acquisition failure: no frame is registered for it, and a failed Acquire
// must not leave side effects requiring cleanup (or must clean them up
// itself before returning).
//
// Release performs the inverse action. The driver invokes Release at most
// once per successfully acquired handle; implementations need not defend
// against double release.
type Capability[H any] interface {
	Acquire() (H, error)
	Release(h H) error
}

// CapabilityFunc adapts an acquire/release function pair into a [Capability].
// A nil ReleaseFunc releases without effect, for resources whose handles
// need no teardown.
type CapabilityFunc[H any] struct {
	AcquireFunc func() (H, error)
	ReleaseFunc func(h H) error
}

// Acquire implements [Capability] by calling AcquireFunc.
func (c CapabilityFunc[H]) Acquire() (H, error) {
	return c.AcquireFunc()
}

// Release implements [Capability] by calling ReleaseFunc.
func (c CapabilityFunc[H]) Release(h H) error {
	if c.ReleaseFunc == nil {
		return nil
	}
	return c.ReleaseFunc(h)
}
