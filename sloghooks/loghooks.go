// Package sloghooks is a ready-made framewire.Hooks implementation that
// reports codec events through log/slog, with sampling for the per-frame
// events so a busy encoder cannot flood the log.
package sloghooks

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/framewire"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SerializedEvery   uint64
	DeserializedEvery uint64
	RoleDropEvery     uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	serCtr   atomic.Uint64
	deserCtr atomic.Uint64
	dropCtr  atomic.Uint64
}

var _ framewire.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) FrameSerialized(ft string, lvl framewire.Level, orig, comp int) {
	if h.l == nil || !sample(h.opts.SerializedEvery, &h.serCtr) {
		return
	}
	h.l.Debug("framewire.frame_serialized",
		"frame_type", ft,
		"level", lvl.String(),
		"original_size", orig,
		"compressed_size", comp)
}

func (h *Hooks) FrameDeserialized(ft string, elapsed time.Duration) {
	if h.l == nil || !sample(h.opts.DeserializedEvery, &h.deserCtr) {
		return
	}
	h.l.Debug("framewire.frame_deserialized",
		"frame_type", ft,
		"elapsed", elapsed)
}

func (h *Hooks) IntegrityMismatch(stored, computed uint32) {
	if h.l == nil {
		return
	}
	h.l.Warn("framewire.integrity_mismatch",
		"stored", stored,
		"computed", computed)
}

func (h *Hooks) VersionSkew(got string) {
	if h.l == nil {
		return
	}
	h.l.Warn("framewire.version_skew",
		"got", got,
		"want", framewire.Version)
}

func (h *Hooks) RoleDropped(ft, role string) {
	if h.l == nil || !sample(h.opts.RoleDropEvery, &h.dropCtr) {
		return
	}
	h.l.Info("framewire.role_dropped",
		"frame_type", ft,
		"role", role)
}
