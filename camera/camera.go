// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera enumerates video capture devices for kernels that take
// live video input.
//
// The package is interface-first: an [Opener] abstracts over the
// platform's device table (such as a V4L-style index space), and the
// [Enumerator] implements the probe policy on top of it. Probing scans
// indices from zero, stops at the first index that reports
// [ErrNotFound], skips devices that fail to open or query for any other
// reason, and yields only devices that advertise video capture. Missing
// hardware is never an error: callers see an empty list or a nil device,
// not a failure.
package camera

import "errors"

// ErrNotFound reports that no device exists at a probed index. Openers
// return it to mean "no more devices here"; any other error means the
// device exists but could not be used (permissions, busy, driver fault).
var ErrNotFound = errors.New("camera: device not found")

// Capability is a bitset of device capability flags.
type Capability uint32

const (
	// CapVideoCapture marks a device that can capture video frames.
	CapVideoCapture Capability = 1 << iota

	// CapAudio marks a device with an audio input.
	CapAudio

	// CapStreaming marks a device that supports streaming I/O.
	CapStreaming
)

// Has reports whether all flags in want are set.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Device is an opened capture device.
type Device interface {
	// Name returns the device's human-readable display name.
	Name() string

	// Capabilities queries the device's capability flags.
	Capabilities() (Capability, error)

	// Close releases the device handle.
	Close() error
}

// Opener opens the device at a platform index. Open returns
// [ErrNotFound] (possibly wrapped) when no device exists at that index.
type Opener interface {
	Open(index int) (Device, error)
}

// Info describes one enumerated capture device.
type Info struct {
	// Index is the platform device index the device was found at.
	Index int

	// Name is the device's display name.
	Name string
}
