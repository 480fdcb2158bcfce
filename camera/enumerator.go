// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"errors"

	"github.com/gogpu/kernelbridge"
)

// DefaultMaxProbe is the number of device indices scanned when
// [Enumerator.MaxProbe] is zero.
const DefaultMaxProbe = 10

// Enumerator probes a platform device table for video capture devices.
//
// The zero MaxProbe means [DefaultMaxProbe]. An Enumerator holds no
// state between calls; it is safe for concurrent use if the Opener is.
type Enumerator struct {
	// Opener supplies access to the platform device table.
	Opener Opener

	// MaxProbe bounds the scan: indices 0 through MaxProbe-1 are probed.
	MaxProbe int
}

// Enumerate scans the device table and returns the capture devices
// found, in index order.
//
// The scan stops early at the first index that reports [ErrNotFound]:
// indices past a gap in the table are never probed. A device that opens
// but fails its capability query, or fails to open for any reason other
// than not-found (permissions, busy), is skipped with a warning and the
// scan continues. Devices without [CapVideoCapture] are filtered out.
//
// Enumerate never fails; problems only shorten the result.
func (e *Enumerator) Enumerate() []Info {
	log := kernelbridge.Logger()
	maxProbe := e.MaxProbe
	if maxProbe <= 0 {
		maxProbe = DefaultMaxProbe
	}

	var found []Info
	for i := 0; i < maxProbe; i++ {
		dev, err := e.Opener.Open(i)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				break
			}
			log.Warn("camera: failed to open device", "index", i, "err", err)
			continue
		}
		caps, err := dev.Capabilities()
		if err != nil {
			log.Warn("camera: failed to query capabilities", "index", i, "err", err)
			dev.Close()
			continue
		}
		if caps.Has(CapVideoCapture) {
			found = append(found, Info{Index: i, Name: dev.Name()})
		}
		dev.Close()
	}
	return found
}

// Names returns the display names of all capture devices, in index order.
func (e *Enumerator) Names() []string {
	infos := e.Enumerate()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Supported reports whether at least one capture device exists.
func (e *Enumerator) Supported() bool {
	return len(e.Enumerate()) > 0
}

// First opens the first capture device, or the first whose display name
// equals name when name is non-empty. It returns nil when no matching
// device is available or the final open fails; a missing camera is not
// an error condition.
func (e *Enumerator) First(name string) Device {
	for _, info := range e.Enumerate() {
		if name != "" && info.Name != name {
			continue
		}
		dev, err := e.Opener.Open(info.Index)
		if err != nil {
			kernelbridge.Logger().Warn("camera: selected device failed to open",
				"index", info.Index, "err", err)
			return nil
		}
		return dev
	}
	return nil
}
