// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"errors"
	"fmt"
	"testing"
)

var errPermission = errors.New("permission denied")

// fakeDevice implements Device for testing.
type fakeDevice struct {
	name    string
	caps    Capability
	capsErr error
	closed  int
}

func (d *fakeDevice) Name() string                      { return d.name }
func (d *fakeDevice) Capabilities() (Capability, error) { return d.caps, d.capsErr }
func (d *fakeDevice) Close() error                      { d.closed++; return nil }

// fakeOpener implements Opener over a scripted device table. Indices
// beyond the table report ErrNotFound; a nil slot reports openErr.
type fakeOpener struct {
	devices []*fakeDevice
	openErr error
	opens   []int
}

func (o *fakeOpener) Open(index int) (Device, error) {
	o.opens = append(o.opens, index)
	if index < 0 || index >= len(o.devices) {
		return nil, fmt.Errorf("index %d: %w", index, ErrNotFound)
	}
	if o.devices[index] == nil {
		return nil, o.openErr
	}
	return o.devices[index], nil
}

func capture(name string) *fakeDevice {
	return &fakeDevice{name: name, caps: CapVideoCapture | CapStreaming}
}

func TestEnumerate(t *testing.T) {
	opener := &fakeOpener{devices: []*fakeDevice{
		capture("Front Camera"),
		{name: "Loopback", caps: CapStreaming}, // no video capture
		capture("USB Camera"),
	}}
	e := &Enumerator{Opener: opener}

	got := e.Enumerate()
	want := []Info{{Index: 0, Name: "Front Camera"}, {Index: 2, Name: "USB Camera"}}
	if len(got) != len(want) {
		t.Fatalf("Enumerate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Enumerate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// The scan stopped at the first not-found index.
	last := opener.opens[len(opener.opens)-1]
	if last != 3 {
		t.Errorf("last probed index = %d, want 3", last)
	}
}

func TestEnumerateEmpty(t *testing.T) {
	e := &Enumerator{Opener: &fakeOpener{}}
	if got := e.Enumerate(); len(got) != 0 {
		t.Errorf("Enumerate() = %v, want empty", got)
	}
	if e.Supported() {
		t.Error("Supported() = true with no devices")
	}
	if dev := e.First(""); dev != nil {
		t.Errorf("First() = %v, want nil", dev)
	}
}

func TestEnumerateStopsAtNotFound(t *testing.T) {
	// A not-found hole hides everything after it, even real devices.
	opener := &fakeOpener{devices: []*fakeDevice{capture("A")}}
	e := &Enumerator{Opener: opener, MaxProbe: 5}

	got := e.Enumerate()
	if len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("Enumerate() = %v", got)
	}
	if len(opener.opens) != 2 {
		t.Errorf("probed %d indices, want 2 (0 and the not-found 1)", len(opener.opens))
	}
}

func TestEnumerateSkipsOpenErrors(t *testing.T) {
	// Index 1 exists but cannot be opened; the scan continues past it.
	opener := &fakeOpener{
		devices: []*fakeDevice{capture("A"), nil, capture("C")},
		openErr: errPermission,
	}
	e := &Enumerator{Opener: opener}

	got := e.Enumerate()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("Enumerate() = %v, want A and C", got)
	}
}

func TestEnumerateSkipsCapabilityErrors(t *testing.T) {
	broken := &fakeDevice{name: "B", capsErr: errors.New("ioctl failed")}
	opener := &fakeOpener{devices: []*fakeDevice{capture("A"), broken, capture("C")}}
	e := &Enumerator{Opener: opener}

	got := e.Enumerate()
	if len(got) != 2 {
		t.Fatalf("Enumerate() = %v, want 2 devices", got)
	}
	if broken.closed == 0 {
		t.Error("device with failing capability query was not closed")
	}
}

func TestEnumerateRespectsMaxProbe(t *testing.T) {
	devices := make([]*fakeDevice, 20)
	for i := range devices {
		devices[i] = capture(fmt.Sprintf("cam%d", i))
	}
	opener := &fakeOpener{devices: devices}

	e := &Enumerator{Opener: opener, MaxProbe: 3}
	if got := e.Enumerate(); len(got) != 3 {
		t.Errorf("MaxProbe 3: got %d devices", len(got))
	}

	// Zero MaxProbe falls back to the default.
	opener.opens = nil
	e = &Enumerator{Opener: opener}
	if got := e.Enumerate(); len(got) != DefaultMaxProbe {
		t.Errorf("default probe: got %d devices, want %d", len(got), DefaultMaxProbe)
	}
}

func TestNames(t *testing.T) {
	opener := &fakeOpener{devices: []*fakeDevice{capture("A"), capture("B")}}
	e := &Enumerator{Opener: opener}

	got := e.Names()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Names() = %v", got)
	}
}

func TestFirst(t *testing.T) {
	opener := &fakeOpener{devices: []*fakeDevice{
		capture("A"),
		capture("B"),
	}}
	e := &Enumerator{Opener: opener}

	if dev := e.First(""); dev == nil || dev.Name() != "A" {
		t.Errorf("First(\"\") = %v, want A", dev)
	}
	if dev := e.First("B"); dev == nil || dev.Name() != "B" {
		t.Errorf("First(B) = %v, want B", dev)
	}
	if dev := e.First("missing"); dev != nil {
		t.Errorf("First(missing) = %v, want nil", dev)
	}
}

func TestCapabilityHas(t *testing.T) {
	c := CapVideoCapture | CapStreaming
	if !c.Has(CapVideoCapture) {
		t.Error("Has(CapVideoCapture) = false")
	}
	if !c.Has(CapVideoCapture | CapStreaming) {
		t.Error("Has(both) = false")
	}
	if c.Has(CapAudio) {
		t.Error("Has(CapAudio) = true")
	}
}
