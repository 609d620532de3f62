package io

import "testing"

type staticPort uint8

func (s staticPort) Input() uint8 { return uint8(s) }

func TestPort8Interface(t *testing.T) {
	var p Port8 = staticPort(0x2A)
	if got, want := p.Input(), uint8(0x2A); got != want {
		t.Errorf("Input() = %#x, want %#x", got, want)
	}
}
