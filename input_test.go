package gridkit

import "testing"

func TestInputDoubleClickDetection(t *testing.T) {
	in := NewInputState()

	in.SetMousePos(100, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("first press is not a double click")
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)

	in.Reset()
	in.AdvanceTime(0.1)
	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("second rapid press should register a double click")
	}
	if !in.MouseClicked(MouseButtonLeft) {
		t.Fatal("a double click is still a click")
	}

	// A third rapid press needs a fresh pair.
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	in.Reset()
	in.AdvanceTime(0.1)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("triple press must not chain double clicks")
	}
}

func TestInputDoubleClickDistanceAndTime(t *testing.T) {
	in := NewInputState()

	in.SetMousePos(100, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)

	// Too far away.
	in.Reset()
	in.AdvanceTime(0.1)
	in.SetMousePos(120, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("a distant press must not register a double click")
	}
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)

	// Too late.
	in.Reset()
	in.AdvanceTime(DoubleClickTime + 0.1)
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("a slow press must not register a double click")
	}
}

func TestInputKeyRepeat(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyDown, true)
	if !in.KeyRepeated(KeyDown) {
		t.Fatal("initial press should trigger")
	}

	// Held but still inside the repeat delay.
	in.Reset()
	in.AdvanceTime(KeyRepeatDelay / 2)
	if in.KeyRepeated(KeyDown) {
		t.Fatal("key must not repeat before the delay elapses")
	}

	// Hold just past the first repeat boundary: the key repeats.
	in.AdvanceTime(KeyRepeatDelay/2 + KeyRepeatInterval + 0.001)
	if !in.KeyRepeated(KeyDown) {
		t.Fatal("key should repeat after the delay")
	}

	in.Reset()
	in.SetKey(KeyDown, false)
	in.Reset()
	in.AdvanceTime(1.0)
	if in.KeyRepeated(KeyDown) {
		t.Fatal("released key must not repeat")
	}
}

func TestInputEdgeFlagsClearOnReset(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	in.SetKey(KeySpace, true)
	if !in.MouseClicked(MouseButtonLeft) || !in.KeyPressed(KeySpace) {
		t.Fatal("edges should be set on the press frame")
	}

	in.Reset()
	if in.MouseClicked(MouseButtonLeft) || in.KeyPressed(KeySpace) {
		t.Fatal("edges should clear on Reset")
	}
	if !in.MouseDown(MouseButtonLeft) || !in.KeyDown(KeySpace) {
		t.Fatal("held state should survive Reset")
	}
}
