package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame(ActionRotate, ActionLeft, ActionNone, ActionLeft)

	got := f.Actions()
	want := []Action{ActionRotate, ActionLeft, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() length = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame(ActionDown, ActionDown)

	f.Clear()
	if len(f.Actions()) != 0 || f.Has(ActionDown) {
		t.Errorf("Actions() after Clear = %v, want none", f.Actions())
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
