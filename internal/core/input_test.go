package core

import "testing"

func TestInputFrameSetUnset(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("zero frame should hold nothing")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Left should be held after Set")
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Left should be released after Unset")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both resolves left", []Action{ActionRight, ActionLeft}, -1},
		{"unrelated action", []Action{ActionPause}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Set(a)
			}
			if got := f.Horizontal(); got != tc.expected {
				t.Errorf("Horizontal() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("clone should keep Right after original is cleared")
	}
	if f.Has(ActionRight) {
		t.Error("original should be cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
