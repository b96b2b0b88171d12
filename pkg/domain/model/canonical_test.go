// 指示: miu200521358
package model

import "testing"

func TestNewCanonicalHandInitializesKinds(t *testing.T) {
	hand := NewCanonicalHand()
	for fingerIdx := range hand.Fingers {
		if hand.Fingers[fingerIdx].Kind != FingerKind(fingerIdx) {
			t.Fatalf("finger kind mismatch: %v", hand.Fingers[fingerIdx].Kind)
		}
		for boneIdx := range hand.Fingers[fingerIdx].Bones {
			if hand.Fingers[fingerIdx].Bones[boneIdx].Kind != FingerBoneKind(boneIdx) {
				t.Fatalf("bone kind mismatch: %v", hand.Fingers[fingerIdx].Bones[boneIdx].Kind)
			}
		}
	}
}

func TestFingerByKind(t *testing.T) {
	hand := NewCanonicalHand()
	finger, ok := hand.FingerByKind(FINGER_MIDDLE)
	if !ok || finger != &hand.Fingers[FINGER_MIDDLE] {
		t.Fatalf("finger lookup mismatch")
	}
	if _, ok := hand.FingerByKind(FingerKind(FingerCount)); ok {
		t.Fatalf("out-of-range kind should fail")
	}

	var nilHand *CanonicalHand
	if _, ok := nilHand.FingerByKind(FINGER_THUMB); ok {
		t.Fatalf("nil hand should fail")
	}
}
