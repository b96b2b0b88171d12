// 指示: miu200521358
package model

const (
	// BindingWarningWristUnbound は手首未バインド警告。
	BindingWarningWristUnbound = "BindingWarningWristUnbound"
	// BindingWarningElbowUnbound はひじ未バインド警告。
	BindingWarningElbowUnbound = "BindingWarningElbowUnbound"
	// BindingWarningMetacarpalFallback は中手骨を手首中点から合成している警告。
	BindingWarningMetacarpalFallback = "BindingWarningMetacarpalFallback"
	// BindingWarningFingerChainBroken は指の関節列が途中で欠けている警告。
	BindingWarningFingerChainBroken = "BindingWarningFingerChainBroken"
	// BindingWarningScaleOffsetOutOfRange はスケールオフセット範囲外警告。
	BindingWarningScaleOffsetOutOfRange = "BindingWarningScaleOffsetOutOfRange"
)

// ValidateBoundHand はバインドモデルの状態を検査し、警告IDの一覧を返す。
// 警告はリターゲット計算を妨げない。各IDは最大1回だけ報告する。
func ValidateBoundHand(h *BoundHand) []string {
	if h == nil {
		return nil
	}

	var warnings []string
	appendWarning := func(warningID string) {
		for _, existing := range warnings {
			if existing == warningID {
				return
			}
		}
		warnings = append(warnings, warningID)
	}

	if !h.Wrist.IsBound() {
		appendWarning(BindingWarningWristUnbound)
	}
	if !h.Elbow.IsBound() {
		appendWarning(BindingWarningElbowUnbound)
	}

	for fingerIdx := range h.Fingers {
		finger := &h.Fingers[fingerIdx]
		if !finger.Joints[BONE_METACARPAL].IsBound() &&
			finger.Joints[BONE_PROXIMAL].IsBound() && h.Wrist.IsBound() {
			appendWarning(BindingWarningMetacarpalFallback)
		}
		for boneIdx := 0; boneIdx < FingerBoneCount-1; boneIdx++ {
			if !finger.Joints[boneIdx].IsBound() && finger.Joints[boneIdx+1].IsBound() {
				if FingerBoneKind(boneIdx) != BONE_METACARPAL {
					appendWarning(BindingWarningFingerChainBroken)
				}
			}
		}
	}

	if h.ScaleOffset < ScaleOffsetMin || h.ScaleOffset > ScaleOffsetMax ||
		h.ElbowOffset < ScaleOffsetMin || h.ElbowOffset > ScaleOffsetMax {
		appendWarning(BindingWarningScaleOffsetOutOfRange)
	}
	return warnings
}
