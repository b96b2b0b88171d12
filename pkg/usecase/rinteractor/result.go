// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
)

// BindingModel はリターゲット入力のバインドモデルを表す。
type BindingModel = model.BoundHand

// TrackedHand はリターゲット出力先のトラッキング骨格を表す。
type TrackedHand = model.CanonicalHand

// FingerMetrics は1指分の計測値を表す。
type FingerMetrics struct {
	Kind        model.FingerKind
	TipPosition mmath.Vec3
	BoneLengths [model.FingerBoneCount]float64
}

// FrameMetrics は1フレーム分のリターゲット結果要約を表す。
type FrameMetrics struct {
	WristPosition mmath.Vec3
	PalmPosition  mmath.Vec3
	PalmWidth     float64
	ArmLength     float64
	Fingers       [model.FingerCount]FingerMetrics
}

// BuildFrameMetrics はトラッキング骨格から結果要約を構築する。
func BuildFrameMetrics(hand *TrackedHand) FrameMetrics {
	metrics := FrameMetrics{}
	if hand == nil {
		return metrics
	}

	metrics.WristPosition = hand.WristPosition
	metrics.PalmPosition = hand.PalmPosition
	metrics.PalmWidth = hand.PalmWidth
	metrics.ArmLength = hand.Arm.Length
	for fingerIdx := range hand.Fingers {
		finger := &hand.Fingers[fingerIdx]
		metrics.Fingers[fingerIdx].Kind = finger.Kind
		metrics.Fingers[fingerIdx].TipPosition = finger.TipPosition
		for boneIdx := range finger.Bones {
			metrics.Fingers[fingerIdx].BoneLengths[boneIdx] = finger.Bones[boneIdx].Length
		}
	}
	return metrics
}
