// 指示: miu200521358
package model

import "github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"

// FingerBone はトラッキング骨格の指骨1本分の幾何を表す。
type FingerBone struct {
	PrevJoint mmath.Vec3
	NextJoint mmath.Vec3
	Center    mmath.Vec3
	Direction mmath.Vec3
	Length    float64
	Width     float64
	Rotation  mmath.Quaternion
	Kind      FingerBoneKind
}

// Finger はトラッキング骨格の1指分を表す。
type Finger struct {
	Bones       [FingerBoneCount]FingerBone
	TipPosition mmath.Vec3
	Kind        FingerKind
}

// ArmSegment はトラッキング骨格の前腕部分を表す。
type ArmSegment struct {
	PrevJoint mmath.Vec3
	NextJoint mmath.Vec3
	Center    mmath.Vec3
	Direction mmath.Vec3
	Length    float64
	Width     float64
	Rotation  mmath.Quaternion
}

// CanonicalHand はトラッキングシステムが産出する固定トポロジの手骨格を表す。
// 本体の生成・破棄は外部のトラッキング層が行い、リターゲット計算はフィールドのみ更新する。
type CanonicalHand struct {
	Fingers [FingerCount]Finger

	WristPosition          mmath.Vec3
	StabilizedPalmPosition mmath.Vec3
	PalmWidth              float64
	PalmPosition           mmath.Vec3

	Arm ArmSegment
}

// NewCanonicalHand は種別を初期化した手骨格を生成する。
func NewCanonicalHand() *CanonicalHand {
	hand := &CanonicalHand{}
	for fingerIdx := range hand.Fingers {
		hand.Fingers[fingerIdx].Kind = FingerKind(fingerIdx)
		for boneIdx := range hand.Fingers[fingerIdx].Bones {
			hand.Fingers[fingerIdx].Bones[boneIdx].Kind = FingerBoneKind(boneIdx)
			hand.Fingers[fingerIdx].Bones[boneIdx].Rotation = mmath.NewQuaternion()
		}
	}
	hand.Arm.Rotation = mmath.NewQuaternion()
	return hand
}

// FingerByKind は指種類に対応する指を返す。
func (h *CanonicalHand) FingerByKind(kind FingerKind) (*Finger, bool) {
	if h == nil || kind < 0 || int(kind) >= FingerCount {
		return nil, false
	}
	return &h.Fingers[kind], true
}
