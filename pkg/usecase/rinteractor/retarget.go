// 指示: miu200521358
package rinteractor

import (
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
)

const (
	// DefaultFingertipScale は指先補外の既定スケール。
	DefaultFingertipScale = 0.8
)

// HandRetargetUsecase はリグ骨格からトラッキング骨格への転写を担う。
type HandRetargetUsecase struct{}

// NewHandRetargetUsecase はリターゲットユースケースを生成する。
func NewHandRetargetUsecase() *HandRetargetUsecase {
	return &HandRetargetUsecase{}
}

// Retarget は既定の指先スケールでリターゲットを実行する。
func (uc *HandRetargetUsecase) Retarget(boundHand *model.BoundHand, hand *model.CanonicalHand) *model.CanonicalHand {
	return uc.RetargetWithScale(boundHand, hand, DefaultFingertipScale)
}

// RetargetWithScale はバインドモデルの現在姿勢をトラッキング骨格へ転写する。
// handが未設定の場合は何もせずそのまま返す。未バインドの関節に依存する骨は
// 既存値を保持する(ゼロ埋めしない)。
func (uc *HandRetargetUsecase) RetargetWithScale(
	boundHand *model.BoundHand,
	hand *model.CanonicalHand,
	fingertipScale float64,
) *model.CanonicalHand {
	if hand == nil {
		return hand
	}
	if boundHand == nil {
		return hand
	}

	for fingerIdx := range boundHand.Fingers {
		retargetFinger(
			&boundHand.Fingers[fingerIdx],
			&boundHand.Wrist,
			&hand.Fingers[fingerIdx],
			fingertipScale,
		)
	}

	retargetWristAndArm(boundHand, hand)
	retargetPalm(hand)
	return hand
}

// retargetFinger は1指分の骨幾何を中手骨→末節骨の順で解決する。
func retargetFinger(
	boundFinger *model.BoundFinger,
	wrist *model.BoundJoint,
	finger *model.Finger,
	fingertipScale float64,
) {
	for boneIdx := range boundFinger.Joints {
		boneKind := model.FingerBoneKind(boneIdx)
		if boneKind == model.BONE_DISTAL {
			retargetDistalBone(boundFinger, finger, fingertipScale)
			continue
		}
		retargetInnerBone(boundFinger, wrist, finger, boneKind)
	}
}

// retargetDistalBone は末節骨を解決し、指先位置を中節骨長から補外する。
// 中節骨と末節骨の両方がバインド済みの場合のみ更新する。
func retargetDistalBone(boundFinger *model.BoundFinger, finger *model.Finger, fingertipScale float64) {
	intermediatePos, intermediateOK := boundFinger.Joints[model.BONE_INTERMEDIATE].ResolvePosition()
	distalPos, distalOK := boundFinger.Joints[model.BONE_DISTAL].ResolvePosition()
	if !intermediateOK || !distalOK {
		return
	}

	bone := &finger.Bones[model.BONE_DISTAL]
	boneVector := intermediatePos.Subed(distalPos)
	length := boneVector.Length()

	// 指先はリグ側に関節が存在しないため、トラッキング骨格の既存方向に沿って
	// 中節骨長×スケールで補外する。
	tipPosition := distalPos.Added(bone.Direction.Normalized().MuledScalar(length * fingertipScale))

	bone.PrevJoint = distalPos
	bone.NextJoint = tipPosition
	bone.Center = mmath.MidPoint(distalPos, tipPosition)
	bone.Direction = distalPos.Subed(tipPosition)
	bone.Length = bone.Direction.Length()
	finger.TipPosition = tipPosition
}

// retargetInnerBone は末節骨以外の骨を解決する。
// 自関節と次関節の両方がバインド済みならその区間、そうでなく中手骨の場合は
// 基節骨と手首から中手骨区間を合成する。どちらも満たさなければ既存値を保持する。
func retargetInnerBone(
	boundFinger *model.BoundFinger,
	wrist *model.BoundJoint,
	finger *model.Finger,
	boneKind model.FingerBoneKind,
) {
	ownPos, ownOK := boundFinger.Joints[boneKind].ResolvePosition()
	nextPos, nextOK := boundFinger.Joints[boneKind+1].ResolvePosition()
	if ownOK && nextOK {
		assignBoneSpan(&finger.Bones[boneKind], ownPos, nextPos)
		return
	}
	if boneKind != model.BONE_METACARPAL {
		return
	}

	// 中手骨そのものがバインドされていないリグでは、手首〜基節骨の中点を
	// 中手骨始点とみなして半区間を合成する。
	proximalPos, proximalOK := boundFinger.Joints[model.BONE_PROXIMAL].ResolvePosition()
	wristPos, wristOK := wrist.ResolvePosition()
	if !proximalOK || !wristOK {
		return
	}
	assignBoneSpan(&finger.Bones[model.BONE_METACARPAL], mmath.MidPoint(wristPos, proximalPos), proximalPos)
}

// assignBoneSpan は始点・終点から骨区間の幾何を書き込む。幅・回転・種別は保持する。
func assignBoneSpan(bone *model.FingerBone, prevJoint mmath.Vec3, nextJoint mmath.Vec3) {
	bone.PrevJoint = prevJoint
	bone.NextJoint = nextJoint
	bone.Direction = prevJoint.Subed(nextJoint)
	bone.Length = bone.Direction.Length()
	bone.Center = mmath.MidPoint(prevJoint, nextJoint)
}

// retargetWristAndArm は手首位置と前腕区間を解決する。手首未バインドなら何もしない。
func retargetWristAndArm(boundHand *model.BoundHand, hand *model.CanonicalHand) {
	wristPos, wristOK := boundHand.Wrist.ResolvePosition()
	if !wristOK {
		return
	}

	hand.WristPosition = wristPos
	hand.Arm.NextJoint = wristPos

	elbowPos, elbowOK := boundHand.Elbow.ResolvePosition()
	if !elbowOK {
		return
	}

	// ひじバインド時は前腕区間を再構成した直後に終点をひじ位置で上書きする。
	// 最終的な終点は手のひら段で手首位置へ戻されるため、この順序を崩さないこと。
	hand.Arm.PrevJoint = elbowPos
	hand.Arm.NextJoint = wristPos
	hand.Arm.Center = mmath.MidPoint(elbowPos, wristPos)
	hand.Arm.Direction = elbowPos.Subed(wristPos)
	hand.Arm.Length = hand.Arm.Direction.Length()
	hand.Arm.NextJoint = elbowPos
}

// retargetPalm は手のひら指標を解決する。手首のバインド有無に関わらず実行する。
func retargetPalm(hand *model.CanonicalHand) {
	middleProximalPrev := hand.Fingers[model.FINGER_MIDDLE].Bones[model.BONE_PROXIMAL].PrevJoint
	hand.PalmPosition = mmath.MidPoint(hand.WristPosition, middleProximalPrev)
	hand.StabilizedPalmPosition = hand.PalmPosition

	pinkyProximalPrev := hand.Fingers[model.FINGER_PINKY].Bones[model.BONE_PROXIMAL].PrevJoint
	indexProximalPrev := hand.Fingers[model.FINGER_INDEX].Bones[model.BONE_PROXIMAL].PrevJoint
	hand.PalmWidth = pinkyProximalPrev.Distance(indexProximalPrev)

	// 前腕終点の最終確定値は手首位置。手首段での中間値はここで必ず上書きされる。
	hand.Arm.NextJoint = hand.WristPosition
}
