// 指示: miu200521358
package rinteractor

import (
	"reflect"
	"testing"

	"github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
)

// stubTransformSource はテスト用の固定位置トランスフォーム参照を表す。
type stubTransformSource struct {
	position mmath.Vec3
}

// WorldPosition は固定位置を返す。
func (s *stubTransformSource) WorldPosition() mmath.Vec3 {
	return s.position
}

// WorldRotation は単位回転を返す。
func (s *stubTransformSource) WorldRotation() mmath.Quaternion {
	return mmath.NewQuaternion()
}

// bindJoint は指定位置のトランスフォーム参照を割り当てる。
func bindJoint(joint *model.BoundJoint, x float64, y float64, z float64) {
	joint.Source = &stubTransformSource{position: mmath.NewVec3(x, y, z)}
}

func TestRetargetWithNilHandIsNoOp(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	bindJoint(&boundHand.Wrist, 1.0, 2.0, 3.0)

	if result := usecase.Retarget(boundHand, nil); result != nil {
		t.Fatalf("nil hand should be returned unchanged: %v", result)
	}
}

func TestRetargetBoneSpanFromBoundJointPair(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	indexFinger := &boundHand.Fingers[model.FINGER_INDEX]
	bindJoint(&indexFinger.Joints[model.BONE_PROXIMAL], 0.0, 1.0, 0.0)
	bindJoint(&indexFinger.Joints[model.BONE_INTERMEDIATE], 0.0, 4.0, 0.0)

	bone := &hand.Fingers[model.FINGER_INDEX].Bones[model.BONE_PROXIMAL]
	bone.Width = 0.125
	bone.Rotation = mmath.NewQuaternionFromDegrees(0.0, 30.0, 0.0)
	widthBefore := bone.Width
	rotationBefore := bone.Rotation

	usecase.Retarget(boundHand, hand)

	if !bone.PrevJoint.NearEquals(mmath.NewVec3(0.0, 1.0, 0.0), 1e-9) {
		t.Fatalf("prev joint mismatch: %v", bone.PrevJoint)
	}
	if !bone.NextJoint.NearEquals(mmath.NewVec3(0.0, 4.0, 0.0), 1e-9) {
		t.Fatalf("next joint mismatch: %v", bone.NextJoint)
	}
	if !bone.Center.NearEquals(mmath.NewVec3(0.0, 2.5, 0.0), 1e-9) {
		t.Fatalf("center should be exact midpoint: %v", bone.Center)
	}
	if !bone.Direction.NearEquals(mmath.NewVec3(0.0, -3.0, 0.0), 1e-9) {
		t.Fatalf("direction should be prev minus next: %v", bone.Direction)
	}
	if bone.Length != bone.PrevJoint.Distance(bone.NextJoint) {
		t.Fatalf("length should equal joint distance: length=%f distance=%f", bone.Length, bone.PrevJoint.Distance(bone.NextJoint))
	}
	if bone.Width != widthBefore {
		t.Fatalf("width should be preserved: before=%f after=%f", widthBefore, bone.Width)
	}
	if !bone.Rotation.NearEquals(rotationBefore, 1e-9) {
		t.Fatalf("rotation should be preserved")
	}
}

func TestRetargetKeepsStaleBoneForUnboundJoints(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bone := &hand.Fingers[model.FINGER_RING].Bones[model.BONE_INTERMEDIATE]
	bone.PrevJoint = mmath.NewVec3(1.0, 2.0, 3.0)
	bone.NextJoint = mmath.NewVec3(4.0, 5.0, 6.0)
	bone.Center = mmath.NewVec3(2.5, 3.5, 4.5)
	bone.Direction = mmath.NewVec3(-3.0, -3.0, -3.0)
	bone.Length = 5.196
	before := *bone

	// 薬指は全関節未バインドのまま評価する。
	usecase.Retarget(boundHand, hand)

	if !reflect.DeepEqual(before, *bone) {
		t.Fatalf("unbound bone should keep stale values: before=%+v after=%+v", before, *bone)
	}
}

func TestRetargetMetacarpalFallbackFromWristMidpoint(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Wrist, 0.0, 0.0, 0.0)
	bindJoint(&boundHand.Fingers[model.FINGER_MIDDLE].Joints[model.BONE_PROXIMAL], 0.0, 2.0, 0.0)

	usecase.Retarget(boundHand, hand)

	bone := &hand.Fingers[model.FINGER_MIDDLE].Bones[model.BONE_METACARPAL]
	if !bone.PrevJoint.NearEquals(mmath.NewVec3(0.0, 1.0, 0.0), 1e-9) {
		t.Fatalf("metacarpal prev joint should be wrist-proximal midpoint: %v", bone.PrevJoint)
	}
	if !bone.NextJoint.NearEquals(mmath.NewVec3(0.0, 2.0, 0.0), 1e-9) {
		t.Fatalf("metacarpal next joint should be proximal position: %v", bone.NextJoint)
	}
	if bone.Length != 1.0 {
		t.Fatalf("metacarpal length mismatch: %f", bone.Length)
	}
}

func TestRetargetMetacarpalKeepsStaleWhenProximalUnbound(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	// 中手骨自身と手首のみバインドし、基節骨は未バインドのままにする。
	bindJoint(&boundHand.Wrist, 0.0, 0.0, 0.0)
	bindJoint(&boundHand.Fingers[model.FINGER_MIDDLE].Joints[model.BONE_METACARPAL], 0.0, 0.5, 0.0)

	bone := &hand.Fingers[model.FINGER_MIDDLE].Bones[model.BONE_METACARPAL]
	bone.PrevJoint = mmath.NewVec3(9.0, 9.0, 9.0)
	before := *bone

	usecase.Retarget(boundHand, hand)

	if !reflect.DeepEqual(before, *bone) {
		t.Fatalf("metacarpal without proximal should keep stale values: before=%+v after=%+v", before, *bone)
	}
}

func TestRetargetFingertipExtrapolation(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	indexFinger := &boundHand.Fingers[model.FINGER_INDEX]
	bindJoint(&indexFinger.Joints[model.BONE_INTERMEDIATE], 0.0, 1.0, 0.0)
	bindJoint(&indexFinger.Joints[model.BONE_DISTAL], 0.0, 0.0, 0.0)

	bone := &hand.Fingers[model.FINGER_INDEX].Bones[model.BONE_DISTAL]
	bone.Direction = mmath.NewVec3(0.0, -1.0, 0.0)

	usecase.RetargetWithScale(boundHand, hand, 0.8)

	tip := hand.Fingers[model.FINGER_INDEX].TipPosition
	if !tip.NearEquals(mmath.NewVec3(0.0, -0.8, 0.0), 1e-9) {
		t.Fatalf("tip position mismatch: %v", tip)
	}
	if !bone.PrevJoint.NearEquals(mmath.NewVec3(0.0, 0.0, 0.0), 1e-9) {
		t.Fatalf("distal prev joint should be distal position: %v", bone.PrevJoint)
	}
	if !bone.NextJoint.NearEquals(tip, 1e-9) {
		t.Fatalf("distal next joint should be tip position: %v", bone.NextJoint)
	}
	if !bone.Direction.NearEquals(mmath.NewVec3(0.0, 0.8, 0.0), 1e-9) {
		t.Fatalf("distal direction mismatch: %v", bone.Direction)
	}
	if !bone.Center.NearEquals(mmath.NewVec3(0.0, -0.4, 0.0), 1e-9) {
		t.Fatalf("distal center mismatch: %v", bone.Center)
	}
	if bone.Length < 0.8-1e-9 || bone.Length > 0.8+1e-9 {
		t.Fatalf("distal length mismatch: %f", bone.Length)
	}
}

func TestRetargetFingertipKeepsStaleWhenIntermediateUnbound(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Fingers[model.FINGER_THUMB].Joints[model.BONE_DISTAL], 0.0, 0.0, 0.0)

	bone := &hand.Fingers[model.FINGER_THUMB].Bones[model.BONE_DISTAL]
	bone.NextJoint = mmath.NewVec3(7.0, 7.0, 7.0)
	before := *bone
	tipBefore := hand.Fingers[model.FINGER_THUMB].TipPosition

	usecase.Retarget(boundHand, hand)

	if !reflect.DeepEqual(before, *bone) {
		t.Fatalf("distal without intermediate should keep stale values: before=%+v after=%+v", before, *bone)
	}
	if !hand.Fingers[model.FINGER_THUMB].TipPosition.NearEquals(tipBefore, 1e-9) {
		t.Fatalf("tip position should keep stale value: %v", hand.Fingers[model.FINGER_THUMB].TipPosition)
	}
}

func TestRetargetPalmWidthFromProximalPrevJoints(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	hand.Fingers[model.FINGER_PINKY].Bones[model.BONE_PROXIMAL].PrevJoint = mmath.NewVec3(-1.0, 0.0, 0.0)
	hand.Fingers[model.FINGER_INDEX].Bones[model.BONE_PROXIMAL].PrevJoint = mmath.NewVec3(1.0, 0.0, 0.0)

	usecase.Retarget(boundHand, hand)

	if hand.PalmWidth != 2.0 {
		t.Fatalf("palm width mismatch: %f", hand.PalmWidth)
	}
}

func TestRetargetPalmPositionFromWristAndMiddleProximal(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Wrist, 0.0, 0.0, 0.0)
	middleFinger := &boundHand.Fingers[model.FINGER_MIDDLE]
	bindJoint(&middleFinger.Joints[model.BONE_PROXIMAL], 0.0, 4.0, 0.0)
	bindJoint(&middleFinger.Joints[model.BONE_INTERMEDIATE], 0.0, 6.0, 0.0)

	usecase.Retarget(boundHand, hand)

	if !hand.PalmPosition.NearEquals(mmath.NewVec3(0.0, 2.0, 0.0), 1e-9) {
		t.Fatalf("palm position mismatch: %v", hand.PalmPosition)
	}
	if !hand.StabilizedPalmPosition.NearEquals(hand.PalmPosition, 1e-9) {
		t.Fatalf("stabilized palm should equal palm position: %v", hand.StabilizedPalmPosition)
	}
}

func TestRetargetArmNextJointFinalIsWristPosition(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Wrist, 0.0, 2.0, 0.0)
	bindJoint(&boundHand.Elbow, 0.0, -4.0, 0.0)
	hand.Arm.Width = 0.5
	widthBefore := hand.Arm.Width

	usecase.Retarget(boundHand, hand)

	if !hand.WristPosition.NearEquals(mmath.NewVec3(0.0, 2.0, 0.0), 1e-9) {
		t.Fatalf("wrist position mismatch: %v", hand.WristPosition)
	}
	if !hand.Arm.PrevJoint.NearEquals(mmath.NewVec3(0.0, -4.0, 0.0), 1e-9) {
		t.Fatalf("arm prev joint should be elbow position: %v", hand.Arm.PrevJoint)
	}
	// ひじ段での終点上書きは手のひら段で必ず手首位置へ戻される。
	if !hand.Arm.NextJoint.NearEquals(hand.WristPosition, 1e-9) {
		t.Fatalf("final arm next joint should be wrist position: %v", hand.Arm.NextJoint)
	}
	if !hand.Arm.Center.NearEquals(mmath.NewVec3(0.0, -1.0, 0.0), 1e-9) {
		t.Fatalf("arm center mismatch: %v", hand.Arm.Center)
	}
	if !hand.Arm.Direction.NearEquals(mmath.NewVec3(0.0, -6.0, 0.0), 1e-9) {
		t.Fatalf("arm direction mismatch: %v", hand.Arm.Direction)
	}
	if hand.Arm.Length != 6.0 {
		t.Fatalf("arm length mismatch: %f", hand.Arm.Length)
	}
	if hand.Arm.Width != widthBefore {
		t.Fatalf("arm width should be preserved: %f", hand.Arm.Width)
	}
}

func TestRetargetArmKeepsWristAsNextJointWithoutElbow(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Wrist, 3.0, 0.0, 0.0)
	hand.Arm.PrevJoint = mmath.NewVec3(8.0, 8.0, 8.0)
	prevBefore := hand.Arm.PrevJoint

	usecase.Retarget(boundHand, hand)

	if !hand.Arm.NextJoint.NearEquals(mmath.NewVec3(3.0, 0.0, 0.0), 1e-9) {
		t.Fatalf("arm next joint should be wrist position: %v", hand.Arm.NextJoint)
	}
	if !hand.Arm.PrevJoint.NearEquals(prevBefore, 1e-9) {
		t.Fatalf("arm prev joint should keep stale value without elbow: %v", hand.Arm.PrevJoint)
	}
}

func TestRetargetIdempotentForUnchangedBinding(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	// 末節骨は既存方向からの補外で自己参照するため、冪等性の検証は
	// 末節骨以外の全域をバインドした構成で行う。
	bindJoint(&boundHand.Wrist, 0.0, 0.0, 0.0)
	bindJoint(&boundHand.Elbow, 0.0, -3.0, 0.0)
	for fingerIdx := range boundHand.Fingers {
		offset := float64(fingerIdx)
		bindJoint(&boundHand.Fingers[fingerIdx].Joints[model.BONE_METACARPAL], offset, 1.0, 0.0)
		bindJoint(&boundHand.Fingers[fingerIdx].Joints[model.BONE_PROXIMAL], offset, 2.0, 0.0)
	}

	usecase.Retarget(boundHand, hand)
	first := *hand
	usecase.Retarget(boundHand, hand)

	if !reflect.DeepEqual(first, *hand) {
		t.Fatalf("repeated retarget should yield identical output")
	}
}

func TestBuildFrameMetricsSummarizesHand(t *testing.T) {
	usecase := NewHandRetargetUsecase()
	boundHand := model.NewBoundHand()
	hand := model.NewCanonicalHand()

	bindJoint(&boundHand.Wrist, 0.0, 0.0, 0.0)
	indexFinger := &boundHand.Fingers[model.FINGER_INDEX]
	bindJoint(&indexFinger.Joints[model.BONE_PROXIMAL], 0.0, 2.0, 0.0)
	bindJoint(&indexFinger.Joints[model.BONE_INTERMEDIATE], 0.0, 3.0, 0.0)

	usecase.Retarget(boundHand, hand)
	metrics := BuildFrameMetrics(hand)

	if !metrics.WristPosition.NearEquals(hand.WristPosition, 1e-9) {
		t.Fatalf("wrist metrics mismatch: %v", metrics.WristPosition)
	}
	if metrics.PalmWidth != hand.PalmWidth {
		t.Fatalf("palm width metrics mismatch: %f", metrics.PalmWidth)
	}
	if metrics.Fingers[model.FINGER_INDEX].BoneLengths[model.BONE_PROXIMAL] != 1.0 {
		t.Fatalf("proximal length metrics mismatch: %f", metrics.Fingers[model.FINGER_INDEX].BoneLengths[model.BONE_PROXIMAL])
	}
}

func TestBuildFrameMetricsWithNilHand(t *testing.T) {
	metrics := BuildFrameMetrics(nil)
	if metrics.PalmWidth != 0.0 {
		t.Fatalf("nil hand metrics should be zero value: %f", metrics.PalmWidth)
	}
}
