// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"
)

const (
	// ScaleOffsetMin はスケールオフセット下限。
	ScaleOffsetMin = -1.0
	// ScaleOffsetMax はスケールオフセット上限。
	ScaleOffsetMax = 3.0
)

// ITransformSource は外部シーン上のトランスフォームへの非所有参照を表す。
// 参照先の寿命は外部システムが管理し、いつアンバインドされてもよい。
// 位置・回転は呼び出しごとに現在値を返す契約とする。
type ITransformSource interface {
	// WorldPosition は現在のワールド位置を返す。
	WorldPosition() mmath.Vec3
	// WorldRotation は現在のワールド回転を返す。
	WorldRotation() mmath.Quaternion
}

// TransformSnapshot は位置・回転・スケールの記録値を表す。
type TransformSnapshot struct {
	Position mmath.Vec3
	Rotation mmath.Quaternion
	Scale    mmath.Vec3
}

// NewTransformSnapshot は単位スケールのスナップショットを生成する。
func NewTransformSnapshot() TransformSnapshot {
	return TransformSnapshot{
		Position: mmath.ZERO_VEC3,
		Rotation: mmath.NewQuaternion(),
		Scale:    mmath.NewVec3(1.0, 1.0, 1.0),
	}
}

// BoundJoint はリグトランスフォームへのバインド1件を表す。
// Sourceが未設定の間は、この関節に依存する計算をスキップする。
type BoundJoint struct {
	Source ITransformSource
	Start  TransformSnapshot
	Offset TransformSnapshot
}

// IsBound はトランスフォーム参照が存在するか判定する。
func (j *BoundJoint) IsBound() bool {
	return j != nil && j.Source != nil
}

// ResolvePosition は現在のワールド位置を取得する。未バインドならfalseを返す。
func (j *BoundJoint) ResolvePosition() (mmath.Vec3, bool) {
	if !j.IsBound() {
		return mmath.ZERO_VEC3, false
	}
	return j.Source.WorldPosition(), true
}

// ResolveRotation は現在のワールド回転を取得する。未バインドならfalseを返す。
func (j *BoundJoint) ResolveRotation() (mmath.Quaternion, bool) {
	if !j.IsBound() {
		return mmath.NewQuaternion(), false
	}
	return j.Source.WorldRotation(), true
}

// CaptureStart はバインド時点のスナップショットを取り直す。
func (j *BoundJoint) CaptureStart() {
	if !j.IsBound() {
		return
	}
	j.Start.Position = j.Source.WorldPosition()
	j.Start.Rotation = j.Source.WorldRotation()
}

// BoundFinger は1指分のバインドを表す。骨順は中手骨→末節骨で固定。
type BoundFinger struct {
	Joints [FingerBoneCount]BoundJoint

	// FingerTipBaseLength とFingerTipScaleOffsetは指先補外のオフセット編集側が参照する。
	FingerTipBaseLength  float64
	FingerTipScaleOffset float64
}

// BoundHand は1手分のバインドモデルを表す。
type BoundHand struct {
	Fingers [FingerCount]BoundFinger
	Wrist   BoundJoint
	Elbow   BoundJoint

	BaseScale  float64
	StartScale mmath.Vec3

	// ScaleOffset とElbowOffsetは[-1,3]の範囲を外部編集側がクランプして維持する。
	// リターゲット計算は範囲外の値が来ても失敗しない。
	ScaleOffset float64
	ElbowOffset float64
}

// NewBoundHand は初期状態のバインドモデルを生成する。
func NewBoundHand() *BoundHand {
	hand := &BoundHand{
		BaseScale:  1.0,
		StartScale: mmath.NewVec3(1.0, 1.0, 1.0),
	}
	for fingerIdx := range hand.Fingers {
		for boneIdx := range hand.Fingers[fingerIdx].Joints {
			hand.Fingers[fingerIdx].Joints[boneIdx].Start = NewTransformSnapshot()
			hand.Fingers[fingerIdx].Joints[boneIdx].Offset = NewTransformSnapshot()
		}
	}
	hand.Wrist.Start = NewTransformSnapshot()
	hand.Wrist.Offset = NewTransformSnapshot()
	hand.Elbow.Start = NewTransformSnapshot()
	hand.Elbow.Offset = NewTransformSnapshot()
	return hand
}

// Joint は関節スロットに対応するバインドを返す。
func (h *BoundHand) Joint(slot JointSlot) (*BoundJoint, bool) {
	if h == nil {
		return nil, false
	}
	switch slot {
	case JOINT_WRIST:
		return &h.Wrist, true
	case JOINT_ELBOW:
		return &h.Elbow, true
	}
	finger, bone, ok := slot.FingerBone()
	if !ok {
		return nil, false
	}
	return &h.Fingers[finger].Joints[bone], true
}

// ClampScaleOffset はスケールオフセットを[-1,3]へクランプする。データ層専用の補助で、
// リターゲット計算はクランプ済みであることを前提にしない。
func ClampScaleOffset(value float64) float64 {
	return mmath.ClampedFloat(value, ScaleOffsetMin, ScaleOffsetMax)
}

// Clone はバインドモデルの複製を返す。トランスフォーム参照は非所有の同一性参照のため、
// 深い複製ではなく同じ参照を持ち回す。
func (h *BoundHand) Clone() (*BoundHand, error) {
	if h == nil {
		return nil, fmt.Errorf("複製対象のバインドモデルが未設定です")
	}

	var sources [FingerCount][FingerBoneCount]ITransformSource
	for fingerIdx := range h.Fingers {
		for boneIdx := range h.Fingers[fingerIdx].Joints {
			sources[fingerIdx][boneIdx] = h.Fingers[fingerIdx].Joints[boneIdx].Source
			h.Fingers[fingerIdx].Joints[boneIdx].Source = nil
		}
	}
	wristSource := h.Wrist.Source
	elbowSource := h.Elbow.Source
	h.Wrist.Source = nil
	h.Elbow.Source = nil

	cloned := &BoundHand{}
	err := deepcopy.Copy(cloned, h)

	for fingerIdx := range h.Fingers {
		for boneIdx := range h.Fingers[fingerIdx].Joints {
			h.Fingers[fingerIdx].Joints[boneIdx].Source = sources[fingerIdx][boneIdx]
		}
	}
	h.Wrist.Source = wristSource
	h.Elbow.Source = elbowSource

	if err != nil {
		return nil, fmt.Errorf("バインドモデルの複製に失敗しました: %w", err)
	}
	for fingerIdx := range cloned.Fingers {
		for boneIdx := range cloned.Fingers[fingerIdx].Joints {
			cloned.Fingers[fingerIdx].Joints[boneIdx].Source = sources[fingerIdx][boneIdx]
		}
	}
	cloned.Wrist.Source = wristSource
	cloned.Elbow.Source = elbowSource
	return cloned, nil
}
