// 指示: miu200521358
package stream

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/miu200521358/mu_hand_retarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
)

// frameTransformSource は受信フレームが供給する関節姿勢を保持するトランスフォーム参照を表す。
type frameTransformSource struct {
	position mmath.Vec3
	rotation mmath.Quaternion
}

// WorldPosition は現在のワールド位置を返す。
func (s *frameTransformSource) WorldPosition() mmath.Vec3 {
	return s.position
}

// WorldRotation は現在のワールド回転を返す。
func (s *frameTransformSource) WorldRotation() mmath.Quaternion {
	return s.rotation
}

// handSession は1接続分のリターゲット状態を表す。
// バインドモデルとトラッキング骨格は接続ごとに保持し、フレーム評価は
// 読み込みループ上で直列に実行する。
type handSession struct {
	id      string
	bound   *model.BoundHand
	hand    *model.CanonicalHand
	sources [model.JointSlotCount]*frameTransformSource
}

// newHandSession はテンプレートを複製してセッションを生成する。
// テンプレート未指定時は空のバインドモデルから開始する。
func newHandSession(template *model.BoundHand) (*handSession, error) {
	bound := model.NewBoundHand()
	if template != nil {
		cloned, err := template.Clone()
		if err != nil {
			return nil, fmt.Errorf("セッション用バインドモデルの複製に失敗しました: %w", err)
		}
		bound = cloned
	}
	return &handSession{
		id:    uuid.New().String(),
		bound: bound,
		hand:  model.NewCanonicalHand(),
	}, nil
}

// applyRigFrame は受信フレームの関節姿勢をバインドモデルへ反映する。
// フレームに現れない関節は前回状態を維持し、未知の関節名は読み飛ばす。
func (s *handSession) applyRigFrame(msg *RigFrameMessage) {
	if msg == nil {
		return
	}

	for name, pose := range msg.Joints {
		slot, exists := model.ParseJointSlot(name)
		if !exists {
			continue
		}
		joint, ok := s.bound.Joint(slot)
		if !ok {
			continue
		}
		source := s.sources[slot]
		if source == nil {
			source = &frameTransformSource{rotation: mmath.NewQuaternion()}
			s.sources[slot] = source
		}
		source.position = mmath.NewVec3(pose.X, pose.Y, pose.Z)
		if pose.QW != 0.0 || pose.QX != 0.0 || pose.QY != 0.0 || pose.QZ != 0.0 {
			source.rotation = mmath.Quaternion{Quat: mgl64.Quat{
				W: pose.QW,
				V: mgl64.Vec3{pose.QX, pose.QY, pose.QZ},
			}}
		}
		if joint.Source == nil {
			joint.Source = source
			joint.CaptureStart()
		}
	}

	for _, name := range msg.Unbind {
		slot, exists := model.ParseJointSlot(name)
		if !exists {
			continue
		}
		if joint, ok := s.bound.Joint(slot); ok {
			joint.Source = nil
		}
	}
}
