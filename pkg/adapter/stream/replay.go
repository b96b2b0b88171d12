// 指示: miu200521358
package stream

import (
	"fmt"

	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/port/routput"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/rinteractor"
)

// ReplayFrames は記録済みリグフレーム列を1セッション上で順に評価し、
// フレームごとのリターゲット結果を返す。
func ReplayFrames(
	retargeter routput.IHandRetargeter,
	template *model.BoundHand,
	frames []RigFrameMessage,
) ([]HandFrameMessage, error) {
	if retargeter == nil {
		return nil, fmt.Errorf("リターゲッターが未設定です")
	}

	session, err := newHandSession(template)
	if err != nil {
		return nil, err
	}

	results := make([]HandFrameMessage, 0, len(frames))
	for frameIdx := range frames {
		frame := &frames[frameIdx]
		session.applyRigFrame(frame)

		fingertipScale := frame.FingertipScale
		if fingertipScale <= 0.0 {
			fingertipScale = rinteractor.DefaultFingertipScale
		}
		retargeter.RetargetWithScale(session.bound, session.hand, fingertipScale)

		metrics := rinteractor.BuildFrameMetrics(session.hand)
		results = append(results, buildHandFrameMessage(session.id, frame.Frame, metrics))
	}
	return results, nil
}
