// 指示: miu200521358
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/rinteractor"
)

const (
	// MessageTypeRigFrame はリグ姿勢フレームメッセージ種別。
	MessageTypeRigFrame = "rig_frame"
	// MessageTypeHandFrame はリターゲット結果フレームメッセージ種別。
	MessageTypeHandFrame = "hand_frame"
	// MessageTypePing は疎通確認メッセージ種別。
	MessageTypePing = "ping"
	// MessageTypePong は疎通応答メッセージ種別。
	MessageTypePong = "pong"
	// MessageTypeError はエラー通知メッセージ種別。
	MessageTypeError = "error"
)

// JointPose は関節1件分のワールド姿勢を表す。回転は省略可能。
type JointPose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	QX float64 `json:"qx,omitempty"`
	QY float64 `json:"qy,omitempty"`
	QZ float64 `json:"qz,omitempty"`
	QW float64 `json:"qw,omitempty"`
}

// RigFrameMessage は1フレーム分のリグ関節姿勢を表す。
// Jointsに現れない関節スロットは前回のバインド状態を維持し、
// Unbindに列挙されたスロットはバインド解除する。
type RigFrameMessage struct {
	Type           string               `json:"type"`
	Frame          int64                `json:"frame"`
	FingertipScale float64              `json:"fingertip_scale,omitempty"`
	Joints         map[string]JointPose `json:"joints"`
	Unbind         []string             `json:"unbind,omitempty"`
}

// PingMessage は疎通確認を表す。
type PingMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// PongMessage は疎通応答を表す。
type PongMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorMessage はエラー通知を表す。
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FingerFrame は1指分のリターゲット結果を表す。
type FingerFrame struct {
	Name        string     `json:"name"`
	TipPosition [3]float64 `json:"tip_position"`
	BoneLengths []float64  `json:"bone_lengths"`
}

// HandFrameMessage は1フレーム分のリターゲット結果を表す。
type HandFrameMessage struct {
	Type          string        `json:"type"`
	SessionID     string        `json:"session_id"`
	Frame         int64         `json:"frame"`
	WristPosition [3]float64    `json:"wrist_position"`
	PalmPosition  [3]float64    `json:"palm_position"`
	PalmWidth     float64       `json:"palm_width"`
	ArmLength     float64       `json:"arm_length"`
	Fingers       []FingerFrame `json:"fingers"`
}

// ParseMessage は受信メッセージを種別ごとの構造体へ解析する。
func ParseMessage(data []byte) (any, error) {
	var base struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("メッセージ解析に失敗しました: %w", err)
	}

	switch base.Type {
	case MessageTypeRigFrame:
		var msg RigFrameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("リグフレーム解析に失敗しました: %w", err)
		}
		return &msg, nil
	case MessageTypePing:
		var msg PingMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("ping解析に失敗しました: %w", err)
		}
		return &msg, nil
	default:
		return nil, fmt.Errorf("未対応のメッセージ種別です: %s", base.Type)
	}
}

// buildHandFrameMessage はリターゲット結果要約から送信メッセージを構築する。
func buildHandFrameMessage(sessionID string, frame int64, metrics rinteractor.FrameMetrics) HandFrameMessage {
	msg := HandFrameMessage{
		Type:          MessageTypeHandFrame,
		SessionID:     sessionID,
		Frame:         frame,
		WristPosition: [3]float64{metrics.WristPosition.X, metrics.WristPosition.Y, metrics.WristPosition.Z},
		PalmPosition:  [3]float64{metrics.PalmPosition.X, metrics.PalmPosition.Y, metrics.PalmPosition.Z},
		PalmWidth:     metrics.PalmWidth,
		ArmLength:     metrics.ArmLength,
		Fingers:       make([]FingerFrame, 0, model.FingerCount),
	}
	for _, finger := range metrics.Fingers {
		frame := FingerFrame{
			Name:        finger.Kind.String(),
			TipPosition: [3]float64{finger.TipPosition.X, finger.TipPosition.Y, finger.TipPosition.Z},
			BoneLengths: make([]float64, 0, model.FingerBoneCount),
		}
		for _, length := range finger.BoneLengths {
			frame.BoneLengths = append(frame.BoneLengths, length)
		}
		msg.Fingers = append(msg.Fingers, frame)
	}
	return msg
}
