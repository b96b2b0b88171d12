// 指示: miu200521358
package stream

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/miu200521358/mu_hand_retarget/pkg/adapter/rpresenter/messages"
	"github.com/miu200521358/mu_hand_retarget/pkg/domain/model"
	"github.com/miu200521358/mu_hand_retarget/pkg/shared/base/logging"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/port/routput"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/rinteractor"
)

// StreamServer はリグ姿勢フレームを受け取り、リターゲット結果を配信するWebSocketサーバを表す。
type StreamServer struct {
	upgrader   websocket.Upgrader
	retargeter routput.IHandRetargeter
	template   *model.BoundHand

	sessionsMu sync.RWMutex
	sessions   map[string]*handSession
}

// NewStreamServer はストリーミングサーバを生成する。
func NewStreamServer(retargeter routput.IHandRetargeter, template *model.BoundHand) *StreamServer {
	return &StreamServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		retargeter: retargeter,
		template:   template,
		sessions:   make(map[string]*handSession),
	}
}

// SessionCount は現在のセッション数を返す。
func (s *StreamServer) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

// HandleWS はWebSocket接続を受け付け、フレーム処理ループを実行する。
// 同一セッションの評価は読み込みループ上で直列化される。
func (s *StreamServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.DefaultLogger().Error("WebSocket接続の確立に失敗しました: %v", err)
		return
	}
	writer := NewSafeWriter(conn)
	defer writer.Close()

	session, err := newHandSession(s.template)
	if err != nil {
		logging.DefaultLogger().Error("セッション生成に失敗しました: %v", err)
		return
	}
	s.registerSession(session)
	defer s.unregisterSession(session)
	logging.DefaultLogger().Info(messages.LogSessionStarted, session.id)

	for {
		_, data, err := writer.ReadMessage()
		if err != nil {
			logging.DefaultLogger().Info(messages.LogSessionFinished, session.id)
			return
		}
		if err := s.handleMessage(session, writer, data); err != nil {
			logging.DefaultLogger().Warn("メッセージ処理に失敗しました: %v", err)
			_ = writer.WriteJSON(ErrorMessage{Type: MessageTypeError, Message: err.Error()})
		}
	}
}

// handleMessage は受信メッセージ1件を処理する。
func (s *StreamServer) handleMessage(session *handSession, writer *SafeWriter, data []byte) error {
	parsed, err := ParseMessage(data)
	if err != nil {
		return err
	}

	switch msg := parsed.(type) {
	case *PingMessage:
		return writer.WriteJSON(PongMessage{Type: MessageTypePong, Timestamp: msg.Timestamp})
	case *RigFrameMessage:
		return s.handleRigFrame(session, writer, msg)
	default:
		return nil
	}
}

// handleRigFrame はリグ姿勢フレームを反映し、リターゲット結果を送信する。
func (s *StreamServer) handleRigFrame(session *handSession, writer *SafeWriter, msg *RigFrameMessage) error {
	session.applyRigFrame(msg)
	for _, warning := range model.ValidateBoundHand(session.bound) {
		logging.DefaultLogger().Debug(messages.LogBindingWarning, session.id, warning)
	}

	fingertipScale := msg.FingertipScale
	if fingertipScale <= 0.0 {
		fingertipScale = rinteractor.DefaultFingertipScale
	}
	s.retargeter.RetargetWithScale(session.bound, session.hand, fingertipScale)

	metrics := rinteractor.BuildFrameMetrics(session.hand)
	return writer.WriteJSON(buildHandFrameMessage(session.id, msg.Frame, metrics))
}

// registerSession はセッションを登録する。
func (s *StreamServer) registerSession(session *handSession) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	s.sessions[session.id] = session
}

// unregisterSession はセッションを破棄する。
func (s *StreamServer) unregisterSession(session *handSession) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	delete(s.sessions, session.id)
}
