// 指示: miu200521358
package stream

import (
	"sync"

	"github.com/gorilla/websocket"
)

// SafeWriter はWebSocket接続への排他的な書き込みを表す。
type SafeWriter struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewSafeWriter は排他書き込みラッパーを生成する。
func NewSafeWriter(conn *websocket.Conn) *SafeWriter {
	return &SafeWriter{conn: conn}
}

// WriteJSON はJSONメッセージを排他的に書き込む。
func (w *SafeWriter) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

// WriteMessage は生メッセージを排他的に書き込む。
func (w *SafeWriter) WriteMessage(messageType int, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteMessage(messageType, data)
}

// ReadMessage は接続からメッセージを読み込む。読み込みは単一ループからのみ行うこと。
func (w *SafeWriter) ReadMessage() (int, []byte, error) {
	return w.conn.ReadMessage()
}

// Close は接続を閉じる。
func (w *SafeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}
