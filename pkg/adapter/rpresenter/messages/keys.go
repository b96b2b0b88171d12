// 指示: miu200521358
// Package messages はCLI・ログ表示に使うメッセージ文字列を提供する。
package messages

// メッセージ一覧。
const (
	UsageServeAddr      = "WebSocketストリーミングサーバの待ち受けアドレス (例: localhost:8800)"
	UsageInputPath      = "リプレイ対象のリグフレームJSONパス"
	UsageFingertipScale = "指先補外スケール (未指定時は0.8)"

	MessageInputRequired   = "リプレイ入力(-in)または待ち受けアドレス(-serve)を指定してください"
	MessageInputExtInvalid = "リプレイ入力の拡張子が .json ではありません: %s"

	LogServeStarted   = "[mu_hand_retarget] ストリーミング開始: ws://%s/ws\n"
	LogReplayStarted  = "[mu_hand_retarget] リプレイ開始: %s (%dフレーム)\n"
	LogReplayFinished = "[mu_hand_retarget] リプレイ完了: %dフレーム\n"

	LogSessionStarted  = "セッション開始: %s"
	LogSessionFinished = "セッション終了: %s"
	LogBindingWarning  = "バインド警告: session=%s warning=%s"
)
