package subscriber

import "errors"

// MsgSavedSuccessfully は編集保存成功時の通知文言
const MsgSavedSuccessfully = "Subscriber saved successfully"

// ErrRowNotFound は指定された行が存在しない場合のエラー
var ErrRowNotFound = errors.New("row not found")

// ValidationError は入力検証エラーを表す。Errorはメッセージをそのまま返す。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SaveError は加入者の保存失敗を表す。
type SaveError struct {
	ID    string
	Cause error
}

func (e *SaveError) Error() string {
	return "error saving " + e.ID + " : " + ErrorMessage(e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// displayMessager はバックエンドが画面表示用のメッセージを持つエラー
type displayMessager interface {
	DisplayMessage() string
}

// ErrorMessage はエラーから表示用メッセージを取り出す。
// バックエンドの応答にメッセージがあればそれを、無ければエラー文字列を返す。
func ErrorMessage(err error) string {
	var dm displayMessager
	if errors.As(err, &dm) && dm.DisplayMessage() != "" {
		return dm.DisplayMessage()
	}
	return err.Error()
}
