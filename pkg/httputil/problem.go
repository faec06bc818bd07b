// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import (
	"encoding/json"
	"strings"
)

// Content-Type
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// ErrorBody はMagma系APIのエラーレスポンス構造体。
type ErrorBody struct {
	Message string `json:"message"`
}

// ProblemDetail はRFC 7807準拠のエラーレスポンス構造体。
// API前段のプロキシが返す場合がある。
type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ErrorMessage はエラーレスポンスのボディから表示用メッセージを取り出す。
// 優先順位: message → detail → title → ボディ文字列そのまま
func ErrorMessage(body []byte) string {
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return eb.Message
	}

	var pd ProblemDetail
	if err := json.Unmarshal(body, &pd); err == nil {
		if pd.Detail != "" {
			return pd.Detail
		}
		if pd.Title != "" {
			return pd.Title
		}
	}

	return strings.TrimSpace(string(body))
}
