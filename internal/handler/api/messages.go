package api

import "errors"

// user-facing messages shown by the intake and admin forms
const (
	msgValidation       = "入力内容に誤りがあります。内容をご確認ください。"
	msgDuplicateEmail   = "このメールアドレスでは既にお申し込みいただいております。"
	msgCapacityExceeded = "申し訳ございません。定員に達したため、キャンセル待ちとして受け付けました。"
	msgCancelFailed     = "キャンセルできませんでした。受付番号とメールアドレスをご確認ください。"
	msgNotFound         = "指定された申込が見つかりません。"
	msgUnavailable      = "ただいま処理を完了できませんでした。時間をおいて再度お試しください。"
	msgInvalidLogin     = "ユーザー名またはパスワードが正しくありません。"
)

var errCapacityExceeded = errors.New("capacity exceeded")
