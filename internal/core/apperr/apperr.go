package apperr

import "errors"

// 业务错误分类（与 HTTP 状态的映射放在 transport 层）
type Kind int

const (
	KindInvalid Kind = iota + 1 // 参数/输入非法
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict // 唯一键冲突（邮箱已存在等）
	KindInternal
)

// 统一错误对象：Kind 给机器看，Msg 给人看，Err 保留底层原因
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "server error"
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) error         { return &Error{Kind: KindInvalid, Msg: msg} }
func Unauthenticated(msg string) error { return &Error{Kind: KindUnauthenticated, Msg: msg} }
func Forbidden(msg string) error       { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error        { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error        { return &Error{Kind: KindConflict, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf 提取错误分类；非 *Error 一律按 Internal 处理
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }
