package response

// BizError Code 即返回的 HTTP 状态码
type BizError struct {
	Code   int
	Msg    string
	Detail string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func (e *BizError) WithDetail(detail string) *BizError {
	e.Detail = detail
	return e
}
