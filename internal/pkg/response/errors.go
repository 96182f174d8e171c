package response

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 资源不存在（文章/版本/用户/通知）
	NotFound ResponseCode = 3
	// 无访问权限
	Forbidden ResponseCode = 4
	// 唯一性冲突（邮箱/用户名/重复协作者/重复好友）
	Duplicate ResponseCode = 5
	// 未认证
	Unauthorized ResponseCode = 6
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

func (be *BusinessError) Error() string {
	return be.Msg
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// NotFoundError 资源不存在
func NotFoundError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(NotFound), WithErrorMessage(msg))
}

// ForbiddenError 权限不足
func ForbiddenError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Forbidden), WithErrorMessage(msg))
}

// DuplicateError 唯一性冲突
func DuplicateError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Duplicate), WithErrorMessage(msg))
}

// InvalidInputError 参数非法（如必填文本为空）
func InvalidInputError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(InvalidParameter), WithErrorMessage(msg))
}
