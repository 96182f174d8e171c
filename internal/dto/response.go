package dto

import (
	"fmt"
	"strings"

	res "coauthor/article-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(200, res.SuccessResponse(data))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(200, res.ErrorResponse(err.Code, err.Msg))
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		// 只提示第一个错误
		firstErr := validationErrs[0]
		jsonField := toSnakeCase(firstErr.Field())

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
		case "max":
			message = fmt.Sprintf("字段 '%s' 长度不能超过 %s", jsonField, firstErr.Param())
		case "min":
			message = fmt.Sprintf("字段 '%s' 长度不能少于 %s", jsonField, firstErr.Param())
		case "email":
			message = fmt.Sprintf("字段 '%s' 不是合法的邮箱地址", jsonField)
		default:
			message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage(message),
		))
		return
	}

	// 非 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
