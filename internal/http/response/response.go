// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
package response

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст уведомления для пользователя (при неуспехе).
// Поле Fields — ошибки валидации по полям формы.
// Поле Data — данные ответа.
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Data   any               `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ErrorWithData возвращает ошибку вместе с данными, например состоянием страницы,
// которая не смогла загрузиться.
func ErrorWithData(msg string, data any) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
		Data:   data,
	}
}

// NewValidator создаёт валидатор, который называет поля по json-тегам,
// чтобы ключи в Fields совпадали с полями формы.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Messages тексты ошибок формы, ключ — "поле.тег", например "password.min".
type Messages map[string]string

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Для каждого поля берётся первое нарушение; текст ищется в messages,
// иначе формируется стандартное сообщение.
func ValidationError(errs validator.ValidationErrors, messages Messages) Response {
	fields := make(map[string]string, len(errs))
	var errsMsgs []string

	for _, err := range errs {
		if _, seen := fields[err.Field()]; seen {
			continue
		}
		msg, ok := messages[err.Field()+"."+err.ActualTag()]
		if !ok {
			msg = defaultMessage(err)
		}
		fields[err.Field()] = msg
		errsMsgs = append(errsMsgs, msg)
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
		Fields: fields,
	}
}

func defaultMessage(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "min":
		return fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not a valid", err.Field())
	}
}
