// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Ошибки возвращаются в форме
// {"error": "..."}, успешные операции — {"message": "..."} и/или полезная нагрузка.
package response

import (
	"github.com/go-playground/validator"
)

// ErrorResponse — структура ошибки, возвращаемая клиенту.
type ErrorResponse struct {
	Error string `json:"error" example:"Please fill all the fields"`
}

// MessageResponse — структура успешного ответа с текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message" example:"Task added successfully"`
}

// MsgMissingFields — фиксированный текст ошибки валидации обязательных полей.
const MsgMissingFields = "Please fill all the fields"

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse с переданным сообщением.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError формирует ErrorResponse для ошибок валидации входных данных.
//
// Клиенту всегда возвращается одинаковый текст: контракт API не раскрывает,
// какое именно поле отсутствует.
func ValidationError(_ validator.ValidationErrors) ErrorResponse {
	return Error(MsgMissingFields)
}
