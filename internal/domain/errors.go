package domain

import (
	"errors"
	"fmt"
)

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrRequestNotFound   = errors.New("leave request not found")
	ErrInvalidLeaveType  = errors.New("invalid leave type")
	ErrRequestNotPending = errors.New("leave request is not pending")
)

// RequestStateError возвращается при попытке повторного одобрения заявки.
// Хранит текущий статус, чтобы ответ мог его показать.
type RequestStateError struct {
	RequestID string
	Status    string
}

func (e *RequestStateError) Error() string {
	return fmt.Sprintf("leave request %s is already %s", e.RequestID, e.Status)
}

func (e *RequestStateError) Is(target error) bool {
	return target == ErrRequestNotPending
}
