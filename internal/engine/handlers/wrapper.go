package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"sandbox-core/pkg/api"
)

var (
	// ErrNoActor - команде нужен исполнитель, а его нет
	ErrNoActor = errors.New("command requires an actor")
	// ErrInvalidPayload - данные команды не разобрались или не прошли Validate
	ErrInvalidPayload = errors.New("invalid payload")
)

// TypedHandlerFunc получает уже разобранные и проверенные данные
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - для команд без данных (FIRE, RELOAD)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// DecodePayload разбирает JSON в T и вызывает Validate, если T его реализует
func DecodePayload[T any](raw json.RawMessage) (T, error) {
	var payload T
	if len(raw) == 0 {
		return payload, fmt.Errorf("%w: empty", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
	}
	return payload, nil
}

// PayloadCheck - та же проверка без выполнения, для входа очереди команд
func PayloadCheck[T any]() func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		_, err := DecodePayload[T](raw)
		return err
	}
}

func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		payload, err := DecodePayload[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, payload)
	}
}

// WithEmptyPayload игнорирует данные команды
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}

// RequireActor - для намерений, которые без исполнителя не имеют смысла
func RequireActor(handler HandlerFunc) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if ctx.Actor == nil {
			return Result{}, ErrNoActor
		}
		return handler(ctx, raw)
	}
}
