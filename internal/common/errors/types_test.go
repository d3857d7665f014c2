package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name: "basic error",
			appError: &AppError{
				Type:    ErrTypeConfig,
				Message: "configuration is invalid",
			},
			want: "config: configuration is invalid",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeInternal,
				Message: "delivery simulation failed",
				Cause:   errors.New("writer closed"),
			},
			want: "internal: delivery simulation failed: cause=writer closed",
		},
		{
			name: "error with context",
			appError: &AppError{
				Type:    ErrTypeValidation,
				Message: "field validation failed",
				Context: map[string]interface{}{
					"field": "priority",
				},
			},
			want: "validation: field validation failed: context={field=priority}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appError.Error()
			if got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	appError := &AppError{
		Type:    ErrTypeInternal,
		Message: "wrapper error",
		Cause:   cause,
	}

	if unwrapped := appError.Unwrap(); unwrapped != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}

	appErrorNoCause := &AppError{
		Type:    ErrTypeConfig,
		Message: "no cause error",
	}

	if unwrapped := appErrorNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("AppError.Unwrap() without cause = %v, want nil", unwrapped)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appError := &AppError{
		Type:    ErrTypeValidation,
		Message: "validation failed",
	}

	result := appError.WithContext("field", "handle")

	if result != appError {
		t.Error("WithContext should return the same instance")
	}

	if appError.Context["field"] != "handle" {
		t.Errorf("Context[field] = %v, want handle", appError.Context["field"])
	}

	appError.WithContext("value", "ghost")

	if len(appError.Context) != 2 {
		t.Errorf("Context length = %d, want 2", len(appError.Context))
	}
}

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{
			name: "not found maps to 404",
			err:  NotFoundError("user"),
			want: http.StatusNotFound,
		},
		{
			name: "validation maps to 400",
			err:  ValidationError("bad priority"),
			want: http.StatusBadRequest,
		},
		{
			name: "config maps to 500",
			err:  ConfigError("bad port"),
			want: http.StatusInternalServerError,
		},
		{
			name: "internal maps to 500",
			err:  InternalError("boom", nil),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("field is required")

	if err.Type != ErrTypeValidation {
		t.Errorf("Type = %v, want %v", err.Type, ErrTypeValidation)
	}

	if err.Message != "field is required" {
		t.Errorf("Message = %v, want 'field is required'", err.Message)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("user")

	if err.Type != ErrTypeNotFound {
		t.Errorf("Type = %v, want %v", err.Type, ErrTypeNotFound)
	}

	if err.Message != "user not found" {
		t.Errorf("Message = %v, want 'user not found'", err.Message)
	}
}

func TestInternalError(t *testing.T) {
	cause := errors.New("system panic")
	err := InternalError("internal system error", cause)

	if err.Type != ErrTypeInternal {
		t.Errorf("Type = %v, want %v", err.Type, ErrTypeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{
			name:    "matching type",
			err:     ConfigError("test"),
			errType: ErrTypeConfig,
			want:    true,
		},
		{
			name:    "non-matching type",
			err:     ConfigError("test"),
			errType: ErrTypeNotFound,
			want:    false,
		},
		{
			name:    "non-app error",
			err:     errors.New("regular error"),
			errType: ErrTypeConfig,
			want:    false,
		},
		{
			name:    "nil error",
			err:     nil,
			errType: ErrTypeConfig,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsType(tt.err, tt.errType); got != tt.want {
				t.Errorf("IsType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{
			name: "app error",
			err:  ValidationError("test"),
			want: ErrTypeValidation,
		},
		{
			name: "regular error",
			err:  errors.New("regular error"),
			want: ErrTypeInternal,
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := InternalError("wrapped error", originalErr)

	if !errors.Is(wrappedErr, originalErr) {
		t.Error("errors.Is should work with wrapped AppError")
	}

	var appErr *AppError
	if !errors.As(wrappedErr, &appErr) {
		t.Error("errors.As should work with AppError")
	}
}
