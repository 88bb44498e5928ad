package common

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", InvalidArgumentError("bad input"), codes.InvalidArgument},
		{"invalid argument formatted", InvalidArgumentErrorf("bad field %q", "total"), codes.InvalidArgument},
		{"not found", NotFoundError("missing"), codes.NotFound},
		{"not found formatted", NotFoundErrorf("receipt %s not found", "abc"), codes.NotFound},
		{"internal", InternalError("boom"), codes.Internal},
		{"internal formatted", InternalErrorf("save: %v", errors.New("boom")), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(tt.err); got != tt.want {
				t.Errorf("status.Code() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")
	wrapped := WrapError(cause, "get receipt")
	if !errors.Is(wrapped, cause) {
		t.Errorf("WrapError() lost the cause chain")
	}
	if !strings.HasPrefix(wrapped.Error(), "get receipt: ") {
		t.Errorf("WrapError() message = %q", wrapped.Error())
	}
	if WrapError(nil, "noop") != nil {
		t.Errorf("WrapError(nil) != nil")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", cause)
	if !errors.Is(err, cause) {
		t.Errorf("AppError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "CONFIG_ERROR") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("AppError.Error() = %q", err.Error())
	}
}
