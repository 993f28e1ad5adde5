// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/specreport/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "run file not found",
			wantStr: "[NOT_FOUND] run file not found",
		},
		{
			name:    "dir_create_error",
			code:    errors.ErrDirCreate,
			message: "cannot create report directory",
			wantStr: "[DIR_CREATE] cannot create report directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")
	err := errors.Wrap(base, errors.ErrFileWrite, "writing feature report")

	if !stderrors.Is(err, base) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[FILE_WRITE] writing feature report: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrAttachmentCopy, "copying %s", "screenshot.png")

	if !errors.IsErrorCode(err, errors.ErrAttachmentCopy) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrFileWrite) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrAttachmentCopy) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrReportRotate, "x")); got != errors.ErrReportRotate {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrReportRotate)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "write failed").
		WithDetail("path", "/reports/html/login.html")

	if err.Details["path"] != "/reports/html/login.html" {
		t.Errorf("WithDetail() did not record the detail, got %v", err.Details)
	}
}
