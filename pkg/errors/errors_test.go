package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInvalidDataset, "missing %s series", "start")

	got := err.Error()
	if !strings.Contains(got, string(ErrCodeInvalidDataset)) {
		t.Errorf("Error() = %q, want code prefix", got)
	}
	if !strings.Contains(got, "missing start series") {
		t.Errorf("Error() = %q, want formatted message", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "saving chart %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeChartNotFound, "chart %s", "abc")

	if !Is(err, ErrCodeChartNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeCache) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeChartNotFound) {
		t.Error("Is() = true for plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidStyle, "no such style")
	outer := fmt.Errorf("render failed: %w", inner)

	if !Is(outer, ErrCodeInvalidStyle) {
		t.Error("Is() should see through fmt.Errorf wrapping")
	}
	if GetCode(outer) != ErrCodeInvalidStyle {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeInvalidStyle)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format webp")
	if got := UserMessage(err); got != "unknown format webp" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}

	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage() = %q, want %q", got, "boom")
	}
}
