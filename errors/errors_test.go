package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_WithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Connection("cannot connect %q to %q", "a.out", "b.in").WithCause(cause)

	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestError_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{Connection("no compatible sockets"), ErrCodeConnection},
		{AlreadyExists("adder"), ErrCodeAlreadyExists},
		{NotFound("component", "ghost"), ErrCodeNotFound},
		{MaxLoops("numbers", "loop", 3), ErrCodeMaxLoops},
		{Runtime("broken", "returned int, expected map"), ErrCodeRuntime},
		{InvalidInput("unknown socket %q", "nope"), ErrCodeInvalidInput},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.code {
			t.Errorf("CodeOf(%v) = %q, want %q", c.err, got, c.code)
		}
	}
}

func TestError_CodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("running pipeline: %w", MaxLoops("p", "c", 1))
	if !IsMaxLoops(err) {
		t.Fatal("expected IsMaxLoops to see through wrapping")
	}
	if IsRuntime(err) {
		t.Fatal("did not expect IsRuntime")
	}
}

func TestError_CodeOfForeign(t *testing.T) {
	if CodeOf(stderrors.New("plain")) != "" {
		t.Fatal("expected empty code for non-pipeline error")
	}
}

func TestMaxLoops_Message(t *testing.T) {
	err := MaxLoops("rag", "retriever", 5)
	if !strings.Contains(err.Error(), "rag") || !strings.Contains(err.Error(), "retriever") {
		t.Fatalf("expected pipeline and component in message, got %q", err.Error())
	}
	if err.Details["max_loops_allowed"] != 5 {
		t.Fatalf("expected max_loops_allowed detail, got %v", err.Details)
	}
}
