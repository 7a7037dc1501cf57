package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add Buy milk", TypeAdd},
		{"ADD walk the dog", TypeAdd},
		{"toggle 1739102400000", TypeToggle},
		{"done #12", TypeToggle},
		{"/delete 5", TypeDelete},
		{"rm 5", TypeDelete},
		{"del 5", TypeDelete},
		{"clear", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeepsInnerSpacing(t *testing.T) {
	cmd, err := Parse("/add   pay  rent  ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add == nil || cmd.Add.Text != "pay  rent" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}
}

func TestParseTargetID(t *testing.T) {
	cmd, err := Parse("toggle #42")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Target == nil || cmd.Target.ID != 42 {
		t.Fatalf("unexpected target: %+v", cmd.Target)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"add    ", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"delete abc", ErrCodeInvalidArgument},
		{"delete -3", ErrCodeInvalidArgument},
		{"toggle 1 2", ErrCodeInvalidArgument},
		{"clear now", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteTargetAndClear(t *testing.T) {
	var toggled, deleted int64
	cleared := false
	handlers := Handlers{
		Toggle: func(a TargetArgs) (Result, error) { toggled = a.ID; return Result{}, nil },
		Delete: func(a TargetArgs) (Result, error) { deleted = a.ID; return Result{}, nil },
		Clear:  func() (Result, error) { cleared = true; return Result{}, nil },
	}
	for _, in := range []string{"toggle 7", "rm 9", "clear"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if _, err := Execute(cmd, handlers); err != nil {
			t.Fatalf("execute %q: %v", in, err)
		}
	}
	if toggled != 7 || deleted != 9 || !cleared {
		t.Fatalf("unexpected dispatch: toggled=%d deleted=%d cleared=%v", toggled, deleted, cleared)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
