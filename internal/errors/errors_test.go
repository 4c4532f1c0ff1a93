package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "render error",
			code:    "E101",
			wantMsg: "Host view rejected batch update",
			wantCat: CategoryRender,
		},
		{
			name:    "dispatch error",
			code:    "E202",
			wantMsg: "Action handler panicked",
			wantCat: CategoryDispatch,
		},
		{
			name:    "fixture error",
			code:    "E301",
			wantMsg: "Cannot read snapshot file",
			wantCat: CategoryFixture,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "tree.yaml")
	if err.Message != `file "tree.yaml" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "tree.yaml" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestError_Error(t *testing.T) {
	err := New("E102")
	if got, want := err.Error(), "E102: Coordinate out of bounds"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err2 := &Error{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}

	wrapped := New("E101").Wrap(fmt.Errorf("count mismatch"))
	if got, want := wrapped.Error(), "E101: Host view rejected batch update: count mismatch"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("E101").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	outer := fmt.Errorf("render: %w", err)
	if !HasCode(outer, "E101") {
		t.Error("HasCode should see through fmt wrapping")
	}
	if HasCode(outer, "E102") {
		t.Error("HasCode matched the wrong code")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E101") != nil {
		t.Error("FromError(nil) should return nil")
	}

	coded := New("E103")
	if got := FromError(fmt.Errorf("wrap: %w", coded), "E101"); got != coded {
		t.Errorf("FromError should return the existing coded error, got %v", got)
	}

	plain := stderrors.New("plain")
	got := FromError(plain, "E301")
	if got.Code != "E301" || got.Wrapped != plain {
		t.Errorf("FromError = %+v, want E301 wrapping plain", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E104").WithSuggestion("Give each row a stable ID()")
	out := err.Format()

	for _, want := range []string{"ERROR E104: Duplicate identifiers", "Hint: Give each row a stable ID()", "Learn more: https://carbon.vango.dev/docs/errors/E104"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("Fprint plain = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("ctx: %w", New("E401")))
	if !strings.Contains(buf.String(), "E401: Unknown output format") {
		t.Errorf("Fprint coded = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 9)
	for _, l := range lines {
		if len(l) > 9 {
			t.Errorf("line %q longer than 9", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
}
