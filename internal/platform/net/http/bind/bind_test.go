package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "github.com/promptandpause/promptandpause-sub003/internal/platform/errors"
)

type entryIn struct {
	Prompt string `json:"prompt_text" validate:"required,max=10"`
	Words  int    `json:"words" validate:"min=1"`
	Tone   string `json:"tone,omitempty" validate:"omitempty,tone"`
}

func init() {
	_ = RegisterValidation("tone", func(fl FieldLevel) bool {
		return fl.Field().String() == "soft" || fl.Field().String() == "loud"
	}, "{0} must be soft or loud")
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	t.Parallel()

	got, err := ParseJSON[entryIn](post(`{"prompt_text":"why","words":3,"tone":"soft"}`))
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.Prompt != "why" || got.Words != 3 || got.Tone != "soft" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		opts    []JSONOptions
		code    perr.ErrorCode
		field   string
		msgPart string
	}{
		{"empty", ``, nil, perr.ErrorCodeJSON, "", "empty body"},
		{"broken", `{"prompt_text":`, nil, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"prompt_text":"a","words":1,"x":1}`, nil, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{"prompt_text":"a","words":1} {}`, nil, perr.ErrorCodeJSON, "", "trailing"},
		{"too big", `{"prompt_text":"aaaaaaaa","words":1}`, []JSONOptions{{MaxBytes: 8}}, perr.ErrorCodeJSON, "", "exceeds"},
		{"required", `{"words":1}`, nil, perr.ErrorCodeValidation, "prompt_text", "required"},
		{"max", `{"prompt_text":"abcdefghijk","words":1}`, nil, perr.ErrorCodeValidation, "prompt_text", "at most 10"},
		{"min", `{"prompt_text":"a","words":0}`, nil, perr.ErrorCodeValidation, "words", "at least 1"},
		{"custom tag", `{"prompt_text":"a","words":1,"tone":"flat"}`, nil, perr.ErrorCodeValidation, "tone", "soft or loud"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseJSON[entryIn](post(c.body), c.opts...)
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %s, want %s (%v)", perr.CodeOf(err), c.code, err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
			if !strings.Contains(err.Error(), c.msgPart) {
				t.Fatalf("message %q lacks %q", err.Error(), c.msgPart)
			}
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	t.Parallel()

	type loose struct {
		Note string `json:"note"`
	}
	got, err := ParseJSON[loose](post(``), JSONOptions{AllowEmptyBody: true})
	if err != nil || got != (loose{}) {
		t.Fatalf("empty allowed: %+v %v", got, err)
	}
	got, err = ParseJSON[loose](post(`{"note":"n","extra":true}`), JSONOptions{AllowUnknown: true})
	if err != nil || got.Note != "n" {
		t.Fatalf("unknown allowed: %+v %v", got, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = nil
	if _, err := ParseJSON[loose](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("nil body: %v", err)
	}
}

func TestFieldAndMessage(t *testing.T) {
	t.Parallel()

	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil = %q %q", f, m)
	}
	if _, m := FieldAndMessage(perr.Internalf("x")); m != "x" {
		t.Fatalf("foreign = %q", m)
	}
	if err := Struct(42); !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("non struct: %v", err)
	}
}
