package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	cases := map[ErrorCode]int{
		ErrorCodeUnknown:         http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeTooManyRequests: http.StatusTooManyRequests,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeUnauthorized:    http.StatusUnauthorized,
		ErrorCodeForbidden:       http.StatusForbidden,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCode(500):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	t.Parallel()

	if ErrorCodeDuplicateKey.String() != "duplicate_key" {
		t.Fatalf("got %q", ErrorCodeDuplicateKey.String())
	}
	if ErrorCode(77).String() != "code(77)" {
		t.Fatalf("got %q", ErrorCode(77).String())
	}
}

func TestErrorRendering(t *testing.T) {
	t.Parallel()

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	cause := stderrs.New("connection reset")
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"new", New(ErrorCodeValidation, "bad mood"), "bad mood"},
		{"newf", Newf(ErrorCodeJSON, "field %d", 3), "field 3"},
		{"wrap", Wrap(cause, ErrorCodeDB, "insert reflection"), "insert reflection: connection reset"},
		{"wrapf", Wrapf(cause, ErrorCodeDB, "load %s", "pool"), "load pool: connection reset"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := c.err.Error(); got != c.want {
				t.Fatalf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestChainHelpers(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeUnavailable, "read latest event")

	if !stderrs.Is(err, cause) {
		t.Fatalf("errors.Is lost the cause")
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
	if !IsCode(err, ErrorCodeUnavailable) || HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("code/status mismatch")
	}
	if CodeOf(cause) != ErrorCodeUnknown {
		t.Fatalf("foreign errors are Unknown")
	}
	if _, ok := As(cause); ok {
		t.Fatalf("As matched a foreign error")
	}
}

func TestWithFieldAndOp_CopyOnWrite(t *testing.T) {
	t.Parallel()

	base := New(ErrorCodeValidation, "invalid")
	tagged := WithOp(WithField(base, "mood"), "reflections.create")

	e, _ := As(tagged)
	if e.Field() != "mood" || e.Op() != "reflections.create" {
		t.Fatalf("field/op = %q/%q", e.Field(), e.Op())
	}
	orig, _ := As(base)
	if orig.Field() != "" || orig.Op() != "" {
		t.Fatalf("original mutated")
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("foreign errors must pass through")
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	w := WireFrom(WithField(Wrap(stderrs.New("secret detail"), ErrorCodeValidation, "bad input"), "mood"))
	if w.Code != ErrorCodeValidation || w.Message != "bad input" || w.Field != "mood" {
		t.Fatalf("wire = %+v", w)
	}
	if w := WireFrom(stderrs.New("x")); w.Code != ErrorCodeUnknown || w.Message != "x" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestSugarCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("reflection %s", "r1"), ErrorCodeNotFound},
		{InvalidArgf("limit"), ErrorCodeInvalidArgument},
		{Validationf("mood"), ErrorCodeValidation},
		{JSONErrf("body"), ErrorCodeJSON},
		{PanicErrf("boom"), ErrorCodePanic},
		{Unauthorizedf("token"), ErrorCodeUnauthorized},
		{Forbiddenf("owner"), ErrorCodeForbidden},
		{Conflictf("dup"), ErrorCodeConflict},
		{Unavailablef("pg"), ErrorCodeUnavailable},
		{DBf("q"), ErrorCodeDB},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("%v: code %s, want %s", c.err, CodeOf(c.err), c.code)
		}
	}
	if CodeOf(ErrNotFound) != ErrorCodeNotFound {
		t.Fatalf("ErrNotFound code")
	}
}
