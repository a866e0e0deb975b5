package udns

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeError_ArrayBody(t *testing.T) {
	body := []byte(`[{"errorCode":1801,"errorMessage":"Zone does not exist in the system."}]`)
	err := decodeError(404, body)

	if !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
	if got, want := err.Error(), "Zone does not exist in the system."; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeError_ObjectBody(t *testing.T) {
	body := []byte(`{"errorCode":1802,"errorMessage":"Zone already exists in the system."}`)
	err := decodeError(400, body)

	if !errors.Is(err, ErrZoneAlreadyExists) {
		t.Errorf("expected ErrZoneAlreadyExists, got %v", err)
	}
}

func TestDecodeError_NonJSONBody(t *testing.T) {
	err := decodeError(504, []byte(""))

	if !errors.Is(err, ErrHTTPLevel) {
		t.Errorf("expected HTTP-level error, got %v", err)
	}
	want := "HTTP-level error. HTTP code: 504; response body: "
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeError_HTMLBody(t *testing.T) {
	err := decodeError(502, []byte("<html>Bad Gateway</html>"))

	if !errors.Is(err, ErrHTTPLevel) {
		t.Errorf("expected HTTP-level error, got %v", err)
	}
	want := "HTTP-level error. HTTP code: 502; response body: <html>Bad Gateway</html>"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecodeError_CodeMapping(t *testing.T) {
	cases := []struct {
		code int
		want *Error
	}{
		{1801, ErrZoneNotFound},
		{1802, ErrZoneAlreadyExists},
		{8001, ErrPermissionDenied},
		{2111, ErrRecordAlreadyExists},
		{70002, ErrRecordsNotFound},
		{56001, ErrRecordsNotFound},
	}
	for _, tc := range cases {
		body := []byte(`{"errorCode":` + strconv.Itoa(tc.code) + `,"errorMessage":"boom"}`)
		err := decodeError(400, body)
		if !errors.Is(err, tc.want) {
			t.Errorf("code %d: expected %v, got %v", tc.code, tc.want, err)
		}
	}
}

func TestDecodeError_UnmappedCode(t *testing.T) {
	body := []byte(`{"errorCode":9999,"errorMessage":"something odd"}`)
	err := decodeError(400, body)

	if got, want := err.Error(), "9999: something odd"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if errors.Is(err, ErrZoneNotFound) || errors.Is(err, ErrHTTPLevel) {
		t.Errorf("unmapped code matched a mapped sentinel: %v", err)
	}
}

func TestDecodeBatchError_Messages(t *testing.T) {
	body := []byte(`{"errors":[
		{"errorCode":1802,"errorMessage":"first failed"},
		{"errorCode":2111,"errorMessage":"second failed"}
	]}`)
	err := decodeBatchError(400, body)

	var txErr *TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected *TransactionError, got %T", err)
	}
	want := []string{"first failed", "second failed"}
	if diff := cmp.Diff(want, txErr.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if got := txErr.Error(); got != "first failed, second failed" {
		t.Errorf("unexpected error string %q", got)
	}
}

func TestDecodeBatchError_FallsBackWithoutErrorsArray(t *testing.T) {
	body := []byte(`{"errorCode":8001,"errorMessage":"denied"}`)
	err := decodeBatchError(403, body)

	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected fallback to plain decoding, got %v", err)
	}
}
