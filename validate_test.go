package reportpdf

import (
	"bytes"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsNUL(t *testing.T) {
	data := append([]byte(`{"id":"x"}`), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavy(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 'a'}, 64)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsJSON(t *testing.T) {
	data := []byte("{\n\t\"id\": \"rep-1\",\n\t\"summary\": \"ok\"\n}\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}
