package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Ada  \n"), &out)

	got, err := p.ReadLine("First name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ada" {
		t.Errorf("got %q, want trimmed input", got)
	}
	if !strings.Contains(out.String(), "First name: ") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	_, err := p.ReadLine("anything")
	if !errors.Is(err, io.EOF) {
		t.Errorf("want io.EOF, got %v", err)
	}
}

func TestAsk_RepromptsOnValidationError(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("robot\nfemale\n"), &out)

	got, err := Ask(p, "Gender", Gender)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "female" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(out.String(), "invalid gender") {
		t.Errorf("validation failure not echoed: %q", out.String())
	}
}

func TestAsk_EOFPropagates(t *testing.T) {
	p := NewPrompter(strings.NewReader("robot\n"), io.Discard)
	_, err := Ask(p, "Gender", Gender)
	if !errors.Is(err, io.EOF) {
		t.Errorf("want io.EOF after input runs out, got %v", err)
	}
}

func TestAskOptional_EmptyMeansNil(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), io.Discard)
	got, err := AskOptional(p, "Birth date", Date("2006-01-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestAskOptional_ValueParsed(t *testing.T) {
	p := NewPrompter(strings.NewReader("1815-12-10\n"), io.Discard)
	got, err := AskOptional(p, "Birth date", Date("2006-01-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Year != 1815 {
		t.Errorf("got %v", got)
	}
}
