package render

import (
	"bytes"
	"context"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPDF, FormatPNG, FormatDOT} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error: %v", f, err)
		}
	}
	if err := ValidateFormat("gif"); err == nil {
		t.Error("ValidateFormat(gif) succeeded, want error")
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	svg := []byte("<svg/>")
	out, err := Convert(context.Background(), svg, FormatSVG, 1)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if !bytes.Equal(out, svg) {
		t.Errorf("Convert(svg) = %s, want %s", out, svg)
	}
}

func TestConvertUnsupported(t *testing.T) {
	if _, err := Convert(context.Background(), nil, FormatDOT, 1); err == nil {
		t.Error("Convert to dot succeeded, want error")
	}
}
