package langparse_test

import (
	"errors"
	"testing"

	"github.com/codelens-dev/codeintel-core/internal/langparse"
)

func TestDetectLanguage_KnownAndUnknownExtensions(t *testing.T) {
	cases := map[string]langparse.Language{
		"a.ts":    langparse.LangTypeScript,
		"a.tsx":   langparse.LangTypeScript,
		"a.js":    langparse.LangJavaScript,
		"a.jsx":   langparse.LangJavaScript,
		"a.mjs":   langparse.LangJavaScript,
		"a.py":    langparse.LangPython,
		"a.weird": langparse.LangJavaScript,
	}
	for path, want := range cases {
		if got := langparse.DetectLanguage(path); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParse_UnregisteredLanguageReturnsErrUnsupportedLanguage(t *testing.T) {
	p := langparse.New()
	defer p.Close()

	_, err := p.Parse([]byte("print('hi')"), langparse.LangPython, "a.py")
	if err == nil {
		t.Fatalf("expected an error parsing an unregistered language")
	}
	var unsupported *langparse.ErrUnsupportedLanguage
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *ErrUnsupportedLanguage, got %T: %v", err, err)
	}
}

func TestParse_ValidTypeScriptHasNoErrors(t *testing.T) {
	p := langparse.New()
	defer p.Close()

	result, err := p.Parse([]byte("const x: number = 1;"), langparse.LangTypeScript, "a.ts")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.HasErrors {
		t.Fatalf("expected no syntax errors, got ratio %v", result.ErrorRatio)
	}
}

func TestParse_TSXExtensionUsesDistinctGrammarButSameLanguageTag(t *testing.T) {
	p := langparse.New()
	defer p.Close()

	result, err := p.Parse([]byte("const el = <div />;"), langparse.LangTypeScript, "a.tsx")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if result.HasErrors {
		t.Fatalf("expected TSX syntax to parse cleanly, got ratio %v", result.ErrorRatio)
	}
}
