package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidLanguageCode(t *testing.T) {
	for _, code := range []string{"ur", "fr", "zh-cn", "en"} {
		if !ValidLanguageCode(code) {
			t.Errorf("%q should be a valid target", code)
		}
	}
	for _, code := range []string{"", "xx", "FR", "english"} {
		if ValidLanguageCode(code) {
			t.Errorf("%q should not be a valid target", code)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("ur"); got != "urdu" {
		t.Errorf("LanguageName(ur) = %q", got)
	}
	// Detected source languages outside the table fall back to the code.
	if got := LanguageName("tlh"); got != "tlh" {
		t.Errorf("LanguageName(tlh) = %q", got)
	}
}

func TestTranslateParsesSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "ur" {
			t.Errorf("tl = %q, want ur", got)
		}
		if got := r.URL.Query().Get("sl"); got != "auto" {
			t.Errorf("sl = %q, want auto", got)
		}
		// Two segments plus detected source language.
		w.Write([]byte(`[[["سلام، ","Hello, ",null,null],["دنیا","world",null,null]],null,"en"]`))
	}))
	defer server.Close()

	ts := NewTranslationService()
	ts.baseURL = server.URL

	translation, err := ts.Translate("Hello, world", "ur")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if translation.TranslatedText != "سلام، دنیا" {
		t.Errorf("translated = %q", translation.TranslatedText)
	}
	if translation.SourceLanguage != "english" {
		t.Errorf("source = %q, want english", translation.SourceLanguage)
	}
	if translation.TargetLanguage != "urdu" {
		t.Errorf("target = %q, want urdu", translation.TargetLanguage)
	}
}

func TestTranslateUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ts := NewTranslationService()
	ts.baseURL = server.URL

	if _, err := ts.Translate("Hello", "fr"); err == nil {
		t.Fatal("expected an error on upstream failure")
	}
}
