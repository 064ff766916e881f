package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TranslationService translates text through the public Google Translate
// web endpoint (no API key).
type TranslationService struct {
	baseURL    string
	httpClient *http.Client
}

func NewTranslationService() *TranslationService {
	return &TranslationService{
		baseURL: "https://translate.googleapis.com/translate_a/single",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Languages maps supported target-language codes to display names. Target
// codes are validated against this set before any network call.
var Languages = map[string]string{
	"af": "afrikaans", "ar": "arabic", "bn": "bengali", "bs": "bosnian",
	"bg": "bulgarian", "ca": "catalan", "zh-cn": "chinese (simplified)",
	"zh-tw": "chinese (traditional)", "hr": "croatian", "cs": "czech",
	"da": "danish", "nl": "dutch", "en": "english", "et": "estonian",
	"fi": "finnish", "fr": "french", "de": "german", "el": "greek",
	"gu": "gujarati", "he": "hebrew", "hi": "hindi", "hu": "hungarian",
	"is": "icelandic", "id": "indonesian", "it": "italian", "ja": "japanese",
	"kn": "kannada", "kk": "kazakh", "ko": "korean", "lv": "latvian",
	"lt": "lithuanian", "ms": "malay", "ml": "malayalam", "mr": "marathi",
	"ne": "nepali", "no": "norwegian", "ps": "pashto", "fa": "persian",
	"pl": "polish", "pt": "portuguese", "pa": "punjabi", "ro": "romanian",
	"ru": "russian", "sr": "serbian", "sd": "sindhi", "si": "sinhala",
	"sk": "slovak", "sl": "slovenian", "es": "spanish", "sw": "swahili",
	"sv": "swedish", "ta": "tamil", "te": "telugu", "th": "thai",
	"tr": "turkish", "uk": "ukrainian", "ur": "urdu", "uz": "uzbek",
	"vi": "vietnamese", "cy": "welsh",
}

// ValidLanguageCode reports whether code is a known translation target.
func ValidLanguageCode(code string) bool {
	_, ok := Languages[code]
	return ok
}

// LanguageName returns the display name for a code, falling back to the
// code itself for auto-detected sources outside the table.
func LanguageName(code string) string {
	if name, ok := Languages[code]; ok {
		return name
	}
	return code
}

type Translation struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Translate sends text to the endpoint with source auto-detection.
func (ts *TranslationService) Translate(text, targetLanguage string) (*Translation, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLanguage)
	params.Set("dt", "t")
	params.Set("q", text)

	resp, err := ts.httpClient.Get(ts.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("translation service failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service failed: status %d", resp.StatusCode)
	}

	// Response shape: [[[translated, original, ...], ...], ..., detectedLang]
	var raw []interface{}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil, fmt.Errorf("could not parse translation response")
	}

	var translated string
	if segments, ok := raw[0].([]interface{}); ok {
		for _, seg := range segments {
			if pair, ok := seg.([]interface{}); ok && len(pair) > 0 {
				if s, ok := pair[0].(string); ok {
					translated += s
				}
			}
		}
	}
	if translated == "" {
		return nil, fmt.Errorf("could not parse translation response")
	}

	source := "auto"
	if len(raw) > 2 {
		if s, ok := raw[2].(string); ok {
			source = s
		}
	}

	return &Translation{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: LanguageName(source),
		TargetLanguage: LanguageName(targetLanguage),
	}, nil
}
