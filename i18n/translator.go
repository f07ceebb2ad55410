package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_default":
			return "デフォルト値がスキーマの型と一致しません"
		case "already_set":
			return withKey("既に設定されています", data)
		case "schema_mismatch":
			return withExpected("スキーマが論理型と一致しません", data)
		case "parse_error":
			return "解析エラー"
		case "overflow":
			return "値が範囲外です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_default":
			return "default value does not match schema type"
		case "already_set":
			return withKey("has already been set", data)
		case "schema_mismatch":
			return withExpected("schema does not match logical type", data)
		case "parse_error":
			return "parse error"
		case "overflow":
			return "value out of range"
		}
	}
	return code
}

func withKey(msg string, data map[string]string) string {
	if k := data["key"]; k != "" {
		return k + ": " + msg
	}
	return msg
}

func withExpected(msg string, data map[string]string) string {
	if e := data["expected"]; e != "" {
		return msg + " " + e
	}
	return msg
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
