// Package i18n holds the localized presentation strings. The selected
// language affects display text only, never computation.
package i18n

import "fmt"

// Language selects the presentation language
type Language string

const (
	LangEN Language = "en"
	LangPT Language = "pt"
)

// Parse normalizes a language code, defaulting to English
func Parse(code string) Language {
	if code == string(LangPT) {
		return LangPT
	}
	return LangEN
}

var messages = map[string]map[Language]string{
	"title": {
		LangEN: "Magic Formula - B3 Ranked Analysis",
		LangPT: "Fórmula Mágica - Análise Ranqueada B3",
	},
	"formula": {
		LangEN: "Magic Formula Score = (Earnings Yield) + (Return on Capital) * 0.33",
		LangPT: "Pontuação Fórmula Mágica = (Earnings Yield) + (Return on Capital) * 0,33",
	},
	"table_header": {
		LangEN: "Ranked Results (All Tickers)",
		LangPT: "Resultados Rankeados (Todas as Ações)",
	},
	"no_data": {
		LangEN: "No data to display. Trigger a run to begin.",
		LangPT: "Nenhum dado para exibir. Execute uma análise para começar.",
	},
	"ticker_counter": {
		LangEN: "Showing %d stocks",
		LangPT: "Exibindo %d ações",
	},
	"fetch_summary": {
		LangEN: "Fetched %d tickers, %d with negative/zero, %d failed.",
		LangPT: "Buscou %d ações, %d negativas/zero, %d falharam.",
	},
}

// T returns the message for a key in the given language. Unknown keys
// come back as the key itself so a typo is visible instead of silent.
func T(lang Language, key string) string {
	byLang, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := byLang[lang]; ok {
		return msg
	}
	return byLang[LangEN]
}

// Summary renders the localized run summary line
func Summary(lang Language, ok, neg, failed int) string {
	return fmt.Sprintf(T(lang, "fetch_summary"), ok, neg, failed)
}

// TickerCounter renders the localized row-count line
func TickerCounter(lang Language, n int) string {
	return fmt.Sprintf(T(lang, "ticker_counter"), n)
}
