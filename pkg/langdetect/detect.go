// Package langdetect maps free text to a locale tag. It is a lightweight
// stopword heuristic: the LLM's detected_language takes precedence when
// present, and per-participant overrides beat both.
package langdetect

import (
	"strings"

	"golang.org/x/text/language"
)

// Fallback is used when no signal is available.
var Fallback = language.English

// stopwords per candidate language. Short, high-frequency function words
// that rarely appear across languages.
var stopwords = map[language.Tag][]string{
	language.German:  {"der", "die", "das", "und", "ich", "nicht", "ist", "mit", "für", "bitte", "meine", "bestellung", "wurde", "haben", "können"},
	language.English: {"the", "and", "for", "with", "have", "this", "order", "please", "would", "could", "not", "was"},
	language.French:  {"le", "la", "les", "et", "je", "pas", "est", "avec", "pour", "bonjour", "commande", "merci"},
	language.Spanish: {"el", "la", "los", "y", "no", "es", "con", "para", "pedido", "gracias", "hola", "por"},
	language.Italian: {"il", "la", "e", "non", "per", "con", "ordine", "grazie", "sono", "della"},
	language.Dutch:   {"de", "het", "een", "en", "niet", "met", "voor", "bestelling", "graag", "ik"},
}

// Detect returns the most plausible locale tag for the given text.
func Detect(text string) language.Tag {
	if strings.TrimSpace(text) == "" {
		return Fallback
	}

	words := tokenize(text)
	if len(words) == 0 {
		return Fallback
	}

	best := Fallback
	bestScore := 0
	for tag, list := range stopwords {
		score := 0
		for _, sw := range list {
			if _, ok := words[sw]; ok {
				score++
			}
		}
		if score > bestScore {
			best = tag
			bestScore = score
		}
	}

	// Require at least two hits before trusting the heuristic.
	if bestScore < 2 {
		return Fallback
	}
	return best
}

// Normalize parses an arbitrary tag string ("de", "de-DE", "german") into a
// canonical base tag, falling back to English.
func Normalize(tag string) language.Tag {
	if tag == "" {
		return Fallback
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		switch strings.ToLower(tag) {
		case "german", "deutsch":
			return language.German
		case "english":
			return language.English
		default:
			return Fallback
		}
	}
	base, _ := parsed.Base()
	normalized, err := language.Parse(base.String())
	if err != nil {
		return Fallback
	}
	return normalized
}

func tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:()[]\"'")
		if w != "" {
			words[w] = struct{}{}
		}
	}
	return words
}
