package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want language.Tag
	}{
		{
			name: "german customer mail",
			text: "Guten Tag, meine Bestellung ist nicht angekommen und ich habe keine Antwort erhalten. Bitte helfen Sie mir.",
			want: language.German,
		},
		{
			name: "english customer mail",
			text: "Hello, I placed an order last week and it still has not arrived. Please could you check the status?",
			want: language.English,
		},
		{
			name: "french customer mail",
			text: "Bonjour, je n'ai pas reçu ma commande. Merci de vérifier avec le transporteur.",
			want: language.French,
		},
		{
			name: "empty text falls back",
			text: "   ",
			want: Fallback,
		},
		{
			name: "single weak hit falls back",
			text: "ok die",
			want: Fallback,
		},
		{
			name: "numbers only fall back",
			text: "123-4567890-1234567",
			want: Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"de", language.German},
		{"de-DE", language.German},
		{"en-US", language.English},
		{"german", language.German},
		{"Deutsch", language.German},
		{"english", language.English},
		{"", Fallback},
		{"klingon!!", Fallback},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
