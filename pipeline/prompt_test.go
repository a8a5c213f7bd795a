package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testDate = time.Date(2025, time.May, 7, 10, 0, 0, 0, time.UTC)

func TestSearchPrompt_WithoutLinks(t *testing.T) {
	got := SearchPrompt("tênis esportivo", testDate, nil)

	assert.Equal(t, "Tópico: tênis esportivo\nData de hoje: 07/05/2025", got)
	assert.NotContains(t, got, "Links de produtos")
}

func TestSearchPrompt_WithLinks(t *testing.T) {
	got := SearchPrompt("tênis", testDate, []string{"https://a.example/1", "https://b.example/2"})

	assert.Equal(t, "Tópico: tênis\nData de hoje: 07/05/2025\nLinks de produtos de referência: https://a.example/1, https://b.example/2", got)
}

func TestSearchPrompt_NoEscaping(t *testing.T) {
	got := SearchPrompt(`camisa "polo" & <bermuda>`, testDate, nil)
	assert.Contains(t, got, `camisa "polo" & <bermuda>`)
}

func TestDownstreamPrompts(t *testing.T) {
	assert.Equal(t, "Tópico:moda\nLançamentos buscados: L", PlanPrompt("moda", "L"))
	assert.Equal(t, "Tópico: moda\nPlano de post: P", DraftPrompt("moda", "P"))
	assert.Equal(t, "Tópico: moda\nRascunho do post: D", ImagesPrompt("moda", "D"))
	assert.Equal(t, "Tópico: moda\nRascunho: D", ReviewPrompt("moda", "D"))
	assert.Equal(t, "Rascunho do Post:\nD\n\nImagens Encontradas:\nI", FormatPrompt("D", "I"))
}

func TestParseLinks(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
		{"a, ,b", []string{"a", "b"}},
		{"https://loja.example/p?x=1", []string{"https://loja.example/p?x=1"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLinks(tt.in), tt.in)
	}
}
