package pipeline

import (
	"strings"
	"text/template"
	"time"

	"github.com/hupe1980/blogmesh/internal/util"
)

// DateLayout renders dates as dd/mm/yyyy.
const DateLayout = "02/01/2006"

var (
	searchPrompt = util.MustParse("search", "Tópico: {{.Topic}}\nData de hoje: {{.Date}}"+
		"{{if .Links}}\nLinks de produtos de referência: {{join \", \" .Links}}{{end}}")
	planPrompt   = util.MustParse("plan", "Tópico:{{.Topic}}\nLançamentos buscados: {{.Launches}}")
	draftPrompt  = util.MustParse("draft", "Tópico: {{.Topic}}\nPlano de post: {{.Plan}}")
	imagesPrompt = util.MustParse("images", "Tópico: {{.Topic}}\nRascunho do post: {{.Draft}}")
	reviewPrompt = util.MustParse("review", "Tópico: {{.Topic}}\nRascunho: {{.Draft}}")
	formatPrompt = util.MustParse("format", "Rascunho do Post:\n{{.Draft}}\n\nImagens Encontradas:\n{{.Images}}")
)

func render(tmpl *template.Template, data any) string {
	var b strings.Builder
	// Templates are fixed and their data are plain strings, so execution cannot fail.
	if err := tmpl.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}

// SearchPrompt builds the launch search prompt. The reference link line is
// present only when links is non-empty.
func SearchPrompt(topic string, date time.Time, links []string) string {
	return render(searchPrompt, struct {
		Topic, Date string
		Links       []string
	}{topic, date.Format(DateLayout), links})
}

// PlanPrompt builds the planning prompt.
func PlanPrompt(topic, launches string) string {
	return render(planPrompt, struct{ Topic, Launches string }{topic, launches})
}

// DraftPrompt builds the drafting prompt.
func DraftPrompt(topic, plan string) string {
	return render(draftPrompt, struct{ Topic, Plan string }{topic, plan})
}

// ImagesPrompt builds the image search prompt.
func ImagesPrompt(topic, draft string) string {
	return render(imagesPrompt, struct{ Topic, Draft string }{topic, draft})
}

// ReviewPrompt builds the review prompt.
func ReviewPrompt(topic, draft string) string {
	return render(reviewPrompt, struct{ Topic, Draft string }{topic, draft})
}

// FormatPrompt builds the formatting prompt.
func FormatPrompt(draft, images string) string {
	return render(formatPrompt, struct{ Draft, Images string }{draft, images})
}

// ParseLinks splits a comma-separated list and trims each entry. Empty
// entries are dropped rather than kept as blank links, so "a,,b" gives [a b]
// and a whitespace-only line yields no links.
func ParseLinks(line string) []string {
	var links []string
	for _, l := range strings.Split(line, ",") {
		if l = strings.TrimSpace(l); l != "" {
			links = append(links, l)
		}
	}
	return links
}
