package pipeline

import (
	"errors"
	"fmt"
)

// Stage identifies one step of the pipeline.
type Stage int

const (
	StageSearch Stage = iota
	StagePlan
	StageDraft
	StageImages
	StageReview
	StageFormat
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageSearch, StagePlan, StageDraft, StageImages, StageReview, StageFormat}

func (s Stage) String() string {
	switch s {
	case StageSearch:
		return "search"
	case StagePlan:
		return "plan"
	case StageDraft:
		return "draft"
	case StageImages:
		return "images"
	case StageReview:
		return "review"
	case StageFormat:
		return "format"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Progress is the label printed before the stage runs.
func (s Stage) Progress() string {
	switch s {
	case StageSearch:
		return " 🔍 Buscando lançamentos relevantes..."
	case StagePlan:
		return " ✍️ Planejando o post..."
	case StageDraft:
		return " 📝 Redigindo o rascunho do post..."
	case StageImages:
		return " 🖼️ Buscando imagens relevantes..."
	case StageReview:
		return " 🧐 Revisando o rascunho..."
	case StageFormat:
		return " ✨ Formatando o post com imagens..."
	default:
		return s.String()
	}
}

// Heading introduces the stage output.
func (s Stage) Heading() string {
	switch s {
	case StageSearch:
		return "Lançamentos encontrados:"
	case StagePlan:
		return "Plano do post:"
	case StageDraft:
		return "Rascunho do post:"
	case StageImages:
		return "Imagens encontradas:"
	case StageReview:
		return "Revisão do post:"
	case StageFormat:
		return "Post formatado (em Markdown):"
	default:
		return s.String()
	}
}

// ErrEmptyOutput is reported when a stage returns only whitespace.
var ErrEmptyOutput = errors.New("empty output")

// StageError ties a failure to the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("stage %s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }
