// Package gemini provides an implementation of model.Model on top of the
// Google Gen AI SDK. Web search requests are served by Gemini's native Google
// Search grounding tool.
package gemini

import (
	"context"
	"fmt"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/model"
	"google.golang.org/genai"
)

// DefaultModel is the model id used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Options configures the Gemini model adapter.
type Options struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	APIKey          string
}

// Model wraps the Gemini generate content API behind the generic model.Model interface.
type Model struct {
	client *genai.Client
	opts   Options
}

func defaultOptions() Options {
	return Options{
		Model:           DefaultModel,
		Temperature:     0.7,
		MaxOutputTokens: 8192,
	}
}

// NewModel creates a Gemini model backed by the Gemini API. An empty APIKey
// lets the SDK fall back to GOOGLE_API_KEY / GEMINI_API_KEY.
func NewModel(ctx context.Context, optFns ...func(o *Options)) (*Model, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Model{client: client, opts: opts}, nil
}

// NewModelFromClient creates a Gemini model from an existing client.
func NewModelFromClient(client *genai.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Generate implements unified streaming / non-streaming generation.
func (m *Model) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	out := make(chan model.Response, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		contents := buildContents(req.Contents)
		if len(contents) == 0 {
			errCh <- fmt.Errorf("no contents provided")
			return
		}
		config := m.buildConfig(req)

		if req.Stream {
			m.handleStreaming(ctx, contents, config, out, errCh)
			return
		}

		resp, err := m.client.Models.GenerateContent(ctx, m.opts.Model, contents, config)
		if err != nil {
			errCh <- fmt.Errorf("gemini api error: %w", err)
			return
		}
		parts, finish := responseParts(resp)
		out <- model.Response{
			ID:           resp.ResponseID,
			Content:      core.Content{Role: "assistant", Parts: parts},
			FinishReason: finish,
			Usage:        usage(resp),
		}
	}()

	return out, errCh
}

func (m *Model) handleStreaming(
	ctx context.Context,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	out chan<- model.Response,
	errCh chan<- error,
) {
	var (
		acc    streamAccumulator
		finish string
		last   *genai.GenerateContentResponse
	)
	for resp, err := range m.client.Models.GenerateContentStream(ctx, m.opts.Model, contents, config) {
		if err != nil {
			errCh <- fmt.Errorf("gemini streaming error: %w", err)
			return
		}
		last = resp
		parts, fr := responseParts(resp)
		if fr != "" {
			finish = fr
		}
		if len(parts) == 0 {
			continue
		}
		acc.add(parts)
		out <- model.Response{ID: resp.ResponseID, Partial: true, Content: core.Content{Role: "assistant", Parts: parts}}
	}

	final := model.Response{
		Content:      core.Content{Role: "assistant", Parts: acc.parts()},
		FinishReason: finish,
	}
	if last != nil {
		final.ID = last.ResponseID
		final.Usage = usage(last)
	}
	out <- final
}

// buildContents maps blogmesh contents onto Gemini roles. System contents are
// carried by the request config instead.
func buildContents(contents []core.Content) []*genai.Content {
	var out []*genai.Content
	for _, c := range contents {
		text := c.Text()
		if text == "" {
			continue
		}
		switch c.Role {
		case "system":
			continue
		case "assistant":
			out = append(out, genai.NewContentFromText(text, genai.RoleModel))
		default:
			out = append(out, genai.NewContentFromText(text, genai.RoleUser))
		}
	}
	return out
}

func (m *Model) buildConfig(req model.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(m.opts.Temperature),
		MaxOutputTokens: m.opts.MaxOutputTokens,
	}
	if req.Instructions != "" {
		config.SystemInstruction = genai.NewContentFromText(req.Instructions, genai.RoleUser)
	}
	if req.HasTool(model.ToolTypeWebSearch) {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return config
}

// responseParts maps every non-thought text part of the first candidate to
// its own core.TextPart, keeping the part boundaries the API reported.
func responseParts(resp *genai.GenerateContentResponse) ([]core.Part, string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ""
	}
	cand := resp.Candidates[0]
	finish := string(cand.FinishReason)
	if cand.Content == nil {
		return nil, finish
	}
	var parts []core.Part
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		parts = append(parts, core.TextPart{Text: p.Text})
	}
	return parts, finish
}

// streamAccumulator rebuilds the final parts of a streamed response. A chunk
// boundary is not a part boundary: the first part of each chunk continues the
// last part seen so far, while further parts within the same chunk start new
// ones.
type streamAccumulator struct {
	texts []string
}

func (a *streamAccumulator) add(parts []core.Part) {
	for i, p := range parts {
		tp, ok := p.(core.TextPart)
		if !ok {
			continue
		}
		if i == 0 && len(a.texts) > 0 {
			a.texts[len(a.texts)-1] += tp.Text
			continue
		}
		a.texts = append(a.texts, tp.Text)
	}
}

func (a *streamAccumulator) parts() []core.Part {
	parts := make([]core.Part, 0, len(a.texts))
	for _, text := range a.texts {
		parts = append(parts, core.TextPart{Text: text})
	}
	return parts
}

func usage(resp *genai.GenerateContentResponse) *model.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &model.TokenUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
	}
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:           m.opts.Model,
		Provider:       "gemini",
		SupportsSearch: true,
	}
}
