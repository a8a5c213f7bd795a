package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/blogmesh/config"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoker struct {
	prompts []string
	fail    pipeline.Stage
	failErr error
}

func (s *stubInvoker) Invoke(_ context.Context, spec pipeline.AgentSpec, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.failErr != nil && spec.Stage == s.fail {
		return "", s.failErr
	}
	return fmt.Sprintf("STUB%d", len(s.prompts)), nil
}

type harness struct {
	stdout, stderr bytes.Buffer
	invoker        *stubInvoker
	factoryCalls   int
}

func (h *harness) options(stdin string, env map[string]string) Options {
	return Options{
		Stdin:  strings.NewReader(stdin),
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		Getenv: func(k string) string { return env[k] },
		Now:    func() time.Time { return time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC) },
		NewInvoker: func(context.Context, *config.Config, logging.Logger) (pipeline.Invoker, error) {
			h.factoryCalls++
			return h.invoker, nil
		},
	}
}

func noEnvFile(t *testing.T) []string {
	return []string{"-env", filepath.Join(t.TempDir(), "missing.env")}
}

func TestRun_EndToEnd(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}

	code := Run(context.Background(), noEnvFile(t), h.options("tênis esportivo\n\n", map[string]string{"GOOGLE_API_KEY": "k"}))
	require.Equal(t, 0, code, h.stderr.String())

	out := h.stdout.String()
	assert.True(t, strings.HasSuffix(out, "STUB6\n"), out)
	assert.Contains(t, out, banner)
	assert.Contains(t, out, "Post formatado (em Markdown):\n\nSTUB6\n")
	assert.Contains(t, out, "Lançamentos encontrados:\n> STUB1\n")
	assert.Contains(t, out, "Revisão do post:\n> STUB5\n")

	for _, s := range pipeline.Stages {
		assert.Contains(t, out, s.Progress())
	}

	require.Len(t, h.invoker.prompts, 6)
	assert.Equal(t, "Tópico: tênis esportivo\nData de hoje: 07/05/2025", h.invoker.prompts[0])
	assert.Equal(t, 1, h.factoryCalls)
}

func TestRun_Links(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}

	code := Run(context.Background(), noEnvFile(t), h.options("moda praia\n https://a.example/1 , ,https://b.example/2\n", map[string]string{"GOOGLE_API_KEY": "k"}))
	require.Equal(t, 0, code, h.stderr.String())

	assert.True(t, strings.HasSuffix(h.invoker.prompts[0], "\nLinks de produtos de referência: https://a.example/1, https://b.example/2"))
}

func TestRun_MissingCredential(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}

	code := Run(context.Background(), noEnvFile(t), h.options("tênis\n\n", map[string]string{}))

	assert.Equal(t, 1, code)
	assert.Equal(t, 0, h.factoryCalls)
	assert.Empty(t, h.invoker.prompts)
	assert.Contains(t, h.stderr.String(), "GOOGLE_API_KEY")
	assert.Empty(t, h.stdout.String())
}

func TestRun_MissingProviderCredential(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}

	code := Run(context.Background(), noEnvFile(t), h.options("", map[string]string{
		config.EnvProvider: "openai",
		"GOOGLE_API_KEY":   "k",
	}))

	assert.Equal(t, 1, code)
	assert.Equal(t, 0, h.factoryCalls)
	assert.Contains(t, h.stderr.String(), "OPENAI_API_KEY")
}

func TestRun_CredentialFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY=from-file\n"), 0o600))

	h := &harness{invoker: &stubInvoker{}}
	code := Run(context.Background(), []string{"-env", path}, h.options("t\n\n", map[string]string{}))

	assert.Equal(t, 0, code, h.stderr.String())
}

func TestRun_StageFailure(t *testing.T) {
	h := &harness{invoker: &stubInvoker{fail: pipeline.StageImages, failErr: errors.New("rate limited")}}

	code := Run(context.Background(), noEnvFile(t), h.options("t\n\n", map[string]string{"GOOGLE_API_KEY": "k"}))

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "stage images: rate limited")
	assert.Len(t, h.invoker.prompts, 4)
	assert.NotContains(t, h.stdout.String(), "Post formatado")
}

func TestRun_NoTopic(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}

	code := Run(context.Background(), noEnvFile(t), h.options("", map[string]string{"GOOGLE_API_KEY": "k"}))

	assert.Equal(t, 1, code)
	assert.Empty(t, h.invoker.prompts)
}

func TestRun_WritesHTML(t *testing.T) {
	htmlPath := filepath.Join(t.TempDir(), "post.html")
	h := &harness{invoker: &stubInvoker{}}

	args := append(noEnvFile(t), "-html", htmlPath)
	code := Run(context.Background(), args, h.options("t\n\n", map[string]string{"GOOGLE_API_KEY": "k"}))
	require.Equal(t, 0, code, h.stderr.String())

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>STUB6</p>\n", string(html))
}

func TestRun_BadFlag(t *testing.T) {
	h := &harness{invoker: &stubInvoker{}}
	assert.Equal(t, 2, Run(context.Background(), []string{"-nope"}, h.options("", nil)))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "> a\n> \n>   * b\n", Quote("a\n\n• b\n"))
	assert.Equal(t, "> sem quebra", Quote("sem quebra"))
	assert.Equal(t, "", Quote(""))
}
