// Package cli implements the interactive blogmesh driver: it reads the topic
// and reference links from the operator, runs the pipeline and prints every
// stage result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/blogmesh/config"
	"github.com/hupe1980/blogmesh/logging"
	"github.com/hupe1980/blogmesh/pipeline"
	"github.com/hupe1980/blogmesh/post"
	"github.com/hupe1980/blogmesh/provider"
)

const (
	banner      = " Iniciando o Sistema de Criação de Posts para blogs de moda, orientados ao SEO do Google "
	topicPrompt = "❓ Por favor, digite o TÓPICO sobre o qual você quer criar o próximo post do blog: "
	linksPrompt = "🔗 Se você tiver links de produtos de referência (separados por vírgula), digite-os aqui. Caso contrário, apenas pressione Enter: "
)

// InvokerFactory builds the pipeline's external-call boundary from a
// validated configuration.
type InvokerFactory func(ctx context.Context, cfg *config.Config, logger logging.Logger) (pipeline.Invoker, error)

// Options wires the driver to its environment.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time
	// NewInvoker is only called after the credential check passed.
	NewInvoker InvokerFactory
}

// DefaultOptions returns Options bound to the process.
func DefaultOptions() Options {
	return Options{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		Now:        time.Now,
		NewInvoker: NewInvoker,
	}
}

// NewInvoker is the production InvokerFactory backed by the configured provider.
func NewInvoker(_ context.Context, cfg *config.Config, logger logging.Logger) (pipeline.Invoker, error) {
	factory, err := provider.NewFactory(cfg)
	if err != nil {
		return nil, err
	}

	return pipeline.NewAgentInvoker(factory, func(o *pipeline.AgentInvokerOptions) {
		o.Model = cfg.Model
		o.Stream = cfg.Stream
		o.Logger = logger
	}), nil
}

// Run executes the driver and returns the process exit status.
func Run(ctx context.Context, args []string, opts Options) int {
	fs := flag.NewFlagSet("blogmesh", flag.ContinueOnError)
	fs.SetOutput(opts.Stderr)
	envFile := fs.String("env", ".env", "dotenv file to load (ignored if missing)")
	htmlOut := fs.String("html", "", "also write the final post rendered as HTML to this file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*envFile, opts.Getenv)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "erro de configuração: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(opts.Stderr, "A chave da API não foi encontrada. Defina %s no ambiente ou no arquivo %s. (%v)\n",
			cfg.Provider.CredentialVar(), *envFile, err)
		return 1
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Output:    opts.Stderr,
		Component: "cli",
	})

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	invoker, err := opts.NewInvoker(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "erro ao configurar o modelo: %v\n", err)
		return 1
	}

	out := opts.Stdout
	in := bufio.NewReader(opts.Stdin)

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)

	topic, err := prompt(out, in, topicPrompt)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "erro ao ler o tópico: %v\n", err)
		return 1
	}
	fmt.Fprintln(out)

	linksLine, err := prompt(out, in, linksPrompt)
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(opts.Stderr, "erro ao ler os links: %v\n", err)
		return 1
	}
	fmt.Fprintln(out)

	p := pipeline.New(invoker, func(o *pipeline.Options) {
		o.Reporter = &printer{out: out}
		o.Logger = logger
	})

	res, err := p.Run(ctx, pipeline.Input{
		Topic: topic,
		Links: pipeline.ParseLinks(linksLine),
		Date:  opts.Now(),
	})
	if err != nil {
		fmt.Fprintf(opts.Stderr, "erro: %v\n", err)
		return 1
	}

	summary := post.Analyze(res.Post)
	logger.Info("post.summary",
		"title", summary.Title,
		"headings", summary.Headings,
		"images", len(summary.Images),
		"tags", strings.Join(summary.Tags, ","),
		"words", summary.Words,
	)

	if *htmlOut != "" {
		if err := writeHTML(*htmlOut, res.Post); err != nil {
			fmt.Fprintf(opts.Stderr, "erro ao gravar HTML: %v\n", err)
			return 1
		}
	}

	return 0
}

// prompt prints label and reads one line. A final line without newline is
// accepted; EOF before any input is reported as io.EOF.
func prompt(out io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func writeHTML(path, markdown string) error {
	html, err := post.ToHTML(markdown)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644) //nolint:gosec
}
