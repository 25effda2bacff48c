// Command transitcatalogue runs one batch of the transit information
// service: it reads an input document, builds the catalogue, projector,
// and router, answers every stat request, and writes the output
// document.
package main

import (
	"io"
	"os"

	"transitcatalogue/internal/config"
	"transitcatalogue/internal/dispatcher"
	"transitcatalogue/internal/jsondoc"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return 2
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return 2
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	in, closeIn, err := openInput(cfg.Input)
	if err != nil {
		sugar.Errorw("opening input", "error", err)
		return 1
	}
	defer closeIn()

	doc, err := jsondoc.Decode(in)
	if err != nil {
		sugar.Errorw("decoding input document", "error", err)
		return 1
	}

	result, err := dispatcher.Run(doc, sugar)
	if err != nil {
		sugar.Errorw("running pipeline", "error", err)
		return 1
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		sugar.Errorw("opening output", "error", err)
		return 1
	}
	defer closeOut()

	if err := jsondoc.Encode(out, result, cfg.Pretty); err != nil {
		sugar.Errorw("encoding output document", "error", err)
		return 1
	}

	return 0
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
