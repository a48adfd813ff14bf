package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BLAZED-sh/json-scan/pkg/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// CLI flag definitions
	// Basic options
	input := flag.String("input", "-", "File to read, - for stdin")
	mode := flag.String("mode", "tokens", "What to do with the input (tokens, escape)")

	// Parsing policy
	maxDepth := flag.Int("max-depth", 20, "Maximum nesting depth of objects and arrays")
	maxString := flag.Int("max-string", 9999, "Maximum decoded length of a string token")

	// Logging options
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	// Other options
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	// Version info
	const version = "0.1.0"

	// Handle version flag
	if *showVersion {
		fmt.Printf("json-scan version %s\n", version)
		os.Exit(0)
	}

	// Configure zerolog
	setupLogging(*logLevel, *prettyLogs)

	data, err := readInput(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to read input")
	}
	log.Debug().Str("input", *input).Int("size", len(data)).Msg("Input loaded")

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch *mode {
	case "tokens":
		lexer := json.NewLexer(data)
		lexer.SetMaxDepth(*maxDepth)
		lexer.SetMaxStringLength(*maxString)

		count := 0
		lexer.DecodeAll(func(tok json.Token) {
			count++
			printToken(out, data, tok)
		}, func(err error) {
			out.Flush()
			var scanErr *json.ScanError
			if errors.As(err, &scanErr) {
				log.Fatal().
					Err(scanErr.Kind).
					Int("position", scanErr.Offset).
					Str("near", scanErr.Excerpt).
					Msg("Failed to tokenize input")
			}
			log.Fatal().Err(err).Msg("Failed to tokenize input")
		})
		log.Debug().Int("tokens", count).Msg("Tokenizing finished")

	case "escape":
		out.Write(json.Escape(data))
		out.WriteByte('\n')

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// printToken writes "<offset> <kind> <source text>", strings additionally
// carry their decoded value re-escaped.
func printToken(w io.Writer, data []byte, tok json.Token) {
	switch tok.Kind {
	case json.KindString:
		fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Offset(), tok.Kind, json.Quote(tok.Value))
	case json.KindNumber:
		fmt.Fprintf(w, "%d\t%s\t%s\tfloat=%t signed=%t\n",
			tok.Offset(), tok.Kind, tok.Span.Bytes(data), tok.Float, tok.Signed)
	default:
		fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Offset(), tok.Kind, tok.Span.Bytes(data))
	}
}

func setupLogging(level string, pretty bool) {
	// Set log level
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr, stdout carries the tokens
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
