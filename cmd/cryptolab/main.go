// Command cryptolab encrypts and decrypts text with DES, computes MD5 and
// SHA-1 digests, runs known-answer self-tests and starts the desktop GUI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	cryptobackend "github.com/andrei-cloud/cryptolab/internal/backend/crypto"
	"github.com/andrei-cloud/cryptolab/internal/backend/storage"
	"github.com/andrei-cloud/cryptolab/internal/config"
	"github.com/andrei-cloud/cryptolab/internal/ui"
	"github.com/andrei-cloud/cryptolab/pkg/logger"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: cryptolab [-config file] <command> [args]

commands:
  encrypt -key K [-workers N] [TEXT]   DES-encrypt TEXT (or stdin)
  decrypt -key K [-workers N] [CT]     DES-decrypt 0x-literal ciphertext
  md5  [-file F] [TEXT]                MD5 digest of TEXT, F or stdin
  sha1 [-file F] [TEXT]                SHA-1 digest of TEXT, F or stdin
  kcv -key K                           key check value of a DES key
  selftest [-seed]                     run the known-answer vectors
  gui                                  start the desktop application
`

var errUsage = errors.New("invalid usage")

type env struct {
	cfg    config.Config
	log    *logger.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr *os.File) int {
	fs := flag.NewFlagSet("cryptolab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	cfgPath := fs.String("config", "", "path to a .toml or .yaml config file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(stderr, "config error: %v\n", err)
			return exitFail
		}
	}

	log, err := openLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger error: %v\n", err)
		return exitFail
	}
	defer log.Close()

	e := &env{cfg: cfg, log: log, stdin: stdin, stdout: stdout}
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "encrypt", "decrypt":
		err = e.runDES(cmd, cmdArgs)
	case "md5", "sha1":
		err = e.runHash(cmd, cmdArgs)
	case "kcv":
		err = e.runKCV(cmdArgs)
	case "selftest":
		err = e.runSelfTest(cmdArgs)
	case "gui":
		log.Info("GUI", "Started", "")
		ui.StartApp(cfg, log)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return exitUsage
	default:
		fmt.Fprintln(stderr, err)
		return exitFail
	}
}

// openLogger logs to the configured file, or to the console when no file
// is configured.
func openLogger(cfg config.Config, console *os.File) (*logger.Logger, error) {
	if cfg.LogPath == "" {
		return logger.NewConsoleLogger(console, cfg.Level(), nil), nil
	}

	return logger.NewLogger(cfg.LogPath, cfg.Level(), nil)
}

func (e *env) runDES(cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	key := fs.String("key", "", "key text")
	workers := fs.Int("workers", e.cfg.Workers, "parallel block workers")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *key == "" {
		return fmt.Errorf("%w: %s requires -key", errUsage, cmd)
	}

	text, err := e.textArg(fs.Args())
	if err != nil {
		return err
	}

	event := "DES " + cmd
	out, err := cryptobackend.ProcessDES(&cryptobackend.DESParams{
		Text:    text,
		Key:     *key,
		Encrypt: cmd == "encrypt",
		Workers: *workers,
	})
	if err != nil {
		e.log.Error(event, "Failure", err.Error())
		return err
	}

	e.log.Info(event, "Success", fmt.Sprintf("workers=%d", *workers))
	fmt.Fprintln(e.stdout, out)

	return nil
}

func (e *env) runHash(cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "hash the raw bytes of this file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	alg, err := cryptobackend.ParseHashAlgorithm(cmd)
	if err != nil {
		return err
	}

	params := &cryptobackend.HashParams{Algorithm: alg}
	switch {
	case *file != "":
		if params.Data, err = os.ReadFile(*file); err != nil {
			return fmt.Errorf("failed to read %q: %w", *file, err)
		}
	case fs.NArg() > 0:
		params.Text = strings.Join(fs.Args(), " ")
	default:
		if params.Data, err = io.ReadAll(e.stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	digest, err := cryptobackend.ProcessHash(params)
	if err != nil {
		e.log.Error("Hash", "Failure", err.Error())
		return err
	}

	e.log.Info("Hash", "Success", string(alg))
	fmt.Fprintln(e.stdout, digest)

	return nil
}

func (e *env) runKCV(args []string) error {
	fs := flag.NewFlagSet("kcv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	key := fs.String("key", "", "key text")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *key == "" {
		return fmt.Errorf("%w: kcv requires -key", errUsage)
	}

	kcv, err := cryptobackend.CalculateKCV(*key)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, kcv)

	return nil
}

func (e *env) runSelfTest(args []string) error {
	fs := flag.NewFlagSet("selftest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Bool("seed", false, "store the built-in vectors in the vector file first")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	vs, err := storage.NewVectorStore(e.cfg.VectorsPath)
	if err != nil {
		return err
	}
	if *seed {
		added, err := vs.Seed(storage.DefaultVectors())
		if err != nil {
			return fmt.Errorf("failed to seed vectors: %w", err)
		}
		e.log.Info("SelfTest", "Seeded", fmt.Sprintf("%d vectors", added))
	}

	vectors := vs.List()
	if len(vectors) == 0 {
		vectors = storage.DefaultVectors()
	}

	results := cryptobackend.RunSelfTest(vectors)
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(e.stdout, "%s  %-8s %s", status, r.Algorithm, r.Name)
		if !r.Passed {
			if r.Err != nil {
				fmt.Fprintf(e.stdout, ": %v", r.Err)
			} else {
				fmt.Fprintf(e.stdout, ": got %s, want %s", r.Got, r.Expected)
			}
		}
		fmt.Fprintln(e.stdout)
	}

	failed := cryptobackend.Failed(results)
	summary := fmt.Sprintf("%d/%d passed", len(results)-failed, len(results))
	fmt.Fprintln(e.stdout, summary)
	if failed > 0 {
		e.log.Error("SelfTest", "Failure", summary)
		return fmt.Errorf("%d vectors failed", failed)
	}
	e.log.Info("SelfTest", "Success", summary)

	return nil
}

// textArg joins the positional arguments, or reads stdin when there are none.
func (e *env) textArg(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}
