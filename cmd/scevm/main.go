// Command scevm runs a single-contract, single-context EVM invocation
// described by a JSON execution envelope (bytecode, transaction, world
// state snapshot and block header) and prints the resulting operand stack
// and return envelope as JSON.
//
// Usage:
//
//	scevm --envelope testdata/add.json
//	cat testdata/add.json | scevm
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/beskay/evm-from-scratch/core/vm"
	applog "github.com/beskay/evm-from-scratch/log"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

var (
	envelopeFlag = &cli.StringFlag{
		Name:    "envelope",
		Aliases: []string{"e"},
		Usage:   "path to a JSON execution envelope; reads stdin if omitted",
	}
	strictJumpFlag = &cli.BoolFlag{
		Name:  "strict-jump",
		Usage: "validate JUMP/JUMPI destinations land on a JUMPDEST",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Value: "info",
		Usage: "log level: debug, info, warn, error",
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Value: "json",
		Usage: "log rendering: text, json, color",
	}
	prettyFlag = &cli.BoolFlag{
		Name:  "pretty",
		Usage: "pretty-print the result JSON",
	}
)

func main() {
	app := &cli.App{
		Name:    "scevm",
		Usage:   "execute a single EVM contract invocation from a JSON envelope",
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
		Flags:   []cli.Flag{envelopeFlag, strictJumpFlag, verbosityFlag, logFormatFlag, prettyFlag},
		Action:  runCmd,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCmd loads the envelope, runs the interpreter, and writes the result.
func runCmd(c *cli.Context) error {
	applog.SetDefault(applog.NewFromLevelName(c.String("verbosity"), c.String("log-format")))
	logger := applog.Default().Module("cmd")

	raw, err := readEnvelopeSource(c.String("envelope"))
	if err != nil {
		return fmt.Errorf("reading envelope: %w", err)
	}

	code, tx, world, block, err := parseEnvelope(raw)
	if err != nil {
		return err
	}

	in := vm.NewInterpreter(world, block).WithStrictJump(c.Bool("strict-jump"))
	logger.Info("running invocation", "codeLen", len(code), "to", tx.To.Hex())

	stack, env, err := in.Run(code, tx)
	if err != nil {
		logger.Error("invocation failed", "err", err)
		return err
	}

	out := buildResult(stack, env)
	enc := json.NewEncoder(os.Stdout)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

// readEnvelopeSource reads the envelope JSON from path, or from stdin when
// path is empty.
func readEnvelopeSource(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
