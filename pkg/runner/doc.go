/*
Package runner implements the line-oriented evaluation loop used by the REPL
and by batch input (pipes, files).

The runner reads one expression per line, sanitizes it, evaluates it through a
ports.Evaluator and writes the outcome through a pluggable IOHandler.

# Key Components

  - Runner: the loop. It stops on EOF, on "exit"/"quit" or when the context ends.
  - TextHandler: plain text output with an optional prompt, for terminals.
  - JSONHandler: one JSON object per line, for scripts.
  - SanitizeInput: size limit, UTF-8 validation and control-character stripping.

# Usage

	r := runner.NewRunner(calc,
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout, runner.WithPrompt("> "))),
	)
	stats, err := r.Run(ctx)
*/
package runner
