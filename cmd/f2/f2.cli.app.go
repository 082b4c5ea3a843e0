package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/itsatony/go-f2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// app holds the streams and persistent flags shared by all commands
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
}

// engine builds an engine from the --config file and --verbose flag
func (a *app) engine() (*f2.Engine, error) {
	logger := a.logger()

	var opts []f2.Option
	if a.configPath != "" {
		cfg, err := f2.LoadConfigFile(a.configPath)
		if err != nil {
			return nil, newExitError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, newExitError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
		}
		opts = append(opts, cfgOpts...)
		logger.Debug(f2.LogMsgConfigLoaded, zap.String(f2.LogFieldPath, a.configPath))
	}
	opts = append(opts, f2.WithLogger(logger))

	engine, err := f2.New(opts...)
	if err != nil {
		return nil, newExitError(ExitCodeInputError, ErrMsgEngineFailed, err)
	}
	return engine, nil
}

func (a *app) logger() *zap.Logger {
	if !a.verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(a.stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// readPattern reads the whole of stdin, dropping one trailing newline
func (a *app) readPattern() (string, error) {
	data, err := io.ReadAll(bufio.NewReader(a.stdin))
	if err != nil {
		return "", newExitError(ExitCodeInputError, ErrMsgReadStdinFailed, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// parseArgs converts command-line arguments into substitution arguments.
// With typed set each argument is decoded as a YAML value, so 42 is a
// number, true a bool and {a: 1} a map.
func parseArgs(raw []string, typed bool) ([]any, error) {
	args := make([]any, 0, len(raw))
	for _, r := range raw {
		if !typed {
			args = append(args, r)
			continue
		}
		var v any
		if err := yaml.Unmarshal([]byte(r), &v); err != nil {
			return nil, newExitError(ExitCodeInputError, ErrMsgInvalidArg, err)
		}
		args = append(args, v)
	}
	return args, nil
}

// parseKwargs decodes the --kwargs object
func parseKwargs(raw string) (map[string]any, error) {
	var kwargs map[string]any
	if err := yaml.Unmarshal([]byte(raw), &kwargs); err != nil {
		return nil, newExitError(ExitCodeInputError, ErrMsgInvalidKwargs, err)
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	return kwargs, nil
}
