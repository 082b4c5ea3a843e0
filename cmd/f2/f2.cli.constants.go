package main

// CLIName is the binary name shown in help output
const CLIName = "f2"

// Command names
const (
	CmdNameFormat  = "format"
	CmdNameExplain = "explain"
	CmdNameCheck   = "check"
	CmdNameTypes   = "types"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagConfig      = "config"
	FlagVerbose     = "verbose"
	FlagTyped       = "typed"
	FlagKwargs      = "kwargs"
	FlagStdin       = "stdin"
	FlagOffsetRight = "offset-right"
	FlagNoNewline   = "no-newline"
	FlagFormat      = "format"
	FlagKey         = "key"
	FlagPos         = "pos"
)

// Flag names - short form
const (
	FlagConfigShort    = "c"
	FlagVerboseShort   = "v"
	FlagTypedShort     = "T"
	FlagKwargsShort    = "k"
	FlagNoNewlineShort = "n"
	FlagFormatShort    = "F"
)

// Flag default values
const (
	FlagDefaultFormat = OutputFormatText
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingPattern    = "pattern required"
	ErrMsgInvalidArg        = "invalid typed argument"
	ErrMsgInvalidKwargs     = "invalid kwargs, expected a YAML or JSON object"
	ErrMsgReadStdinFailed   = "failed to read from stdin"
	ErrMsgLoadConfigFailed  = "failed to load configuration"
	ErrMsgEngineFailed      = "failed to create engine"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
	ErrMsgCheckConflict     = "--key and --pos are mutually exclusive"
)

// Output formats for messages
const (
	FmtErrorWithCause = "error: %s: %v\n"
	FmtError          = "error: %v\n"
	FmtExplainItem    = "%-4d %-10s %q%s\n"
	FmtExplainSummary = "positional: %d, keywords: %t\n"
	FmtVersion        = "%s %s (commit %s, %s)\n"
)

// Version information, set at build time with -ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// Help text
const (
	HelpRootShort = "Format strings from printf-style patterns"
	HelpRootLong  = `f2 - printf-style string formatting with positional, indexed and keyword placeholders.

Placeholders:
    %s %d %j          implicit index (string, decimal, JSON)
    %2$s              explicit 1-based index
    %(user.name)s     keyword, looked up in the last argument
    %-5s %x:5s %.2s   sign, fill, width and precision directives
    %%                literal percent`

	HelpFormatShort   = "Format a pattern with arguments"
	HelpFormatExample = `    f2 format 'Hello, %s!' world
    f2 format --typed '%d + %d' 2 3
    f2 format '%(user.name)s is %(user.age)d' --kwargs '{user: {name: Alice, age: 30}}'
    echo '%s-%s' | f2 format --stdin a b`

	HelpExplainShort = "Show how a pattern compiles"
	HelpCheckShort   = "Check whether a pattern has substitutions"
	HelpCheckLong    = `Check whether a pattern has substitutions.

Without flags the pattern is checked for any placeholder. With --key or
--pos a specific keyword path or 1-based position is checked. Prints
true or false and exits with 0 or 3 respectively.`
	HelpTypesShort   = "List registered type codes"
	HelpVersionShort = "Show version information"
)
