package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagData       = "data"
	FlagDataFile   = "data-file"
	FlagOutput     = "output"
	FlagOpenDelim  = "open"
	FlagCloseDelim = "close"
	FlagHTMLEscape = "html"
	FlagFormat     = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
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

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidUsage      = "invalid usage"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidData       = "invalid data"
	ErrMsgUnknownDataFormat = "unknown data file format"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgParseFailed       = "template parsing failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidOptions    = "invalid engine options"
)

// Help text templates
const (
	HelpMainUsage = `go-templar - Template rendering CLI

Usage:
    templar <command> [options]

Commands:
    render      Render a template with data
    validate    Check template syntax without rendering
    version     Show version information
    help        Show help for a command

Use "templar help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    templar render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  Data file (.json, .yaml or .yml)
    -o, --output <file>     Output file (default: stdout)
    --open <delim>          Open delimiter (default: "{{")
    --close <delim>         Close delimiter (default: "}}")
    --html                  HTML-escape interpolated values

Examples:
    templar render -t template.txt -d '{"name": "Alice"}'
    templar render -t template.txt -f data.yaml
    cat template.txt | templar render -t - -d '{"name": "Bob"}'
    templar render -t template.txt -f data.json -o output.txt`

	HelpValidateUsage = `Check template syntax without rendering

Usage:
    templar validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    --open <delim>          Open delimiter (default: "{{")
    --close <delim>         Close delimiter (default: "}}")

Examples:
    templar validate -t template.txt
    cat template.txt | templar validate -t -`

	HelpVersionUsage = `Show version information

Usage:
    templar version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    templar help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output
const (
	Version             = "1.0.0"
	VersionTextTemplate = "go-templar version %s\nGo: %s"
)

// Validation output
const (
	ValidationTextSuccess = "Template is valid"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
