package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string // --output
	Short string // -o (empty if none)
	Desc  string // help text
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// buildExportFlagSet creates a FlagSet with all export command flags.
// This reuses the same flag registration as parseExportFlags.
func buildExportFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.url, "url", "u", "", "page URL to export")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "navigation timeout")
	fs.StringVar(&f.wait, "wait", "", "poll until the server is reachable")

	addCommonFlags(fs, &f.common)
	addPrintFlags(fs, &f.print)
	addBrowserFlags(fs, &f.browser)

	return fs
}

// buildServeFlagSet creates a FlagSet with all serve command flags.
func buildServeFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.dir, "dir", "d", "", "directory with the rendered site")
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address")

	addCommonFlags(fs, &f.common)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		})
	})
	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:  "export",
			Desc:  "Export the configured page to PDF",
			Flags: extractFlagsFromFlagSet(buildExportFlagSet()),
		},
		{
			Name:  "serve",
			Desc:  "Serve the rendered site over HTTP",
			Flags: extractFlagsFromFlagSet(buildServeFlagSet()),
		},
		{
			Name: "doctor",
			Desc: "Check the environment for export readiness",
			Flags: []flagDef{
				{Long: "json", Desc: "output diagnostics as JSON"},
			},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	cmds := getCommands()

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}

	fmt.Fprintln(w, "# bash completion for siteprint")
	fmt.Fprintln(w, "_siteprint() {")
	fmt.Fprintln(w, "  local cur prev cmd")
	fmt.Fprintln(w, "  cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "  cmd=\"${COMP_WORDS[1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  if [[ $COMP_CWORD -eq 1 ]]; then")
	fmt.Fprintf(w, "    COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	fmt.Fprintln(w, "    return")
	fmt.Fprintln(w, "  fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  case \"$cmd\" in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		var opts []string
		for _, f := range c.Flags {
			opts = append(opts, "--"+f.Long)
			if f.Short != "" {
				opts = append(opts, "-"+f.Short)
			}
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintf(w, "      COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(opts, " "))
		fmt.Fprintln(w, "      ;;")
	}
	fmt.Fprintln(w, "  esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _siteprint siteprint")
	return nil
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "#compdef siteprint")
	fmt.Fprintln(w, "_siteprint() {")
	fmt.Fprintln(w, "  local -a commands")
	fmt.Fprintln(w, "  commands=(")
	for _, c := range cmds {
		fmt.Fprintf(w, "    '%s:%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w, "  )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "    _describe 'command' commands")
	fmt.Fprintln(w, "    return")
	fmt.Fprintln(w, "  fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  case $words[2] in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "      _arguments \\")
		for i, f := range c.Flags {
			sep := " \\"
			if i == len(c.Flags)-1 {
				sep = ""
			}
			fmt.Fprintf(w, "        '--%s[%s]'%s\n", f.Long, zshEscape(f.Desc), sep)
		}
		fmt.Fprintln(w, "      ;;")
	}
	fmt.Fprintln(w, "  esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "_siteprint \"$@\"")
	return nil
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "# fish completion for siteprint")
	for _, c := range cmds {
		fmt.Fprintf(w, "complete -c siteprint -f -n '__fish_use_subcommand' -a %s -d %q\n", c.Name, c.Desc)
		for _, f := range c.Flags {
			fmt.Fprintf(w, "complete -c siteprint -n '__fish_seen_subcommand_from %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				fmt.Fprintf(w, " -s %s", f.Short)
			}
			fmt.Fprintf(w, " -d %q\n", f.Desc)
		}
	}
	return nil
}

// zshEscape escapes characters that break zsh _arguments specs.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	return strings.ReplaceAll(s, "'", "")
}

// runCompletionCmd handles the completion command.
func runCompletionCmd(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printCompletionUsage(deps.Stdout)
		return ExitSuccess
	}

	if err := GenerateCompletion(deps.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: siteprint completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash    Bash completion script")
	fmt.Fprintln(w, "  zsh     Zsh completion script")
	fmt.Fprintln(w, "  fish    Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(siteprint completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(siteprint completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    siteprint completion fish > ~/.config/fish/completions/siteprint.fish")
}
