// Package cmd provides CLI utilities for checkdiff
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in checkdiff
var commands = []string{
	"diff",
	"single",
	"generate",
	"completion",
	"version",
	"help",
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for checkdiff
_checkdiff_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        diff)
            opts="-r -b -p -bv -pv -c -bc -pc -l -w -x --diff-tool-jar --xref-jar --allow-excludes --shallow-clone --short-paths --yes -y --verbose -v"
            ;;
        single)
            opts="-r -p -pv -pc -l -w -x --allow-excludes --shallow-clone --yes -y --verbose -v"
            ;;
        generate)
            opts="-i -o --verbose -v"
            ;;
        completion)
            opts="bash zsh fish"
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}
complete -F _checkdiff_completions checkdiff
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	var b strings.Builder
	b.WriteString("#compdef checkdiff\n\n_checkdiff() {\n    local -a commands\n    commands=(\n")
	descriptions := map[string]string{
		"diff":       "Run base and patch analyzer versions and diff the results",
		"single":     "Run only the patch side",
		"generate":   "Extract inline example configs from test inputs",
		"completion": "Generate shell completion script",
		"version":    "Print version information",
		"help":       "Show usage",
	}
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c, descriptions[c])
	}
	b.WriteString("    )\n    _describe 'command' commands\n}\n\n_checkdiff\n")
	return b.String()
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var b strings.Builder
	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c checkdiff -n '__fish_use_subcommand' -a '%s'\n", c)
	}
	return b.String()
}

// GenerateCompletion returns the completion script for the given shell, or
// an error message for an unsupported shell.
func GenerateCompletion(shell string) (string, error) {
	switch shell {
	case "bash":
		return GenerateBashCompletion(), nil
	case "zsh":
		return GenerateZshCompletion(), nil
	case "fish":
		return GenerateFishCompletion(), nil
	default:
		return "", fmt.Errorf("unsupported shell '%s' (expected bash, zsh, or fish)", shell)
	}
}
