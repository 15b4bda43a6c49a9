package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/abilityroll/dice"
)

func rulesAction(ctx context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprint(stdout(cmd), FormatRules())
	return err
}

// FormatRules lists every rule with its score range and description.
func FormatRules() string {
	var sb strings.Builder
	for _, r := range dice.Rules() {
		lo, hi := r.Bounds()
		sb.WriteString(fmt.Sprintf("%-14s [%d, %d]\n", r, lo, hi))
		sb.WriteString("    ")
		sb.WriteString(r.Doc())
		sb.WriteString("\n")
	}
	return sb.String()
}
