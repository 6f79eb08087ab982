package handler

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/types"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseTaskID extracts a task ID from a flag
func (p *FlagParser) ParseTaskID(flagName string) (types.TaskID, error) {
	id, err := p.ParseID(flagName)
	return types.TaskID(id), err
}

// ParseColumnID extracts a column ID from a flag
func (p *FlagParser) ParseColumnID(flagName string) (types.ColumnID, error) {
	id, err := p.ParseID(flagName)
	return types.ColumnID(id), err
}

// ParseID extracts a positive integer ID from a flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.UsageError("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, cli.UsageError("--%s must be greater than 0", flagName)
	}
	return id, nil
}

// ParseIndex extracts a zero-based position from a flag
func (p *FlagParser) ParseIndex(flagName string) (int, error) {
	index, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, cli.UsageError("failed to parse %s flag: %w", flagName, err)
	}
	if index < 0 {
		return 0, cli.UsageError("--%s must be 0 or greater", flagName)
	}
	return index, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", cli.UsageError("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", cli.UsageError("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}
