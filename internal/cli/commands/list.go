package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tlr/internal/config"
	"tlr/internal/reader"
	"tlr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	newReader func() *reader.Reader
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, newReader func() *reader.Reader, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		newReader: newReader,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.newReader().Discover(lc.config.RootDir, lc.config.Extension, lc.config.Flags.NameFilter)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		color.Yellow("No log files found")
		return nil
	}

	return lc.formatter.PrintFileList(files, lc.config.Flags.Cases)
}
