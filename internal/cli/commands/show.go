package commands

import (
	"github.com/spf13/cobra"

	"tlr/internal/storage"
	"tlr/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(st storage.Storage, formatter *ui.Formatter) *ShowCommand {
	return &ShowCommand{storage: st, formatter: formatter}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := sc.storage.Load()
	if err != nil {
		return err
	}
	sc.formatter.PrintRunStats(output)
	return nil
}

// BrowseCommand handles the browse command
type BrowseCommand struct {
	storage storage.Storage
	viewer  ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(st storage.Storage, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{storage: st, viewer: viewer}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := bc.storage.Load()
	if err != nil {
		return err
	}
	return bc.viewer.View(output)
}
