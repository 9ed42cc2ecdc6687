// Package system contains operational commands: database bootstrap and
// schema migration.
package system

import (
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "system",
	Short: "Operational commands",
}

func init() {
	Cmd.AddCommand(migrateCmd)
	Cmd.AddCommand(initCmd)
}
