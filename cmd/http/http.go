// Package http contains the commands that run the API server.
package http

import (
	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "http",
	Short: "HTTP server commands",
}

func init() {
	Cmd.AddCommand(startCmd)
}
