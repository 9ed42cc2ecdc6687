// Package cmd is the cobra CLI entry point.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/caresetu/caresetu_backend/cmd/http"
	systemcmd "github.com/caresetu/caresetu_backend/cmd/system"
)

var rootCmd = &cobra.Command{
	Use:   "caresetu",
	Short: "CareSetu telehealth backend",
	Long:  "Doctor availability and appointment booking backend for the CareSetu platform.",
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".", "path to the directory containing config.yaml")

	rootCmd.AddCommand(httpcmd.Cmd)
	rootCmd.AddCommand(systemcmd.Cmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
