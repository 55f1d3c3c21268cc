package main

import (
	"fmt"

	"github.com/spf13/cobra"

	httpadapter "svw.info/colorfocus/internal/adapters/http"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the service version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("colorfocus", httpadapter.ServiceVersion)
	},
}
