// File: cmd/focusflow/main.go
// @title        FocusFlow API
// @version      1.0
// @description  這是 FocusFlow 的後端 API 文件 (areas、tasks、notes 與搜尋)
// @host         localhost:8080
// @BasePath     /api/v1
// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /api/v1/users/login
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

// newRootCommand 建立 focusflow 根指令
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "focusflow",
		Short:         "FocusFlow productivity backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newKeygenCommand())
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		exitFunc(1)
	}
}
