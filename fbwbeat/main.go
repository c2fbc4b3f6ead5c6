// Fbwbeat — Beat на базе Elastic Beats v7 (libbeat), внутри которого работает
// хост вычислителей fbw-host.
package main

import (
	"os"

	"github.com/elastic/beats/v7/libbeat/cmd"
	"github.com/elastic/beats/v7/libbeat/cmd/instance"

	"github.com/flybywiresim/aircraft-sub011/fbwbeat/beater"
)

func main() {
	rootCmd := cmd.GenRootCmdWithSettings(beater.New, instance.Settings{
		Name: "fbwbeat",
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
