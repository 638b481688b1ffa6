package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrange/components/appstate"
	"github.com/cute-angelia/go-xrange/components/rangestore"
	"github.com/cute-angelia/go-xrange/components/session"
	"github.com/cute-angelia/go-xrange/syntax/irandom"
	"github.com/cute-angelia/go-xrange/utils/ibininfo"
	"github.com/cute-angelia/go-xrange/utils/conf"
	"github.com/cute-angelia/go-xrange/utils/ilog"
)

var (
	settingsFile string
	jsonMode     bool
)

var rootCmd = &cobra.Command{
	Use:   "xrange",
	Short: "Draw a random number from an inclusive 1-255 range",
	// main 负责打印错误
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := conf.Load(settingsFile)
		if err != nil {
			return err
		}
		return run(cmd, settings)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), ibininfo.StringifySingleLine())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().StringVar(&settingsFile, "config", "", "settings file (yaml/json/toml)")
	rootCmd.Flags().BoolVar(&jsonMode, "json", false, "render state as json")
}

func run(cmd *cobra.Command, settings conf.Settings) error {
	logger := ilog.New(ilog.WithLevel(settings.LogLevel), ilog.WithFile(settings.LogFile))

	src := irandom.Default()
	if settings.Seed != 0 {
		src = irandom.NewSeeded(settings.Seed)
	}

	store := rangestore.New(rangestore.WithDir(settings.ConfigDir), rangestore.WithLogger(logger))
	sess := session.Open(store, appstate.WithSource(src), appstate.WithLogger(logger))

	sh := &shell{sess: sess, out: cmd.OutOrStdout(), jsonMode: jsonMode}
	runErr := sh.run(cmd.InOrStdin())

	// 退出时保存一次，失败也只记录
	if err := sess.Close(); err != nil {
		logger.Error().Err(err).Msg("save config failed")
	}
	return runErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
