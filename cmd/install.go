package cmd

import (
	"github.com/spf13/cobra"

	"binstrap/internal/config"
	"binstrap/internal/installer"
	"binstrap/internal/logger"
)

// Flag values for the install command. Flags beat the config file and
// environment; only flags the user actually set are applied.
var (
	configPath string
	repoFlag   string
	tagFlag    string
	dirFlag    string
	toolFlag   string
)

// installCmd downloads and installs a tool from its GitHub releases.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download and install a tool from its GitHub releases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("repo") {
			cfg.Repository = repoFlag
		}
		if cmd.Flags().Changed("tag") {
			cfg.Version = tagFlag
		}
		if cmd.Flags().Changed("dir") {
			cfg.InstallDir = dirFlag
		}
		if cmd.Flags().Changed("tool") {
			cfg.Tool = toolFlag
		}

		pipe, err := installer.NewPipeline(cfg)
		if err != nil {
			reportAdvice(err)
			return err
		}
		if _, err := pipe.Run(); err != nil {
			reportAdvice(err)
			return err
		}
		return nil
	},
}

// reportAdvice prints remediation hints for a failure before the
// error itself is reported.
func reportAdvice(err error) {
	for _, advice := range installer.Remediation(err) {
		logger.Warn("[WARN] %s\n", advice)
	}
}

func init() {
	installCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default ~/"+config.DefaultConfigName+")")
	installCmd.Flags().StringVar(&repoFlag, "repo", config.DefaultRepository, "GitHub repository (owner/name) to install from")
	installCmd.Flags().StringVar(&tagFlag, "tag", config.DefaultVersion, "Release tag to install, or \"latest\"")
	installCmd.Flags().StringVar(&dirFlag, "dir", "", "Install directory override")
	installCmd.Flags().StringVar(&toolFlag, "tool", "", "Name of the installed binary (default: repository name)")

	rootCmd.AddCommand(installCmd)
}
