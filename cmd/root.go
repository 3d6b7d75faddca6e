package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindlab",
	Short: "Interactive learning platform",
	Long:  "MindLab — web platform that turns any topic into interactive learning activities, pattern insights and a study chatbot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the default lookup)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDLAB_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
