package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/curaious/linkfinder/internal/config"
	"github.com/curaious/linkfinder/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "linkfinder",
	Short: "Find tutorial links for an image",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		err := godotenv.Overload()
		if err != nil {
			log.Println("Error loading .env file, skipping")
		}

		conf := config.ReadConfig()
		logger.Setup(os.Stderr, conf.LOG_FORMAT, conf.LOG_LEVEL)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err.Error())
	}
}
