package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"salesseed/internal/deploy"
)

var rootDir string

var rootCmd = &cobra.Command{
	Use:   "deployfn <nickname>",
	Short: "Package and publish a serverless function",
	Long: `deployfn builds cmd/<nickname> with its dependencies into a staging
directory, zips it, uploads the archive as a new published version of the
function, and records the unversioned runtime ARN in the parameter store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nickname := args[0]
		ctx := cmd.Context()

		stager := &deploy.Stager{RootDir: rootDir}
		distDir, err := stager.Stage(ctx, nickname)
		if err != nil {
			return err
		}

		zipPath := distDir + ".zip"
		if err := deploy.BuildArchive(distDir, zipPath); err != nil {
			return err
		}

		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load AWS config: %w", err)
		}
		pub := deploy.NewPublisher(awsCfg)

		versioned, err := pub.Publish(ctx, nickname, zipPath)
		if err != nil {
			return err
		}
		if err := pub.RecordRuntime(ctx, nickname, deploy.UnversionedARN(versioned)); err != nil {
			return err
		}

		fmt.Printf("deployed %s -> %s\n", nickname, versioned)
		return nil
	},
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	rootCmd.Flags().StringVar(&rootDir, "root", ".", "repository root containing cmd/")

	if err := rootCmd.Execute(); err != nil {
		zlog.Fatal().Err(err).Msg("deploy failed")
	}
}
