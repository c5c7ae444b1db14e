package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "terragen",
	Short: "A deterministic procedural terrain heightfield generator",
	Long: `terragen synthesizes a seamless, tileable heightfield with hydrological
features (rivers, lakes, beaches) from a biome preset and a seed, and packs
the result into a tile atlas ready for GPU rendering.`,
}

func main() {
	Execute()
}

func Execute() {
	initLogging() // fallback in case cobra's OnInitialize hook hasn't fired yet
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./terragen.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "render logs as human-readable console output instead of JSON")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("pretty", rootCmd.PersistentFlags().Lookup("pretty")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("terragen")
	}

	viper.SetEnvPrefix("TERRAGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("pretty") {
			fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
		}
	}
}

func initLogging() {
	levelStr := strings.ToLower(viper.GetString("log-level"))
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = os.Stderr
	if viper.GetBool("pretty") {
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
