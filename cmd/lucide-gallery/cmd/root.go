// Package cmd implements the lucide-gallery CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gallery "github.com/AstroAir/lucide-gallery"
	"github.com/AstroAir/lucide-gallery/internal/cmd/globals"
	"github.com/AstroAir/lucide-gallery/internal/cmd/output"
	"github.com/AstroAir/lucide-gallery/pkg/logging"
)

var (
	configFile  string
	dataDir     string
	noAutoSave  bool
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lucide-gallery",
	Short: "Lucide icon catalog CLI",
	Long: `Lucide-gallery is a catalog engine for the Lucide icon set. It ships
an embedded icon catalog with tags, categories, and contributor
metadata, and tracks per-user favorites and usage statistics.

Search supports free text, category and tag filters, and several sort
orders. Favorites and usage history persist as JSON files in the
per-user application data directory.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "browse",
		Title: "Browse Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "state",
		Title: "User State Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.lucide-gallery.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding favorites and usage files")
	rootCmd.PersistentFlags().BoolVar(&noAutoSave, "no-autosave", false, "do not persist favorite and usage mutations")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
	if err := viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir")); err != nil {
		panic(fmt.Sprintf("Failed to bind data-dir flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lucide-gallery")
	}

	// .env files load before Viper env binding
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}

	if _, err := output.ParseFormat(globalFlags.Output); err != nil {
		return err
	}

	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)

	if os.Getenv("LOG_FORMAT") == "json" {
		logging.SetDefault(logging.NewJSON(os.Stderr).Level(level))
		return
	}
	logging.SetDefault(logging.NewConsole().Level(level))
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}

// openGallery constructs and loads the engine with the persistent-flag
// configuration. Every subcommand goes through here.
func openGallery() (gallery.Gallery, error) {
	dir := dataDir
	if dir == "" {
		dir = viper.GetString("data-dir")
	}

	g, err := gallery.New(
		gallery.WithDataDir(dir),
		gallery.WithAutoSave(!noAutoSave),
	)
	if err != nil {
		return nil, err
	}

	if err := g.Load(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return g, nil
}
