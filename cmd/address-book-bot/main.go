package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/username/address-book-bot/internal/addressbook"
	"github.com/username/address-book-bot/internal/bot"
	"github.com/username/address-book-bot/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	todayFlag  string
	levelFlag  string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "address-book-bot",
		Short:         "Console assistant for an address book",
		Long:          "Keep contacts with phones and birthdays and see whose birthday is coming this week",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig()
			if err != nil {
				initLogger(zapcore.WarnLevel)
				return err
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(&cfg.Log)
			} else {
				initLogger(cfg.Log.GetLevel())
			}
			return nil
		},
		RunE: runBot,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Pin today's date for birthdays (DD.MM.YYYY)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "Override log level (debug, info, warn, error)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment
	if todayFlag != "" {
		c.Clock.Today = todayFlag
	}
	if levelFlag != "" {
		c.Log.Level = levelFlag
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return c, nil
}

func runBot(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	clock := func() time.Time {
		today, err := cfg.Clock.GetToday()
		if err != nil {
			// Validate already checked the pinned date
			logger.Error("Failed to resolve today", zap.Error(err))
			return time.Now()
		}
		return today
	}

	prompt := ""
	if cfg.Bot.ShowPrompt(stdinIsTerminal()) {
		prompt = cfg.Bot.Prompt
	}

	book := addressbook.NewBook(logger)
	b := bot.New(book, logger, bot.WithClock(clock), bot.WithPrompt(prompt))

	logger.Info("Starting address book bot",
		zap.String("today", cfg.Clock.Today),
		zap.Bool("prompt", prompt != ""))

	if err := b.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("bot stopped: %w", err)
	}
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func initLogger(level zapcore.Level) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(c *config.LogConfig) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB, // MB
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays, // days
		Compress:   c.Compress,
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		c.GetLevel(),
	)

	return zap.New(core)
}
