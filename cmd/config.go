package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"codectx.dev/pkg/codectx/internal/adapter"
	"codectx.dev/pkg/codectx/internal/controller"
	"codectx.dev/pkg/codectx/internal/domain"
	m "codectx.dev/pkg/codectx/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "codectx"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	maxLinesFlagName = "max-lines"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	lineFlagName     = "line"
	watchFlagName    = "watch"
	formatFlagName   = "format"
	parallelFlagName = "parallel"

	maxLinesConfigKey  = "context.max_lines"
	openersConfigKey   = "context.openers"
	parallelConfigKey  = "context.parallel"
	formatConfigKey    = "context.format"
	bgColorConfigKey   = "view.bgcolor"
	fgColorConfigKey   = "view.fgcolor"
	styleConfigKey     = "view.style"
	highlightConfigKey = "view.highlight"
	watchConfigKey     = "view.watch"

	defaultMaxLines  = domain.DefaultMaxDepth
	defaultParallel  = 1
	defaultFormat    = string(controller.FormatText)
	defaultBgColor   = "#D3D3D3"
	defaultFgColor   = "#000000"
	defaultStyle     = adapter.DefaultStyle
	defaultHighlight = true
	defaultWatch     = false

	envPrefix = "CODECTX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".codectx.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(maxLinesConfigKey, defaultMaxLines)
	viper.SetDefault(openersConfigKey, defaultOpeners())
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(bgColorConfigKey, defaultBgColor)
	viper.SetDefault(fgColorConfigKey, defaultFgColor)
	viper.SetDefault(styleConfigKey, defaultStyle)
	viper.SetDefault(highlightConfigKey, defaultHighlight)
	viper.SetDefault(watchConfigKey, defaultWatch)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func defaultOpeners() []string {
	openers := make([]string, 0, len(domain.DefaultOpeners))
	for _, opener := range domain.DefaultOpeners {
		openers = append(openers, string(opener))
	}

	return openers
}

// configuredOpeners returns the opener keywords from context.openers.
func configuredOpeners() []m.Keyword {
	values := viper.GetStringSlice(openersConfigKey)

	openers := make([]m.Keyword, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			openers = append(openers, m.Keyword(value))
		}
	}

	return openers
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
