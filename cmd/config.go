package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "loshu.dev/pkg/loshu/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "loshu"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"
	batchParallelFlagName = "parallel"
	batchShardFlagName    = "shard"
	batchOrdersFlagName   = "orders"
	batchVariantsFlagName = "variants"
	batchSpillFlagName    = "spill-dir"
	methodFlagName        = "method"
	variantFlagName       = "variant"
	formatFlagName        = "format"
	saveFlagName          = "save"
	addrFlagName          = "addr"

	batchParallelConfigKey  = "batch.parallel"
	batchOrdersConfigKey    = "batch.orders"
	batchVariantsConfigKey  = "batch.variants"
	batchSpillConfigKey     = "batch.spill_dir"
	generateMethodConfigKey = "generate.method"
	serveAddrConfigKey      = "serve.addr"
	serveTimeoutConfigKey   = "serve.read_header_timeout"

	defaultReportsDir        = ".loshu-reports"
	defaultBatchParallel     = 1
	defaultServeAddr         = ":8080"
	defaultReadHeaderTimeout = 5 * time.Second

	envPrefix = "LOSHU"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".loshu.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultBatchOrders = []int{3, 4, 5, 6, 7, 8, 9}

var globalLogger *slog.Logger

// logLevel is shared by every handler configureLogger builds so that a
// config reload can change verbosity without replacing the logger.
var logLevel = new(slog.LevelVar)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(batchParallelConfigKey, defaultBatchParallel)
	viper.SetDefault(batchOrdersConfigKey, defaultBatchOrders)
	viper.SetDefault(batchVariantsConfigKey, variantNames(m.AllVariants()))
	viper.SetDefault(batchSpillConfigKey, "")
	viper.SetDefault(generateMethodConfigKey, "")
	viper.SetDefault(serveAddrConfigKey, defaultServeAddr)
	viper.SetDefault(serveTimeoutConfigKey, defaultReadHeaderTimeout.String())

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

func variantNames(variants []m.Variant) []string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, v.String())
	}

	return names
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

// configuredLevel resolves the level from the verbose switch and log.level.
func configuredLevel(verbose bool) slog.Level {
	if verbose || viper.GetBool(logVerboseKey) {
		return slog.LevelDebug
	}

	return parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
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

	logLevel.Set(configuredLevel(verbose))

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
