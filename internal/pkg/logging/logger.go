package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	Level        zapcore.Level `json:"level"`          // Level is the minimum level that gets collected, DEBUG<INFO<WARN<ERROR<FATAL
	FileName     string        `json:"file_name"`      // FileName is the log file location; empty means console only
	MaxSize      int           `json:"max_size"`       // MaxSize is the maximum size in MB of a log file before it gets rotated
	MaxAge       int           `json:"max_age"`        // MaxAge is the maximum number of days to retain old log files
	MaxBackups   int           `json:"max_backups"`    // MaxBackups is the maximum number of old log files to retain
	IsConsole    bool          `json:"is_console"`     // IsConsole also writes log output to stderr
	IsStackTrace bool          `json:"is_stack_trace"` // IsStackTrace records a stack trace for error-level output
}

// InitLogger builds the process-wide logger and installs it via zap.ReplaceGlobals.
func InitLogger(lCfg *LogConfig) (err error) {
	writeSyncer := getLogWriter(lCfg.FileName, lCfg.MaxSize, lCfg.MaxBackups, lCfg.MaxAge, lCfg.IsConsole)
	encoder := getEncoder()

	core := zapcore.NewCore(encoder, writeSyncer, lCfg.Level)
	var logger *zap.Logger
	if lCfg.IsStackTrace {
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}
	zap.ReplaceGlobals(logger)
	return
}

// getEncoder sets up the encoding of the log output.
func getEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

// getLogWriter decides where log output is written. Results printed by the CLI
// go to stdout, so console logging goes to stderr to keep them apart.
func getLogWriter(filename string, maxsize, maxBackup, maxAge int, isConsole bool) zapcore.WriteSyncer {
	if filename == "" {
		return zapcore.AddSync(os.Stderr)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxsize,
		MaxAge:     maxAge,
		MaxBackups: maxBackup,
		Compress:   true,
	}
	if isConsole {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(lumberJackLogger), zapcore.AddSync(os.Stderr))
	}
	return zapcore.AddSync(lumberJackLogger)
}
