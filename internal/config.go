package internal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/criblio/hello/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitConfig sets up the global logger, writing to $HELLO_HOME/hello.log
func InitConfig() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	SetLogFile(filepath.Join(util.HelloHome(), "hello.log"))
}

// InitConfigFile is InitConfig writing to path instead of $HELLO_HOME
func InitConfigFile(path string) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	SetLogFile(path)
}

// InitConfigWriter is InitConfig for processes that log to a stream
func InitConfigWriter(w io.Writer) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	SetLogWriter(w)
}

// SetLogFile sets log output to a particular file path
func SetLogFile(path string) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	util.CheckErrSprintf(err, "could not create path to log file %s: %v", path, err)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	util.CheckErrSprintf(err, "could not open log file %s: %v", path, err)
	SetLogWriter(f)
}

// SetLogWriter sets log output to w
func SetLogWriter(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
}

// SetDebug sets logging to debug
func SetDebug() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
