package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cache home value
var helloHome string

// HelloHome returns the hello home directory, default $HOME/.hello
func HelloHome() string {
	if helloHome != "" {
		return helloHome
	}
	base, match := os.LookupEnv("HELLO_HOME")
	if match {
		helloHome = base
		return helloHome
	}
	home, match := os.LookupEnv("HOME")
	if !match {
		home, match = os.LookupEnv("TMPDIR")
		if !match {
			home = "/tmp"
		}
	}
	helloHome = filepath.Join(home, ".hello")
	return helloHome
}

// GetConfigPath returns path to our default config file
func GetConfigPath() string {
	return filepath.Join(HelloHome(), "config.yml")
}

// ErrAndExit writes a format string to stderr and then exits with a status code of 1
func ErrAndExit(format string, a ...interface{}) {
	out := fmt.Sprintf(format, a...)
	if out == "" || out[len(out)-1:] != "\n" {
		out += "\n"
	}
	os.Stderr.WriteString(out)
	os.Exit(1)
}

// CheckErrSprintf calls ErrAndExit with the format string when err is not nil
func CheckErrSprintf(err error, format string, a ...interface{}) {
	if err != nil {
		ErrAndExit(format, a...)
	}
}

// CheckFileExists checks if a file exists on the filesystem
func CheckFileExists(filePath string) bool {
	if _, err := os.Stat(os.ExpandEnv(filePath)); err == nil { // File exists, no errors
		return true
	}
	return false
}
