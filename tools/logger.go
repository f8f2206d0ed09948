package tools

import (
	"fmt"
	"log"
	"time"
)

const logTimestampFormat = "2006-01-02 15.04:05.000"

var isEnabled = true
var printTimestamp = true

func EnableLogger() {
	isEnabled = true
}

func DisableLogger() {
	isEnabled = false
}

func EnableLoggerTimestamp() {
	printTimestamp = true
}

func DisableLoggerTimestamp() {
	printTimestamp = false
}

// Prints a progress line of the command line tool unless the logger is disabled
func LogOutput(val ...interface{}) {
	if !isEnabled {
		return
	}
	if printTimestamp {
		log.Println(append([]interface{}{"[" + time.Now().Format(logTimestampFormat) + "]"}, val...)...)
		return
	}
	log.Println(val...)
}

func LogOutputf(format string, args ...interface{}) {
	LogOutput(fmt.Sprintf(format, args...))
}
