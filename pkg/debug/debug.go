// Package debug appends timing traces to a local file so render
// performance can be inspected without cluttering stderr.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const filename = "axescache.log"

var (
	initOnce sync.Once
	fh       *os.File
)

func open() {
	var err error
	fh, err = os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("error opening %s: %v", filename, err)
	}
}

// Log writes msg with a timestamp and the caller's file:line.
func Log(msg string) {
	initOnce.Do(open)

	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
	} else {
		LogRaw(timeStr + " " + msg)
	}
}

// LogRaw writes msg as-is.
func LogRaw(msg string) {
	initOnce.Do(open)
	if fh == nil {
		return
	}
	fh.WriteString(msg + "\n")
}

func Close() {
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
}
