package main

// Internal debug log. Messages are kept in a small ring buffer for the on
// screen log window and optionally appended to a file.

import (
	"fmt"
	"os"
	"time"
)

func (e *Editor) addLog(group, msg string) {
	t := time.Now()
	timestamp := fmt.Sprintf("[%02d:%02d:%02d]", t.Hour(), t.Minute(), t.Second())
	logMsg := fmt.Sprintf("%s [%s] %s", timestamp, group, msg)
	e.logMessages = append(e.logMessages, logMsg)

	if len(e.logMessages) > e.maxLogMessages {
		e.logMessages = e.logMessages[len(e.logMessages)-e.maxLogMessages:]
	}

	if Config.UseLogFile {
		f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// recentLogs returns at most n of the newest log messages, oldest first.
func (e *Editor) recentLogs(n int) []string {
	if n <= 0 {
		return nil
	}
	if len(e.logMessages) > n {
		return e.logMessages[len(e.logMessages)-n:]
	}
	return e.logMessages
}

func (e *Editor) toggleDebugWindow() {
	e.showDebugLog = !e.showDebugLog
}
