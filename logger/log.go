// Package logger is the central log for the application. Entries are
// accumulated in memory and written out on request, typically by the
// debugger's LOG command.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be made
var Allow Permission = allow{}

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// only one central log for the entire application
const maxCentral = 256

var central []Entry

// Log adds an entry to the central logger. detail is formatted with
// fmt.Sprint so errors and stringers can be passed directly
func Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	d := strings.ReplaceAll(fmt.Sprint(detail), "\n", " ")
	tag = strings.ReplaceAll(tag, "\n", " ")

	if len(central) > 0 {
		e := &central[len(central)-1]
		if e.tag == tag && e.detail == d {
			e.repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	central = append(central, Entry{
		Timestamp: time.Now(),
		tag:       tag,
		detail:    d,
	})

	if len(central) > maxCentral {
		central = central[len(central)-maxCentral:]
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger
func Clear() {
	central = central[:0]
}

// Write the contents of the central logger to the io.Writer
func Write(output io.Writer) {
	for i := range central {
		io.WriteString(output, central[i].String())
	}
}

// Tail writes the last number entries to the io.Writer. a negative number
// writes every entry
func Tail(output io.Writer, number int) {
	if number < 0 || number > len(central) {
		number = len(central)
	}
	for i := len(central) - number; i < len(central); i++ {
		io.WriteString(output, central[i].String())
	}
}
