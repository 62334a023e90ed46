// Package util holds the glue shared by the VIPUR command line tools:
// fatal-error helpers, small file conveniences and the common flag set.
package util

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Warnf("WARNING: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Warnf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
		return true
	}
	return false
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert exits with an error message when err is non-nil. The optional
// arguments are a format string and its values, used to prefix the error.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

func AssertLeastNArg(n int) {
	if flag.NArg() < n {
		flag.Usage()
	}
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func ReadLines(r io.Reader) []string {
	buf := bufio.NewReader(r)
	lines := make([]string, 0)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			Fatalf("Could not read line: %s.", err)
		}
		lines = append(lines, strings.TrimSpace(line))
		if err == io.EOF {
			break
		}
	}
	return lines
}
