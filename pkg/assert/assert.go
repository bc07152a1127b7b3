package assert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
)

type AssertData interface {
	Dump() string
}

var (
	mutex      sync.Mutex
	assertData = map[string]AssertData{}
	writer     io.Writer = os.Stderr
	exit                 = os.Exit
)

func AddAssertData(key string, value AssertData) {
	mutex.Lock()
	defer mutex.Unlock()
	assertData[key] = value
}

func RemoveAssertData(key string) {
	mutex.Lock()
	defer mutex.Unlock()
	delete(assertData, key)
}

// ToWriter redirects failure reports. nil restores stderr.
func ToWriter(w io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

// SetExit swaps what a failed assertion calls after reporting. It returns a
// func that puts the previous one back.
func SetExit(fn func(int)) func() {
	mutex.Lock()
	defer mutex.Unlock()
	prev := exit
	exit = fn
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		exit = prev
	}
}

func runAssert(msg string, args ...any) {
	mutex.Lock()
	defer mutex.Unlock()

	values := []any{
		"msg",
		msg,
		"area",
		"Assert",
	}
	values = append(values, args...)

	for k, v := range assertData {
		values = append(values, k, v.Dump())
	}

	fmt.Fprintf(writer, "ASSERT\n")
	for i := 0; i+1 < len(values); i += 2 {
		fmt.Fprintf(writer, "   %s=%v\n", values[i], values[i+1])
	}
	if len(values)%2 == 1 {
		fmt.Fprintf(writer, "   !BADKEY=%v\n", values[len(values)-1])
	}
	fmt.Fprintln(writer, string(debug.Stack()))
	exit(1)
}

func Assert(truth bool, msg string, data ...any) {
	if !truth {
		runAssert(msg, data...)
	}
}

func NotNil(item any, msg string) {
	if item == nil {
		slog.Error("NotNil#nil encountered")
		runAssert(msg)
	}
}

func Never(msg string, data ...any) {
	runAssert(msg, data...)
}

func NoError(err error, msg string, data ...any) {
	if err != nil {
		slog.Error("NoError#error encountered", "error", err)
		runAssert(msg, append(data, "error", err)...)
	}
}
