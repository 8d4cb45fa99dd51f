package logging

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kakapo/kakapo/tui/theme"
	"github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02 15:04:05"

// TextFormatter writes one line per entry:
//
//	2006-01-02 15:04:05 [INFO] [catalog] message key=value
type TextFormatter struct {
	Config FormatConfig
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := &bytes.Buffer{}

	if !f.Config.DisableTimestamp {
		fmt.Fprintf(buf, "%s ", entry.Time.Format(timestampLayout))
	}
	fmt.Fprintf(buf, "[%s]", levelLabel(entry.Level))

	if !f.Config.DisableComponent {
		if component, ok := entry.Data["component"]; ok {
			fmt.Fprintf(buf, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
		}
	}
	if entry.HasCaller() {
		fmt.Fprintf(buf, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	buf.WriteByte(' ')
	buf.WriteString(entry.Message)
	writeFields(buf, entry.Data)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func levelLabel(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

// writeFields appends key=value pairs sorted by key, skipping component.
func writeFields(buf *bytes.Buffer, data logrus.Fields) {
	keys := make([]string, 0, len(data))
	for key := range data {
		if key == "component" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(buf, " %s=%v", key, data[key])
	}
}
