package logtail

import (
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Entry is one decoded zerolog JSON line.
type Entry struct {
	Time    time.Time
	Level   string // upper-case three letter form: DBG, INF, WRN, ERR
	Message string
	Fields  []Field // remaining keys in alphabetical order
	Raw     string
}

// Field is a key/value pair rendered as key=value.
type Field struct {
	Key   string
	Value string
}

var levelAbbrev = map[string]string{
	"trace": "TRC",
	"debug": "DBG",
	"info":  "INF",
	"warn":  "WRN",
	"error": "ERR",
	"fatal": "FTL",
	"panic": "PNC",
}

// Decode parses a zerolog JSON line. Lines that are not JSON objects are
// returned with only Raw set and ok=false.
func Decode(line string) (Entry, bool) {
	entry := Entry{Raw: line}
	if !gjson.Valid(line) {
		return entry, false
	}
	root := gjson.Parse(line)
	if !root.IsObject() {
		return entry, false
	}

	root.ForEach(func(key, value gjson.Result) bool {
		switch k := key.String(); k {
		case "time":
			if ts, err := time.Parse(time.RFC3339, value.String()); err == nil {
				entry.Time = ts
			}
		case "level":
			lvl := strings.ToLower(value.String())
			if abbrev, ok := levelAbbrev[lvl]; ok {
				entry.Level = abbrev
			} else {
				entry.Level = strings.ToUpper(lvl)
			}
		case "message":
			entry.Message = value.String()
		default:
			entry.Fields = append(entry.Fields, Field{Key: k, Value: value.String()})
		}
		return true
	})
	sort.Slice(entry.Fields, func(i, j int) bool { return entry.Fields[i].Key < entry.Fields[j].Key })
	return entry, true
}

// Format renders a zerolog JSON line as "15:04:05 INF message key=value".
// Non-JSON lines are returned unchanged.
func Format(line string) string {
	entry, ok := Decode(line)
	if !ok {
		return line
	}
	return entry.String()
}

// String renders the entry in the compact console form used by the log view.
func (e Entry) String() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.In(time.Local).Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(e.Level)
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	for _, f := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		if strings.ContainsAny(f.Value, " \t") {
			b.WriteByte('"')
			b.WriteString(f.Value)
			b.WriteByte('"')
		} else {
			b.WriteString(f.Value)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
