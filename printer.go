package lambdatron

import (
	"strconv"
	"strings"
)

var charNames = map[rune]string{
	' ':  "space",
	'\t': "tab",
	'\n': "newline",
	'\r': "return",
	'\b': "backspace",
	'\f': "formfeed",
}

var stringEscapeReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
)

// Print renders v in its readable form. Functions, macros and recur
// sentinels print as `#<...>` diagnostic forms that do not re-read;
// built-ins and special forms print as their bare names and regex
// literals as `#"pattern"`. For plain data values the output re-reads to
// an equal value. Maps print in their stable per-instance order.
func Print(v *Value) string {
	var sb strings.Builder
	printTo(&sb, v)
	return sb.String()
}

func printTo(sb *strings.Builder, v *Value) {
	switch v.Kind {
	case KindNil:
		sb.WriteString("nil")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		sb.WriteString(s)
	case KindChar:
		sb.WriteByte('\\')
		if name, ok := charNames[v.Char]; ok {
			sb.WriteString(name)
		} else {
			sb.WriteRune(v.Char)
		}
	case KindStr:
		sb.WriteByte('"')
		sb.WriteString(stringEscapeReplacer.Replace(v.Str))
		sb.WriteByte('"')
	case KindRegex:
		sb.WriteString("#\"")
		sb.WriteString(v.Str)
		sb.WriteByte('"')
	case KindKeyword:
		sb.WriteByte(':')
		sb.WriteString(v.SymName)
	case KindSymbol:
		sb.WriteString(v.SymName)
	case KindList:
		sb.WriteByte('(')
		first := true
		for c := v.list; c != nil; c = c.tail {
			if !first {
				sb.WriteByte(' ')
			}
			printTo(sb, c.head)
			first = false
		}
		sb.WriteByte(')')
	case KindVector:
		sb.WriteByte('[')
		for i, e := range v.Vector {
			if i > 0 {
				sb.WriteByte(' ')
			}
			printTo(sb, e)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, kv := range v.MapEntries() {
			if i > 0 {
				sb.WriteString(", ")
			}
			printTo(sb, kv[0])
			sb.WriteByte(' ')
			printTo(sb, kv[1])
		}
		sb.WriteByte('}')
	case KindFunction:
		if v.Fn.Name != "" {
			sb.WriteString("#<function " + v.Fn.Name + ">")
		} else {
			sb.WriteString("#<function>")
		}
	case KindBuiltIn:
		sb.WriteString(v.BuiltinName)
	case KindSpecial:
		sb.WriteString(v.SpecialName)
	case KindMacro:
		sb.WriteString("#<macro " + v.Macro.Name + ">")
	case KindReaderMacro:
		switch v.RMKind {
		case RMQuote:
			sb.WriteByte('\'')
		case RMSyntaxQuote:
			sb.WriteByte('`')
		case RMUnquote:
			sb.WriteByte('~')
		case RMUnquoteSplice:
			sb.WriteString("~@")
		}
		printTo(sb, v.RMInner)
	case KindRecurSentinel:
		sb.WriteString("#<recur>")
	}
}

// displayString renders v the way `.print` and `.str` show it: strings
// and characters appear raw, everything else uses its readable form.
func displayString(v *Value) string {
	switch v.Kind {
	case KindStr:
		return v.Str
	case KindChar:
		return string(v.Char)
	default:
		return Print(v)
	}
}
