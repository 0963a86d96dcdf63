package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// toGoValue converts a Lua value for use as action arguments. Tables with
// keys 1..n become []any, other tables map[string]any. Functions, userdata
// and cycles become nil.
func toGoValue(lv lua.LValue) any {
	return convertValue(lv, make(map[*lua.LTable]bool))
}

func convertValue(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		return convertTable(v, visited)
	}
	return nil
}

func convertTable(t *lua.LTable, visited map[*lua.LTable]bool) any {
	n := t.Len()
	count := 0
	t.ForEach(func(_, _ lua.LValue) { count++ })

	if n > 0 && n == count {
		out := make([]any, n)
		for i := 1; i <= n; i++ {
			out[i-1] = convertValue(t.RawGetInt(i), visited)
		}
		return out
	}

	out := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		out[lua.LVAsString(k)] = convertValue(v, visited)
	})
	return out
}

// tableToArgs converts an args table; anything else yields nil.
func tableToArgs(lv lua.LValue) map[string]any {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil
	}
	m, ok := convertTable(t, map[*lua.LTable]bool{t: true}).(map[string]any)
	if !ok {
		return nil
	}
	return m
}
