package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalAddress evaluates a compile-time expression to an address. Every
// symbol already bound in st is visible as an integer global.
func evalAddress(expr string, st *SymbolTable) (address uint16, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, value := range st.All() {
		pred[name] = starlark.MakeInt(int(value))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseNumber(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseNumber(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > int64(ADDRESS_LIMIT) {
		err = ErrParseNumber(st_int.String())
		return
	}

	address = uint16(st_int64)
	return
}
