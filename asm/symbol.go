package asm

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/hackasm/internal"
)

const (
	VARIABLE_BASE = uint16(16)     // First RAM address for user variables.
	SCREEN_BASE   = uint16(0x4000) // Screen memory map.
	KBD_BASE      = uint16(0x6000) // Keyboard memory map.
	ADDRESS_LIMIT = uint16(0x7fff) // Largest encodable A-instruction value.
	ADDRESS_MAX   = uint16(0xffff) // Counters stop here instead of wrapping.
)

// predefinedOrder is the canonical listing order of the predefined symbols.
var predefinedOrder = []string{
	"SP", "LCL", "ARG", "THIS", "THAT",
	"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
	"R8", "R9", "R10", "R11", "R12", "R13", "R14", "R15",
	"SCREEN", "KBD",
}

var predefinedSymbols = func() map[string]uint16 {
	symbols := map[string]uint16{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": SCREEN_BASE,
		"KBD":    KBD_BASE,
	}
	for r := range uint16(16) {
		symbols[fmt.Sprintf("R%d", r)] = r
	}
	return symbols
}()

// SymbolTable maps symbol names to addresses for a single assembly run.
//
// Insertion is first-write-wins: once a name is bound its address never
// changes.
type SymbolTable struct {
	Rom      uint16 // Address of the next instruction, advanced during the first pass.
	Variable uint16 // Address of the next variable, advanced during the second pass.

	symbols map[string]uint16
	order   []string // User symbols in insertion order.
}

// NewSymbolTable creates a table seeded with the predefined symbols.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{
		Variable: VARIABLE_BASE,
		symbols:  make(map[string]uint16, len(predefinedSymbols)+16),
	}

	for name, address := range predefinedSymbols {
		st.symbols[name] = address
	}

	return
}

// Insert binds name to address, unless name is already bound.
func (st *SymbolTable) Insert(name string, address uint16) {
	if st.Has(name) {
		return
	}
	st.symbols[name] = address
	st.order = append(st.order, name)
}

// Has returns true if name is bound.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// Get returns the address bound to name.
func (st *SymbolTable) Get(name string) (address uint16, ok bool) {
	address, ok = st.symbols[name]
	return
}

// InsertLabel binds a label to the current instruction address.
func (st *SymbolTable) InsertLabel(name string) {
	st.Insert(name, st.Rom)
}

// InsertVariable binds a new variable to the next free RAM address.
// Already bound names are left alone and do not consume an address.
// Past ADDRESS_LIMIT the encoder rejects the address.
func (st *SymbolTable) InsertVariable(name string) {
	if st.Has(name) {
		return
	}
	st.Insert(name, st.Variable)
	if st.Variable < ADDRESS_MAX {
		st.Variable++
	}
}

// Len returns the number of bound symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates the predefined symbols, then user symbols in insertion order.
func (st *SymbolTable) All() iter.Seq2[string, uint16] {
	return internal.IterSeq2Concat(
		internal.IterKeysLookup(predefinedOrder, st.symbols),
		internal.IterKeysLookup(slices.Clip(st.order), st.symbols),
	)
}

// IsPredefined returns true if name is one of the built-in symbols.
func IsPredefined(name string) bool {
	_, ok := predefinedSymbols[name]
	return ok
}
