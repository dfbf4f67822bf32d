package asm

// FirstPass binds every label definition to the address of the instruction
// following it. Label definitions do not occupy an instruction slot.
func FirstPass(cmds []Command, st *SymbolTable) {
	st.Rom = 0
	for _, cmd := range cmds {
		if label, ok := cmd.(LabelDefinition); ok {
			st.InsertLabel(label.Label)
			continue
		}
		if st.Rom < ADDRESS_MAX {
			st.Rom++
		}
	}
}

// SecondPass removes label definitions and replaces each symbolic address
// with a concrete address, allocating variables as they are first seen.
func SecondPass(cmds []Command, st *SymbolTable) (resolved []Command) {
	resolved = make([]Command, 0, len(cmds))
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case LabelDefinition:
			continue
		case SymbolicAddress:
			st.InsertVariable(cmd.Label)
			address, _ := st.Get(cmd.Label)
			resolved = append(resolved, AddressCommand{Address: address})
		default:
			resolved = append(resolved, cmd)
		}
	}

	return
}
