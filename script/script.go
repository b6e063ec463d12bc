package script

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Script is a serialized output script.
type Script []byte

// String returns the script as lowercase hex.
func (s Script) String() string {
	return hex.EncodeToString(s)
}

// Disasm renders the script one opcode at a time, data pushes as hex.
// A push running past the end of the script is shown as [error].
func (s Script) Disasm() string {
	var parts []string
	for i := 0; i < len(s); {
		op := Opcode(s[i])
		i++
		var n int
		switch {
		case op > OP_0 && op < OP_PUSHDATA1:
			n = int(op)
		case op == OP_PUSHDATA1:
			if i+1 > len(s) {
				return strings.Join(append(parts, "[error]"), " ")
			}
			n = int(s[i])
			i++
		case op == OP_PUSHDATA2:
			if i+2 > len(s) {
				return strings.Join(append(parts, "[error]"), " ")
			}
			n = int(binary.LittleEndian.Uint16(s[i:]))
			i += 2
		case op == OP_PUSHDATA4:
			if i+4 > len(s) {
				return strings.Join(append(parts, "[error]"), " ")
			}
			n = int(binary.LittleEndian.Uint32(s[i:]))
			i += 4
		default:
			parts = append(parts, op.String())
			continue
		}
		if n > len(s)-i {
			return strings.Join(append(parts, "[error]"), " ")
		}
		parts = append(parts, hex.EncodeToString(s[i:i+n]))
		i += n
	}
	return strings.Join(parts, " ")
}
