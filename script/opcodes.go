package script

import "fmt"

// Opcode is a single script instruction byte.
type Opcode byte

// Opcodes emitted by the builder. Bytes 0x01-0x4b push that many bytes.
const (
	OP_0           Opcode = 0x00
	OP_PUSHDATA1   Opcode = 0x4c
	OP_PUSHDATA2   Opcode = 0x4d
	OP_PUSHDATA4   Opcode = 0x4e
	OP_1NEGATE     Opcode = 0x4f
	OP_1           Opcode = 0x51
	OP_16          Opcode = 0x60
	OP_DUP         Opcode = 0x76
	OP_EQUAL       Opcode = 0x87
	OP_EQUALVERIFY Opcode = 0x88
	OP_HASH160     Opcode = 0xa9
	OP_CHECKSIG    Opcode = 0xac
)

var opcodeNames = map[Opcode]string{
	OP_0:           "OP_0",
	OP_PUSHDATA1:   "OP_PUSHDATA1",
	OP_PUSHDATA2:   "OP_PUSHDATA2",
	OP_PUSHDATA4:   "OP_PUSHDATA4",
	OP_1NEGATE:     "OP_1NEGATE",
	OP_DUP:         "OP_DUP",
	OP_EQUAL:       "OP_EQUAL",
	OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_HASH160:     "OP_HASH160",
	OP_CHECKSIG:    "OP_CHECKSIG",
}

func (op Opcode) String() string {
	if op >= OP_1 && op <= OP_16 {
		return fmt.Sprintf("OP_%d", op-OP_1+1)
	}
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN<0x%02x>", byte(op))
}
