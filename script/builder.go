// Package script assembles the output scripts that lock coins to an address.
// It only emits opcodes; it does not execute them.
package script

import (
	"encoding/binary"
	"math"
)

// Builder appends opcodes and data pushes to a script.
type Builder struct {
	script Script
}

func NewBuilder() *Builder {
	return &Builder{}
}

// PushOpcode appends a bare opcode.
func (b *Builder) PushOpcode(op Opcode) *Builder {
	b.script = append(b.script, byte(op))
	return b
}

// PushSlice appends data with the shortest push prefix for its length.
func (b *Builder) PushSlice(data []byte) *Builder {
	n := len(data)
	switch {
	case n < int(OP_PUSHDATA1):
		b.script = append(b.script, byte(n))
	case n <= math.MaxUint8:
		b.script = append(b.script, byte(OP_PUSHDATA1), byte(n))
	case n <= math.MaxUint16:
		b.script = append(b.script, byte(OP_PUSHDATA2))
		b.script = binary.LittleEndian.AppendUint16(b.script, uint16(n))
	default:
		b.script = append(b.script, byte(OP_PUSHDATA4))
		b.script = binary.LittleEndian.AppendUint32(b.script, uint32(n))
	}
	b.script = append(b.script, data...)
	return b
}

// PushInt pushes -1 and 0..16 as single opcodes and anything else as a
// minimally encoded script number.
func (b *Builder) PushInt(n int64) *Builder {
	switch {
	case n == -1:
		return b.PushOpcode(OP_1NEGATE)
	case n == 0:
		return b.PushOpcode(OP_0)
	case n >= 1 && n <= 16:
		return b.PushOpcode(OP_1 + Opcode(n-1))
	}
	return b.PushSlice(scriptNum(n))
}

// Script returns a copy of the script built so far.
func (b *Builder) Script() Script {
	return append(Script(nil), b.script...)
}

// scriptNum is little endian magnitude with the sign in the top bit of the
// last byte.
func scriptNum(n int64) []byte {
	if n == 0 {
		return nil
	}
	neg := n < 0
	abs := uint64(n)
	if neg {
		abs = uint64(-n)
	}
	var out []byte
	for abs > 0 {
		out = append(out, byte(abs&0xff))
		abs >>= 8
	}
	if out[len(out)-1]&0x80 != 0 {
		if neg {
			out = append(out, 0x80)
		} else {
			out = append(out, 0x00)
		}
	} else if neg {
		out[len(out)-1] |= 0x80
	}
	return out
}

// PayToPubkeyHash is OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubkeyHash(hash []byte) Script {
	return NewBuilder().
		PushOpcode(OP_DUP).
		PushOpcode(OP_HASH160).
		PushSlice(hash).
		PushOpcode(OP_EQUALVERIFY).
		PushOpcode(OP_CHECKSIG).
		Script()
}

// PayToScriptHash is OP_HASH160 <hash> OP_EQUAL.
func PayToScriptHash(hash []byte) Script {
	return NewBuilder().
		PushOpcode(OP_HASH160).
		PushSlice(hash).
		PushOpcode(OP_EQUAL).
		Script()
}
