package jvm

// Access flags.
const (
	AccPublic    uint16 = 0x0001
	AccPrivate   uint16 = 0x0002
	AccStatic    uint16 = 0x0008
	AccFinal     uint16 = 0x0010
	AccSuper     uint16 = 0x0020
	AccSynthetic uint16 = 0x1000
)

// Class file versions.
const (
	Java8 uint16 = 52
)

// Opcodes emitted by Code.
const (
	OpAConstNull      byte = 0x01
	OpLdc             byte = 0x12
	OpLdcW            byte = 0x13
	OpALoad           byte = 0x19
	OpALoad0          byte = 0x2a
	OpALoad1          byte = 0x2b
	OpALoad2          byte = 0x2c
	OpALoad3          byte = 0x2d
	OpPop             byte = 0x57
	OpAReturn         byte = 0xb0
	OpReturn          byte = 0xb1
	OpInvokeVirtual   byte = 0xb6
	OpInvokeStatic    byte = 0xb8
	OpInvokeInterface byte = 0xb9
	OpCheckCast       byte = 0xc0
)

var mnemonics = map[byte]string{
	OpAConstNull:      "ACONST_NULL",
	OpLdc:             "LDC",
	OpLdcW:            "LDC_W",
	OpALoad:           "ALOAD",
	OpALoad0:          "ALOAD_0",
	OpALoad1:          "ALOAD_1",
	OpALoad2:          "ALOAD_2",
	OpALoad3:          "ALOAD_3",
	OpPop:             "POP",
	OpAReturn:         "ARETURN",
	OpReturn:          "RETURN",
	OpInvokeVirtual:   "INVOKEVIRTUAL",
	OpInvokeStatic:    "INVOKESTATIC",
	OpInvokeInterface: "INVOKEINTERFACE",
	OpCheckCast:       "CHECKCAST",
}

// operandSize is the number of operand bytes following each opcode.
var operandSize = map[byte]int{
	OpAConstNull:      0,
	OpLdc:             1,
	OpLdcW:            2,
	OpALoad:           1,
	OpALoad0:          0,
	OpALoad1:          0,
	OpALoad2:          0,
	OpALoad3:          0,
	OpPop:             0,
	OpAReturn:         0,
	OpReturn:          0,
	OpInvokeVirtual:   2,
	OpInvokeStatic:    2,
	OpInvokeInterface: 4,
	OpCheckCast:       2,
}

// Mnemonic returns the assembler name of op.
func Mnemonic(op byte) string {
	if m, ok := mnemonics[op]; ok {
		return m
	}

	return "UNKNOWN"
}
