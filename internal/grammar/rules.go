package grammar

import "github.com/ghettovoice/abnf"

func char(key string, c byte) abnf.Operator {
	return abnf.Range(key, []byte{c}, []byte{c})
}

var (
	alphaRule = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digitRule = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})

	schemeRule = abnf.Concat(
		"scheme",
		alphaRule,
		abnf.Repeat0Inf(
			`*( ALPHA / DIGIT / "+" / "-" / "." )`,
			abnf.AltFirst(
				`ALPHA / DIGIT / "+" / "-" / "."`,
				alphaRule,
				digitRule,
				char(`"+"`, '+'),
				char(`"-"`, '-'),
				char(`"."`, '.'),
			),
		),
	)

	portRule = abnf.Concat(
		"port",
		digitRule,
		abnf.Repeat0Inf("*DIGIT", digitRule),
	)
)
