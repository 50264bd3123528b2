package main

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
)

// dec parses a decimal literal, panicking on malformed input. Every
// caller in this package passes a literal constant, so a parse failure
// here means a bug in this file, not bad user input.
func dec(s string) bigint.Uint {
	v, err := codec.ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}

// smallModulus/smallExponent (n=35=5*7, e=5) is the illustrative
// encrypt-only pair used by verify/test/boundary. wideModulus/
// widePublicExp/widePrivateExp (n=143=11*13, e=7, d=103) is the
// round-trip pair used by manual/roundtrip/verify/montgomery.
const (
	smallModulus    = "35"
	smallExponent   = "5"
	wideModulus     = "143"
	widePublicExp   = "7"
	widePrivateExp  = "103"
	demoMessageBits = "123456789012345678901234567890"
)
