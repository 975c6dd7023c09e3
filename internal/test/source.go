package test

import (
	"math/rand"
	"strings"
)

const validTokens = "let;mut;fn;x;y;counter;int;str;float;bool;(;);{;};:;=;->;,;\"this is a string\";\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\";\"\";+;-;*;/;%;==;!=;>=;<=;>;<;123;321;3.14;0.5;true;false;//comment\n;\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
