// This example shows how to count cl100k_base tokens with the tokenizer
// package. Token counts drive downstream cost estimation, so they match the
// reference tokenizer exactly and never vary between runs.
//
// # Running the example:
//
//	$ go run ./cmd/examples/example01

package main

import (
	"fmt"

	"github.com/agentcore/textkit/foundation/tokenizer"
)

func main() {
	texts := []string{
		"hello world",
		"Is this urgent? Please respond immediately.",
		"The quick brown fox jumps over the lazy dog.",
		"日本語のテキストです",
		"",
	}

	for _, text := range texts {
		fmt.Printf("%3d tokens: %q\n", tokenizer.TokenCount(text), text)
	}

	// -------------------------------------------------------------------------

	// Encode exposes the token IDs behind a count, and Decode reverses it.
	text := "hello world"
	tokens := tokenizer.Encode(text)

	fmt.Printf("\n%q -> %v -> %q\n", text, tokens, tokenizer.Decode(tokens))
}
