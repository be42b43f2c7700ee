// Package tokenizer provides support for GPT-3+ token counting using the
// cl100k_base encoding. The encoding table is compiled into the binary and
// constructed once, on first use. All functions are safe for concurrent use;
// counting is CPU bound on large inputs, so callers with latency-sensitive
// work should dispatch onto their own goroutine.
package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

var (
	once sync.Once
	enc  *tiktoken.Tiktoken
)

// encoding returns the process-wide cl100k_base encoding, constructing it on
// first call. The vocabulary is bundled with the binary, so a load failure
// means the build itself is broken and there is nothing sensible to return.
func encoding() *tiktoken.Tiktoken {
	once.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())

		e, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			panic(fmt.Sprintf("tokenizer: loading cl100k_base encoding: %v", err))
		}

		enc = e
	})

	return enc
}

// TokenCount returns the number of cl100k_base tokens in the specified text
// under ordinary encoding. Token counts feed cost estimation, so they match
// the reference tokenizer exactly.
//
// A panic raised inside the encode step is converted to a count of zero so
// that no input, however malformed, can take down the calling process. This
// is a narrow safety net around the encoder, not a general error policy; a
// zero count is indistinguishable from genuinely empty input.
func TokenCount(text string) (count int) {
	bpe := encoding()

	defer func() {
		if recover() != nil {
			count = 0
		}
	}()

	return len(bpe.EncodeOrdinary(text))
}

// Encode returns the ordinary-encoding token IDs for the specified text.
// Special token strings receive no substitution and are encoded as plain
// text. Returns nil if the encoder fails internally.
func Encode(text string) (tokens []int) {
	bpe := encoding()

	defer func() {
		if recover() != nil {
			tokens = nil
		}
	}()

	return bpe.EncodeOrdinary(text)
}

// Decode reconstructs the text represented by a sequence of token IDs
// produced by Encode. Returns the empty string if the decoder fails
// internally.
func Decode(tokens []int) (text string) {
	bpe := encoding()

	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	return bpe.Decode(tokens)
}
