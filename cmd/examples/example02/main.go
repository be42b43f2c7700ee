// This example shows how a host application triages a batch of messages:
// each message is weighted, word-counted, and token-counted concurrently,
// then the batch is ranked by weight. Token counting is CPU bound, so the
// work is spread across goroutines instead of holding up a single thread.
//
// # Running the example:
//
//	$ go run ./cmd/examples/example02

package main

import (
	"fmt"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/agentcore/textkit/foundation/textscore"
	"github.com/agentcore/textkit/foundation/tokenizer"
)

type triagedMessage struct {
	text   string
	weight float64
	words  int
	tokens int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	messages := []string{
		"hey thanks for the update",
		"URGENT: the production database is down, need help immediately",
		"lol ok sure",
		"Can you review the deployment plan before tomorrow?",
		"The weekly report is attached for your records.",
	}

	results := make([]triagedMessage, len(messages))

	var g errgroup.Group
	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			results[i] = triagedMessage{
				text:   msg,
				weight: textscore.CalculateWeight(msg),
				words:  textscore.WordCount(msg),
				tokens: tokenizer.TokenCount(msg),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("triage: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].weight > results[j].weight
	})

	for _, r := range results {
		fmt.Printf("weight %.3f  words %2d  tokens %2d  %q\n", r.weight, r.words, r.tokens, r.text)
	}

	return nil
}
