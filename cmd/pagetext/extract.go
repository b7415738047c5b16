package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagetext"
	"golang.org/x/sync/errgroup"
)

// Run extracts every URL and prints one JSON object per URL in argument
// order. Failed URLs print an error object; the command then fails.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*pagetext.Result, len(c.URLs))
	errs := make([]error, len(c.URLs))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, url := range c.URLs {
		g.Go(func() error {
			results[i], errs[i] = deps.Service.ExtractFromURL(deps.Ctx, url)
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(deps.Stdout)
	if c.Indent {
		enc.SetIndent("", "  ")
	}

	failed := 0
	for i := range c.URLs {
		var v any = results[i]
		if errs[i] != nil {
			failed++
			v = pagetext.ErrorResponse{Error: pagetext.ResponseMessage(errs[i])}
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(c.URLs))
	}
	return nil
}
