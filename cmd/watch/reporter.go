package watch

import (
	"bytes"
	"context"
	"io"
	"slices"
	"sync"

	"github.com/LegacyCodeHQ/resprune/cmd/prune"
	"github.com/LegacyCodeHQ/resprune/resources"
)

// reporter runs dry scans and prints a report whenever the unused set
// differs from the last one printed.
type reporter struct {
	mu      sync.Mutex
	out     io.Writer
	printed bool
	latest  []string
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out}
}

func (r *reporter) rescan(ctx context.Context, cfg resources.Config) error {
	cfg.DryRun = true
	result, err := resources.FindUnused(ctx, cfg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.publish(result)
}

func (r *reporter) publish(result resources.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.printed && slices.Equal(r.latest, result.Unused) {
		return nil
	}

	var buf bytes.Buffer
	if err := prune.WriteReport(&buf, result); err != nil {
		return err
	}
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return err
	}

	r.printed = true
	r.latest = slices.Clone(result.Unused)
	return nil
}
