package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/billbook/internal/cli"
	"github.com/Veraticus/billbook/internal/common"
	"github.com/Veraticus/billbook/internal/config"
	"github.com/Veraticus/billbook/internal/ledger"
	"github.com/Veraticus/billbook/internal/ofx"
)

// loadStore builds the session store from the OFX seed file when one is
// configured and from the sample bills otherwise. Import progress goes to
// progress; pass io.Discard to hide it.
func loadStore(ctx context.Context, s config.Settings, now time.Time, progress io.Writer) (*ledger.Store, error) {
	if s.SeedOFX == "" {
		seed := ledger.DefaultSeed(now)
		common.LogInfo("Loaded sample bills", common.Fields{"bills": len(seed)})
		return ledger.NewStore(seed), nil
	}

	f, err := os.Open(s.SeedOFX)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	bills, err := ofx.NewParser().ParseFile(ctx, f)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not read %s as an OFX statement", filepath.Base(s.SeedOFX)),
			err,
		)
	}

	store := ledger.NewStore(nil)
	bar := cli.NewProgressBar(progress, len(bills), "Loading bills")
	for _, bill := range bills {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		store.Add(bill)
		cli.Step(bar)
	}

	common.LogInfo("Loaded bills from statement", common.Fields{
		"file":  filepath.Base(s.SeedOFX),
		"bills": store.Len(),
	})
	return store, nil
}
