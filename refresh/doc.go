// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package refresh keeps donation totals and comments in step with the ledger.

# Tick

Refresher.Tick requests GET /payments/{lnurlp} for every feature at once
and waits for all of them:

	r := refresh.NewRefresher(st, client)
	res := r.Tick(ctx)

For each feature that answered, the donation total becomes the sum of
the returned amounts and the comments become the non-blank comments in
order. Features whose fetch failed keep what they had. The merged list is
published sorted by donation total, highest first, ties in prior order.
If nothing answered the store is left alone and UpdateWarning is shown.

# Loop

Loop runs a task right away and then on a fixed interval using
robfig/cron:

	loop := refresh.NewLoop(r.Run, 10*time.Minute)
	loop.Start(ctx)
	defer loop.Stop()

Overlapping runs are allowed. Stop cancels the context of in-flight runs,
and a canceled tick never commits.
*/
package refresh
