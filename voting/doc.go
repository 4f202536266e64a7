// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting merges ledger vote counts into the store and performs
visitor votes.

# Sync

On startup the site loads GET /votes and sets each feature's upvotes to
the ledger value. Features the ledger does not mention keep their count.

# Vote

	g := guard.New(guard.NewCookieStore(w, r))
	out, err := svc.Vote(ctx, g, id)

A present marker rejects the vote with ErrAlreadyVoted before any network
call. Otherwise POST /vote is sent and the returned count replaces the
local one; it is not incremented. The marker is only set after the ledger
accepted the vote, so ErrVoteFailed leaves the visitor free to retry.

Every outcome carries a Notice to show the visitor.
*/
package voting
