// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the in-memory feature list rendered by the site.

The list is published as an immutable Snapshot through an atomic pointer,
so page renders never observe a half-applied refresh. Writers go through
Update or CompleteRefresh, which hand the callback a private copy of the
latest list and swap in whatever it returns:

	st.Update(func(fs []models.Feature) ([]models.Feature, bool) {
		fs[0].Upvotes = 7
		store.SortByUpvotes(fs)
		return fs, true
	})

Both sort helpers are stable.
*/
package store
