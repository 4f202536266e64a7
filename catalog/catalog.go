// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the hardcoded roadmap the store is seeded from.
package catalog

import "github.com/danielhkuo/zap-roadmap/models"

// Features returns a fresh copy of the initial roadmap. Upvotes and
// donation totals start at zero and are filled in from the ledger.
func Features() []models.Feature {
	return []models.Feature{
		{
			ID:          1,
			Name:        "Nostr Wallet Connect",
			Description: "Connect your wallet to Apps. 'Connections' will allow seamless interaction with the Nostr network, enabling users to bring their wallet into several Applications.",
			Status:      models.StatusProgress,
			Target:      500000,
			LNURLP:      "MTx7Af",
			LNURL:       "LNURL1DP68GURN8GHJ7ARFD4JKXCT5VD5X2U3WD3HXY6T5WVHXGEF0D3H82UNVWQH564RCXAQKV7J7TSN",
			Comments:    []string{},
		},
		{
			ID:          2,
			Name:        "BuhoGo Native App",
			Description: "A native app for iOS and Android with offline capabilities connected via Nostr to your Buho Wallet. Built with performance and user experience in mind, this app will provide functionality in quick on tho GO payments.",
			Status:      models.StatusProgress,
			Target:      600000,
			LNURLP:      "T7S7cy",
			LNURL:       "LNURL1DP68GURN8GHJ7ARFD4JKXCT5VD5X2U3WD3HXY6T5WVHXGEF0D3H82UNVWQH4GD6NXA3HJW978JP",
			Comments:    []string{},
		},
		{
			ID:          3,
			Name:        "Internal Chat based on Nostr",
			Description: "You will be able to chat with every Buho User via inApp Chat.",
			Status:      models.StatusPlanned,
			Target:      450000,
			LNURLP:      "LCXsAL",
			LNURL:       "LNURL1DP68GURN8GHJ7ARFD4JKXCT5VD5X2U3WD3HXY6T5WVHXGEF0D3H82UNVWQH5CS6CWDQ5C56MTH6",
			Comments:    []string{},
		},
		{
			ID:          4,
			Name:        "Launch Buho Wallet",
			Description: "A Web Based Lightning Wallet with many features and useful stuff simplified for our friends.",
			Status:      models.StatusLaunched,
			Target:      1,
			LNURLP:      "UZQmih",
			LNURL:       "LNURL1DP68GURN8GHJ7ARFD4JKXCT5VD5X2U3WD3HXY6T5WVHXGEF0D3H82UNVWQH42KJ3D45KSXEY8R6",
			Comments:    []string{},
		},
		{
			ID:          5,
			Name:        "Integrate Hardware Wallet Support",
			Description: "We consider to integrate a hardware Wallet Bridge which would enable buho to act as a frontend for your hardware wallet. Buho would never touch your keys. It interacts only as a frontend for your offline hardware wallet.",
			Status:      models.StatusIdea,
			Target:      1,
			LNURLP:      "CNK3K6",
			LNURL:       "LNURL1DP68GURN8GHJ7ARFD4JKXCT5VD5X2U3WD3HXY6T5WVHXGEF0D3H82UNVWQH5XNJTXD9NV78JCKE",
			Comments:    []string{},
		},
	}
}

// ValidStatus reports whether s is one of the four roadmap stages.
func ValidStatus(s string) bool {
	switch s {
	case models.StatusIdea, models.StatusPlanned, models.StatusProgress, models.StatusLaunched:
		return true
	}
	return false
}
