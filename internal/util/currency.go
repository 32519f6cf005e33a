// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ilPrinter formats numbers and currency the way the clinic's locale does.
var ilPrinter = message.NewPrinter(language.MustParse("he-IL"))

// ils is the new shekel currency unit.
var ils = currency.MustParseISO("ILS")

// FormatILS renders an amount in new shekels, e.g. "‏250.00 ₪".
func FormatILS(amount float64) string {
	return ilPrinter.Sprintf("%v", currency.NarrowSymbol(ils.Amount(amount)))
}

// FormatCount renders an integer with locale digit grouping.
func FormatCount(n int) string {
	return ilPrinter.Sprintf("%d", n)
}
