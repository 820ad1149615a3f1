package booking

import (
	"fmt"

	"coworking/models"
)

// Amounts are computed in euro cents so every comparison stays integral.
const (
	// Coworking tariff.
	cwMorningStart = 9 * 60
	cwMorningEnd   = 12*60 + 30
	cwMorningCap   = 1400
	cwPer10Min     = 100
	cwMinPrice     = 600
	cwThreeHours   = 1800
	cwThreeHalf    = 1900
	cwForfait4h    = 2000
	cwExtraPer30   = 150 // 3€/h, billed per completed 30 min block
	cwMaxPrice     = 3200

	// Meeting-room tariff.
	mrPer10Min     = 500
	mrMinPrice     = 3000
	mrThreeHours   = 9000
	mrThreeHalf    = 9500
	mrForfait4h    = 10000
	mrMaxPrice     = 20000
	mrMaxThreshold = 7*60 + 20
)

// Price computes the cost of booking t over iv. The caller is responsible for
// having validated opening hours; Price only requires a forward interval.
func Price(t models.ResourceType, iv models.TimeInterval) (models.PricingResult, error) {
	if iv.End <= iv.Start {
		return models.PricingResult{}, NewBusinessRuleError(msgInvertedInterval)
	}
	var cents int
	var detail string
	switch t {
	case models.Coworking:
		cents, detail = priceCoworking(iv)
	case models.MeetingRoom:
		cents, detail = priceMeetingRoom(iv.Duration())
	default:
		return models.PricingResult{}, NewInputError(msgInvalidType)
	}
	return models.PricingResult{Cost: float64(cents) / 100, Detail: detail}, nil
}

// DurationHours converts an interval to fractional hours for display.
func DurationHours(iv models.TimeInterval) float64 {
	return float64(iv.Duration()) / 60
}

func priceCoworking(iv models.TimeInterval) (int, string) {
	d := iv.Duration()
	var cents int
	var detail string

	switch {
	case iv.Start >= cwMorningStart && iv.End <= cwMorningEnd && d <= 180:
		rounded := floorTo(d, 10)
		cents = clamp(rounded/10*cwPer10Min, cwMinPrice, cwMorningCap)
		if d == 180 {
			detail = "Offre matinale : 3h avant 12h30"
		} else {
			detail = fmt.Sprintf("Offre matinale : %d min (max 14€)", rounded)
		}

	case d < 240 && d >= 180:
		// Flooring to 30 min leaves exactly two buckets in [3h, 4h).
		if floorTo(d, 30) == 180 {
			cents, detail = cwThreeHours, "Tarif 3h"
		} else {
			cents, detail = cwThreeHalf, "Tarif 3h30"
		}

	case d < 180:
		rounded := floorTo(d, 10)
		cents = rounded / 10 * cwPer10Min
		if cents < cwMinPrice {
			cents, detail = cwMinPrice, "Tarif minimum"
		} else {
			detail = formatHM(rounded) + " × 1€/10min"
		}

	case d == 240:
		cents, detail = cwForfait4h, "Forfait 4h"

	default:
		extra := floorTo(d-240, 30)
		cents = cwForfait4h + extra/30*cwExtraPer30
		if extra > 0 {
			detail = fmt.Sprintf("Forfait 4h (20€) + %.1fh sup. × 3€/h", float64(extra)/60)
		} else {
			detail = "Forfait 4h"
		}
	}

	if cents > cwMaxPrice {
		cents, detail = cwMaxPrice, "Tarif maximum journalier"
	}
	return cents, detail
}

func priceMeetingRoom(d int) (int, string) {
	if d >= mrMaxThreshold {
		return mrMaxPrice, "Tarif maximum journalier (200€)"
	}
	rounded := floorTo(d, 10)
	switch {
	case rounded == 240:
		return mrForfait4h, "Forfait 4h (100€)"
	case rounded >= 180 && rounded < 240:
		if floorTo(rounded, 30) == 180 {
			return mrThreeHours, "Forfait 3h (90€)"
		}
		return mrThreeHalf, "Forfait 3h30 (95€)"
	case rounded > 240:
		extra := rounded - 240
		return mrForfait4h + extra/10*mrPer10Min,
			fmt.Sprintf("Forfait 4h (100€) + %s × 5€/10min", formatHM(extra))
	default:
		cents := rounded / 10 * mrPer10Min
		if cents < mrMinPrice {
			return mrMinPrice, "Tarif minimum (30€)"
		}
		return cents, formatHM(rounded) + " × 5€/10min"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatHM renders a minute count as "1h30", "2h" or "40min".
func formatHM(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02d", h, m)
	}
}
