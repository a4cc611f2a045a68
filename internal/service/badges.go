package service

import (
	"time"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
)

// speedBadgeSecondsPerQuestion is the average answer time below which the
// speed badge is awarded.
const speedBadgeSecondsPerQuestion = 8.0

// seniorDevMoneyThreshold is the terminal money needed for the knowledge badge.
const seniorDevMoneyThreshold = 40_000

// computeBadges evaluates the badge set once, at session termination.
// Insertion order is the display order: Champion, Speed Runner, Senior Dev.
func computeBadges(sess *model.GameSession, won bool, now time.Time) []string {
	badges := []string{}

	if won {
		badges = append(badges, model.BadgeChampion)
	}

	answered := sess.CurrentIndex
	if answered < 1 {
		answered = 1
	}
	elapsed := now.Sub(sess.StartedAt).Seconds()
	if elapsed/float64(answered) < speedBadgeSecondsPerQuestion {
		badges = append(badges, model.BadgeSpeedRunner)
	}

	if sess.Money >= seniorDevMoneyThreshold {
		badges = append(badges, model.BadgeSeniorDev)
	}

	return badges
}
