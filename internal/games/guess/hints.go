package guess

import (
	"fmt"
	"time"

	"github.com/vovakirdan/number-master/internal/config"
)

func startHint(p config.Profile) string {
	return fmt.Sprintf("🎯 I'm thinking of a number between %d and %d. You have %d guesses and %d seconds!",
		p.Min, p.Max, p.MaxGuesses, p.TimeLimitSeconds)
}

func outOfRangeHint(p config.Profile) string {
	return fmt.Sprintf("❌ Please enter a number between %d and %d", p.Min, p.Max)
}

const duplicateHint = "⚠️ You already guessed that number! Try a different one."

func winHint(target, count int, elapsed time.Duration) string {
	noun := "guesses"
	if count == 1 {
		noun = "guess"
	}
	return fmt.Sprintf("🎉 CONGRATULATIONS! 🎉 You found the number %d in %d %s and %.1f seconds! You're amazing! 🌟",
		target, count, noun, elapsed.Seconds())
}

func lossHint(target int) string {
	return fmt.Sprintf("💔 Game over! The number was %d. Don't give up - try again!", target)
}

func timeoutHint(target int) string {
	return fmt.Sprintf("⏰ Time's up! The number was %d. Better luck next time!", target)
}

var bandPhrases = map[Band]string{
	BandVeryHot:  "🔥 Very hot! You're extremely close!",
	BandHot:      "♨️ Hot! You're getting close!",
	BandWarm:     "🌡️ Warm! You're on the right track!",
	BandCold:     "❄️ Cold! You're getting further away.",
	BandVeryCold: "🧊 Very cold! Way off target!",
}

func proximityHint(b Band, d Direction, left int) string {
	turn := "Try higher!"
	if d == DirectionLower {
		turn = "Try lower!"
	}
	noun := "guesses"
	if left == 1 {
		noun = "guess"
	}
	return fmt.Sprintf("%s %s (%d %s left)", bandPhrases[b], turn, left, noun)
}
