package service

import (
	"fmt"

	"github.com/hanumanji/chalisa-bot/internal/catalog"
)

// IntroMessage greets a subscriber on /start.
const IntroMessage = "🌺 Did you always wish to learn the Hanuman Chalisa — not just recite it, " +
	"but truly understand its deep psychological and spiritual meaning?\n\n" +
	"🪔 Real learning requires consistency. With this bot, we've made it simple: " +
	"each morning, you'll receive just one Charan (half a verse), along with its meaning and insights.\n\n" +
	"✨ Stay with us for 40 days — slowly, steadily, and with devotion. " +
	"Experience the power of consistency, and the divine blessings that come from truly understanding " +
	"the last of our revealed texts.\n\n" +
	"🙏 Welcome to your Hanuman Chalisa journey."

// CompletionMessage is the terminal notice once the catalog is exhausted.
const CompletionMessage = "🎉 You've completed all days of Hanuman Chalisa learning! Jai Hanuman 🙏"

// BroadcastPrefix marks administrator broadcasts apart from daily verses.
const BroadcastPrefix = "[Broadcast] "

// RenderVerse formats one day's verse message.
func RenderVerse(day int, u catalog.Unit) string {
	return fmt.Sprintf(
		"📖 Day %d Verse:\n\n%s\n\n🌐 English: %s\n🇮🇳 Hindi: %s\n\n✨ Meaning:\n%s",
		day, u.Verse, u.TranslationEN, u.TranslationHI, u.Meaning,
	)
}

// RenderStep turns an advance outcome into message text. The second return is
// false when there is nothing to send (paused subscriber).
func RenderStep(step Step) (string, bool) {
	switch step.Kind {
	case StepVerse:
		return RenderVerse(step.Day, step.Unit), true
	case StepCompleted:
		return CompletionMessage, true
	default:
		return "", false
	}
}
