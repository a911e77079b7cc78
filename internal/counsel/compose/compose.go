package compose

// Overlay is the fixed emergency-resources block appended to every
// crisis reply. It is appended to the base reply, never substituted for
// it, so a user in crisis still receives contextual support.
const Overlay = "🚨 **URGENT - IMMEDIATE HELP AVAILABLE**:\n\n" +
	"If you're in immediate danger or having thoughts of self-harm, please reach out RIGHT NOW:\n\n" +
	"**Emergency Services:**\n" +
	"• Emergency: 911 (US) or your local emergency number\n" +
	"• National Suicide Prevention Lifeline: 988 (US)\n" +
	"• Crisis Text Line: Text HOME to 741741\n\n" +
	"**Campus Resources:**\n" +
	"• Campus Counselling Center (available 24/7 at most universities)\n" +
	"• Campus Security/Police\n" +
	"• Resident Advisor or Trusted Faculty Member\n\n" +
	"**Other Resources:**\n" +
	"• SAMHSA National Helpline: 1-800-662-4357\n" +
	"• International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/\n\n" +
	"Your life has value, and there are people who want to help you. Please reach out."

// Compose merges a base reply with the crisis overlay. When crisis is
// false the base reply passes through unchanged.
func Compose(base string, crisis bool) string {
	if !crisis {
		return base
	}
	if base == "" {
		return Overlay
	}
	return base + "\n\n" + Overlay
}
