package classify

// relevanceKeywords is the broader support vocabulary checked only
// after every rule has failed to match. A hit here selects the generic
// empathetic reply; no hit at all selects the off-topic redirect.
var relevanceKeywords = []string{
	"exam", "study", "grades", "anxiety", "nervous", "panic", "lonely", "alone", "isolated",
	"overwhelmed", "too much", "pressure", "sleep", "tired", "exhausted", "friend", "relationship",
	"roommate", "future", "career", "job", "comparison", "better than me", "motivation", "lazy",
	"stress", "burnout", "parents", "family", "depression", "sad", "eating", "homesick", "breakup",
	"presentation", "confidence", "self-esteem", "money", "financial", "group project", "professor",
	"time management", "deadline", "failure", "failed", "concentration", "focus", "doubt", "imposter",
	"drugs", "alcohol", "exercise", "identity", "bullying", "harass", "change major", "discrimination",
	"transfer", "graduation", "religion", "faith", "lgbtq", "sexuality", "gender", "pregnancy",
	"grief", "death", "adhd", "disability", "social media", "purpose", "meaning", "creativity",
	"language", "international", "hate", "fake", "club", "help", "worried", "scared",
	"afraid", "concern", "problem", "struggle", "difficult", "hard time", "upset", "frustrated",
	"angry", "confused", "lost", "stuck", "feel", "feeling", "emotion", "engineering", "medical",
	"coding", "programming", "hackathon", "neet", "jee", "board", "10th", "12th", "olympiad",
	"cs", "tech", "developer", "residency", "mbbs", "clinical", "stream", "pcm", "pcb",
}

const generalSupportReply = `Thanks for sharing that with me. Your feelings are valid, and it's okay to talk about them.

Sometimes just putting thoughts into words makes things lighter. You're not alone, and I'm here to listen.

Can you tell me a bit more about what's been on your mind lately?`

const offTopicReply = `I appreciate you reaching out, but I'm specifically designed to provide mental health and emotional support for students and young adults facing challenges.

I'm here to help with things like academic stress, anxiety, relationships, career worries, personal struggles, and general wellbeing concerns—especially for students in engineering, CS, medical fields, or high school.

Is there something on your mind that's been bothering you lately? I'm here to listen and support you.`
