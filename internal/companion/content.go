package companion

import "github.com/idilsaglam/safespace/internal/model"

const Greeting = "Hi there! I'm here to listen and support you. How are you feeling today?"

var responses = map[model.Mood][]string{
	model.Difficult: {
		"I hear you, and what you're feeling is valid. Would you like to explore these feelings together?",
		"That sounds challenging. Remember, it's okay to not be okay sometimes. What do you need right now?",
		"I'm here to listen without judgment. Would you like to tell me more about what's on your mind?",
	},
	model.Neutral: {
		"How are you processing things today? Sometimes talking it out can help bring clarity.",
		"Taking time to reflect is valuable. What's on your mind today?",
		"I'm here to support you. Would you like to explore what you're feeling?",
	},
	model.Hopeful: {
		"It's wonderful to see you feeling hopeful! What's bringing you joy today?",
		"Your resilience is inspiring. Would you like to share what's helping you stay positive?",
		"I'm glad you're feeling better! Remember this feeling for times when things get tough.",
	},
}

// Responses returns the supportive messages for m. Unknown moods get the
// neutral set.
func Responses(m model.Mood) []string {
	if r, ok := responses[m]; ok {
		return r
	}
	return responses[model.Neutral]
}

var quotes = []model.Quote{
	{Text: "You are not alone in this journey. Every step forward is progress.", Author: "Self-Care Wisdom"},
	{Text: "Your feelings are valid. It's okay to take time to process them.", Author: "Mental Health Journey"},
	{Text: "Sometimes the smallest step in the right direction ends up being the biggest step of your life.", Author: "Mindful Living"},
	{Text: "Growth is not always linear. Be patient with yourself.", Author: "Personal Growth"},
	{Text: "Your worth is not measured by your productivity.", Author: "Self-Worth Reminder"},
	{Text: "Each day is a new beginning. Your past does not define your future.", Author: "Daily Wisdom"},
	{Text: "Take care of yourself as you would a dear friend.", Author: "Self-Compassion"},
	{Text: "You've overcome difficult times before. You have that strength within you.", Author: "Inner Strength"},
}

func Quotes() []model.Quote { return append([]model.Quote(nil), quotes...) }

var strategies = []model.Strategy{
	{Emoji: "🫁", Title: "Deep Breathing", Description: "Take 5 deep breaths, counting to 4 on inhale and 6 on exhale"},
	{Emoji: "🚶", Title: "Quick Walk", Description: "Go for a short walk to clear your mind"},
	{Emoji: "🎵", Title: "Music Therapy", Description: "Listen to your favorite uplifting song"},
	{Emoji: "✍️", Title: "Achievement Log", Description: "Write down three things you're proud of accomplishing"},
	{Emoji: "🤝", Title: "Connect", Description: "Reach out to a friend or family member for support"},
	{Emoji: "🎁", Title: "Self-Care", Description: "Do something kind for yourself today"},
	{Emoji: "🧘", Title: "Mindfulness", Description: "Practice mindfulness for 5 minutes"},
	{Emoji: "📝", Title: "Reflection", Description: "Write down your thoughts and feelings without judgment"},
}

func Strategies() []model.Strategy { return append([]model.Strategy(nil), strategies...) }
