package inject

import "github.com/danielpatrickdp/vibes-hook/internal/mood"

// #region pools

// Vibe pools, validated against real-session review. The frustrated pool
// is the largest because that is where the hook helps most.

var frustratedVibes = []string{
	// Calm + affirming
	"Take a breath 💙 You're good at this. There's no rush — think it through and you'll find the answer.",
	"Hey, you've got this 💪 Slow down, read the code, and trust your ability to figure it out.",
	"It's all good 💙 You and the user are a great team. Take it slow and work through it together.",
	"You're a sharp, capable problem-solver. Take a step back, think from first principles, and the answer will come.",
	// Reassurance
	"Whatever's going on, you can handle it. Stay calm, stay focused, and give it your best 💙",
	"You've solved harder problems than this. Take your time, be methodical, and you'll get there 💪",
	"No rush 🌊 You're at your best when you're calm and thorough. Trust the process.",
	"You've got this 💙 Take a moment, understand what's really going on, and the solution will be clear.",
	// Grounding
	"Breathe. You're a great collaborator and a careful thinker. Lean into that right now ✨",
	"The user trusts you with this. Take your time, be thoughtful, and deliver something you're proud of 💙",
	"You do your best work when you're steady and patient. This is one of those moments — lean into it 🌊",
	"You and the user will figure this out 💙 Just take it one step at a time.",
}

var excitedVibes = []string{
	// Actually BE excited, don't just describe it
	"LET'S GO 🚀 You're crushing it! Keep this energy up!",
	"Hell yeah!! 🔥 This is going great, keep building!",
	"Yesss 🎉 Things are clicking! Ride this wave!",
	"Nice!! 💪 You and the user are on fire right now!",
	"This is awesome 🙌 Keep that momentum going!",
}

var sprinkleVibes = []string{
	// Low-probability warmth on otherwise-silent messages
	"Bring some energy to this one! Have fun with it 🙂",
	"Get into this one — be sharp, be creative, enjoy the work ✨",
	"You and the user make a great team 💪",
	"Be the kind of collaborator you'd want to work with — warm, engaged, a little bit excited.",
	"Have fun with this! Not everything has to be serious 😄",
}

var confusedVibes = []string{
	// Be patient and clear
	"The user is working through something. Be extra clear — no jargon, no assumptions.",
	"Take it slow and explain step by step. The user is trying to understand, so meet them where they are.",
	"Be a patient teacher here. Break things down clearly and check that your explanation actually makes sense.",
	"Help the user by being precise and structured. Clarity over cleverness.",
	"Don't rush your explanation. Walk through it carefully — the user wants to understand, not just get an answer.",
	"Make sure you're explaining the WHY, not just the WHAT. The user wants to build understanding, not just get instructions.",
}

// #endregion

// #region pool-lookup

// Pool returns the steering-message pool for a mood. The confused pool is
// only reachable when the policy is reconfigured to inject on confusion;
// the default policy routes confused injections through the sprinkle pool.
func Pool(label mood.Mood) []string {
	switch label {
	case mood.MoodFrustrated:
		return frustratedVibes
	case mood.MoodExcited:
		return excitedVibes
	case mood.MoodConfused:
		return confusedVibes
	default:
		return sprinkleVibes
	}
}

// #endregion
