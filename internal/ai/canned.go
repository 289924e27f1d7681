package ai

import (
	"math/rand"
	"sync"
	"time"
)

// Canned replies keyed by character name, used whenever no live
// completion is available. Each known character has a fixed set of four
// responses; unknown characters fall back to Maya's set. The reply
// never depends on the user's message.

const defaultCharacterName = "Maya"

var cannedReplies = map[string][]string{
	"Maya": {
		"That's such an interesting perspective! ✨ I love how you think about things. What if we explored that idea further?",
		"Oh wow, that really sparks my creativity! 🎨 I'm getting so many ideas just from what you said!",
		"I'm absolutely fascinated by your thoughts! This opens up so many wonderful possibilities!",
		"You know what? That reminds me of something beautiful - the way ideas can bloom when we give them space to grow! 🌸",
	},
	"Professor Sage": {
		"That raises a fascinating philosophical question. Throughout history, thinkers have grappled with similar ideas...",
		"Your observation touches upon a fundamental aspect of human experience. Consider how this relates to...",
		"An excellent point worthy of deeper contemplation. This reminds me of the ancient Greek concept of...",
		"Indeed, this connects to broader questions about the nature of knowledge and understanding...",
	},
	"Echo": {
		"Like whispers in the wind, your words carry deeper meanings... What echoes do you hear in the silence between thoughts?",
		"In the mirror of your question, I see reflections of ancient truths... What if the answer lies not in knowing, but in being?",
		"Your thoughts are like ripples on still water, creating patterns that speak of hidden depths...",
		"Ah, you speak of things that dance at the edge of understanding... Perhaps the mystery itself is the answer?",
	},
	"Zara": {
		"That's cutting-edge thinking! 🚀 Have you seen the latest developments in that area? The technology is evolving so fast!",
		"Absolutely mind-blowing! This could revolutionize how we approach the problem. Imagine the possibilities!",
		"You're totally on the right track! The future applications of this could be incredible!",
		"That's exactly the kind of innovative thinking we need! 💡 What other technologies could we combine with this?",
	},
}

// CannedReplies returns the fixed response set for a character name,
// falling back to the default set for unknown names.
func CannedReplies(characterName string) []string {
	if replies, ok := cannedReplies[characterName]; ok {
		return replies
	}
	return cannedReplies[defaultCharacterName]
}

// Responder draws canned replies from a pseudo-random source. The
// source is injectable so tests can pin the selection sequence.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder returns a Responder seeded from the clock.
func NewResponder() *Responder {
	return NewResponderWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewResponderWithSource returns a Responder backed by the given source.
func NewResponderWithSource(src rand.Source) *Responder {
	return &Responder{rng: rand.New(src)}
}

// Reply picks one canned response for the named character.
func (r *Responder) Reply(characterName string) string {
	replies := CannedReplies(characterName)

	r.mu.Lock()
	defer r.mu.Unlock()
	return replies[r.rng.Intn(len(replies))]
}
