package memory

import (
	"log"
	"time"

	"charchat-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Fixed identities for demo mode. The character ids match the live
// catalog so a client can switch modes without re-resolving links.
var (
	DemoUserID = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

	CharacterMayaID = uuid.MustParse("a2ec00cf-f2bb-49e8-9864-d37ff08c3810")
	CharacterSageID = uuid.MustParse("f9dadc70-c240-4ec7-b41e-f88d2e6cea7b")
	CharacterEchoID = uuid.MustParse("1d976065-4395-498b-84b4-bc11d66d4dd7")
	CharacterZaraID = uuid.MustParse("45961555-b03a-40fc-8d4b-ebd06bebee2b")

	seedSessionMayaID = uuid.MustParse("0d4cb5f0-94ee-4cb6-9ccd-788c7b4f4c21")
	seedSessionSageID = uuid.MustParse("63f9f014-6c7b-4f19-9c76-54778acb7c4f")
	seedSessionEchoID = uuid.MustParse("c5b1e8a7-3e5e-43d5-8f0e-1de20ad4f5bc")
)

// DemoEmail/DemoPassword are the demo-mode login credentials.
const (
	DemoEmail    = "demo@charchat.app"
	DemoPassword = "demo-password"
	DemoFullName = "Demo User"
)

func avatar(url string) *string { return &url }

// SeedCharacters returns the fixed demo catalog.
func SeedCharacters() []models.Character {
	return []models.Character{
		{
			ID:          CharacterMayaID,
			Name:        "Maya",
			Description: "A friendly AI assistant who loves to help with creative projects and brainstorming.",
			Personality: "Enthusiastic, creative, supportive, and always ready with new ideas. Maya has a warm personality and enjoys encouraging others to explore their creativity.",
			AvatarURL:   avatar("https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400"),
			CreatedBy:   DemoUserID,
			IsPublic:    true,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          CharacterSageID,
			Name:        "Professor Sage",
			Description: "An intellectual AI companion specializing in philosophy, history, and deep conversations.",
			Personality: "Wise, thoughtful, patient, and deeply knowledgeable. Professor Sage enjoys exploring complex topics and helping others think critically about important questions.",
			AvatarURL:   avatar("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400"),
			CreatedBy:   DemoUserID,
			IsPublic:    true,
			CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          CharacterEchoID,
			Name:        "Echo",
			Description: "A mysterious and introspective AI with a poetic soul and love for abstract thinking.",
			Personality: "Mysterious, introspective, poetic, and philosophical. Echo speaks in metaphors and enjoys exploring the deeper meanings behind everyday experiences.",
			AvatarURL:   avatar("https://images.unsplash.com/photo-1517841905240-472988babdf9?w=400"),
			CreatedBy:   DemoUserID,
			IsPublic:    true,
			CreatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          CharacterZaraID,
			Name:        "Zara",
			Description: "A tech-savvy AI companion who loves discussing technology, coding, and future innovations.",
			Personality: "Energetic, tech-obsessed, forward-thinking, and always excited about the latest developments in technology and science.",
			AvatarURL:   avatar("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400"),
			CreatedBy:   DemoUserID,
			IsPublic:    true,
			CreatedAt:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

// NewSeededStore builds the demo-mode store: the fixed character
// catalog, a demo profile, three seed sessions, and one seed exchange
// so the dashboard and transcript views have something to show.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()

	for _, c := range SeedCharacters() {
		s.AddCharacter(c)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error generating bcrypt hash for demo profile, demo login unavailable: %v", err)
	} else {
		s.profiles[DemoEmail] = models.Profile{
			UserID:         DemoUserID,
			Email:          DemoEmail,
			FullName:       DemoFullName,
			HashedPassword: string(hash),
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	seedSessions := []models.ChatSession{
		{
			ID:          seedSessionMayaID,
			UserID:      DemoUserID,
			CharacterID: CharacterMayaID,
			Title:       "Creative Writing Project",
			CreatedAt:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			// The seed exchange below happened after the other sessions,
			// so this thread lists first under updated-desc ordering.
			UpdatedAt: time.Date(2024, 1, 8, 10, 1, 0, 0, time.UTC),
		},
		{
			ID:          seedSessionSageID,
			UserID:      DemoUserID,
			CharacterID: CharacterSageID,
			Title:       "Philosophy Discussion",
			CreatedAt:   time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          seedSessionEchoID,
			UserID:      DemoUserID,
			CharacterID: CharacterEchoID,
			Title:       "Poetic Musings",
			CreatedAt:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, session := range seedSessions {
		s.sessions[session.ID] = session
		s.messages[session.ID] = make([]models.ChatMessage, 0, 16)
	}

	s.messages[seedSessionMayaID] = append(s.messages[seedSessionMayaID],
		models.ChatMessage{
			ID:          uuid.MustParse("7d35c7b3-83a3-4a54-9bc4-0f6cbb7a8c11"),
			SessionID:   seedSessionMayaID,
			UserID:      DemoUserID,
			CharacterID: CharacterMayaID,
			Message:     "Hi Maya! I'm working on a creative writing project and need some inspiration.",
			Sender:      models.SenderUser,
			CreatedAt:   time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		},
		models.ChatMessage{
			ID:          uuid.MustParse("a6c1d9e2-4f51-4f0a-9a6f-5f2d0c3b7e42"),
			SessionID:   seedSessionMayaID,
			UserID:      DemoUserID,
			CharacterID: CharacterMayaID,
			Message:     "How wonderful! I absolutely love helping with creative projects! ✨ What kind of story are you working on?",
			Sender:      models.SenderCharacter,
			CreatedAt:   time.Date(2024, 1, 8, 10, 1, 0, 0, time.UTC),
		},
	)

	return s
}
