package store

import (
	"time"

	"palaver/internal/models"
)

// bootstrap seeds the first-run demo fixture: three users, two servers, two
// categories, four channels and three messages. It runs only when the user
// collection is empty and fills the collections directly; the caller persists
// everything afterwards. The fixture obeys the same invariants as user-created
// data (member lists mirror membership rows, reaction counts match user sets).
func (s *Store) bootstrap() {
	now := s.now()

	demoUser := models.User{
		ID:        s.newID(),
		Username:  "DemoUser",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=DemoUser",
		Status:    models.UserStatusOnline,
		Role:      models.UserRoleAdmin,
		CreatedAt: now.Unix(),
	}
	alice := models.User{
		ID:        s.newID(),
		Username:  "Alice",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Alice",
		Status:    models.UserStatusOnline,
		Role:      models.UserRoleMember,
		CreatedAt: now.Unix(),
	}
	bob := models.User{
		ID:        s.newID(),
		Username:  "Bob",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Bob",
		Status:    models.UserStatusAway,
		Role:      models.UserRoleModerator,
		CreatedAt: now.Unix(),
	}
	s.users = []models.User{demoUser, alice, bob}
	s.currentUser = &demoUser

	communityHub := models.Server{
		ID:          s.newID(),
		Name:        "Community Hub",
		Icon:        "🏠",
		OwnerID:     demoUser.ID,
		Description: "Welcome to the Community Hub!",
		MemberIDs:   []string{demoUser.ID, alice.ID, bob.ID},
		CreatedAt:   now.Unix(),
	}
	gamingSquad := models.Server{
		ID:          s.newID(),
		Name:        "Gaming Squad",
		Icon:        "🎮",
		OwnerID:     demoUser.ID,
		Description: "Gaming community",
		MemberIDs:   []string{demoUser.ID, alice.ID},
		CreatedAt:   now.Unix(),
	}
	s.servers = []models.Server{communityHub, gamingSquad}

	textCategory := models.ChannelCategory{
		ID:       s.newID(),
		Name:     "TEXT CHANNELS",
		ServerID: communityHub.ID,
		Position: 0,
	}
	voiceCategory := models.ChannelCategory{
		ID:       s.newID(),
		Name:     "VOICE CHANNELS",
		ServerID: communityHub.ID,
		Position: 1,
	}
	s.categories = []models.ChannelCategory{textCategory, voiceCategory}

	general := models.Channel{
		ID:          s.newID(),
		Name:        "general",
		ServerID:    communityHub.ID,
		CategoryID:  textCategory.ID,
		Type:        models.ChannelTypeText,
		Description: "General discussion",
		Position:    0,
		CreatedAt:   now.Unix(),
	}
	random := models.Channel{
		ID:          s.newID(),
		Name:        "random",
		ServerID:    communityHub.ID,
		CategoryID:  textCategory.ID,
		Type:        models.ChannelTypeText,
		Description: "Random stuff",
		Position:    1,
		CreatedAt:   now.Unix(),
	}
	generalVoice := models.Channel{
		ID:         s.newID(),
		Name:       "General Voice",
		ServerID:   communityHub.ID,
		CategoryID: voiceCategory.ID,
		Type:       models.ChannelTypeVoice,
		Position:   0,
		CreatedAt:  now.Unix(),
	}
	gamingGeneral := models.Channel{
		ID:          s.newID(),
		Name:        "general",
		ServerID:    gamingSquad.ID,
		Type:        models.ChannelTypeText,
		Description: "General gaming chat",
		Position:    0,
		CreatedAt:   now.Unix(),
	}
	s.channels = []models.Channel{general, random, generalVoice, gamingGeneral}

	s.messages = []models.Message{
		{
			ID:        s.newID(),
			Content:   "Welcome to Community Hub! Feel free to chat and share.",
			AuthorID:  demoUser.ID,
			ChannelID: general.ID,
			ServerID:  communityHub.ID,
			CreatedAt: now.Add(-1 * time.Hour).Unix(),
			Reactions: []models.MessageReaction{},
			Mentions:  []string{},
		},
		{
			ID:        s.newID(),
			Content:   "Hey everyone! Happy to be here!",
			AuthorID:  alice.ID,
			ChannelID: general.ID,
			ServerID:  communityHub.ID,
			CreatedAt: now.Add(-30 * time.Minute).Unix(),
			Reactions: []models.MessageReaction{
				{Emoji: "👋", UserIDs: []string{demoUser.ID}, Count: 1},
			},
			Mentions: []string{},
		},
		{
			ID:        s.newID(),
			Content:   "This platform looks awesome!",
			AuthorID:  bob.ID,
			ChannelID: general.ID,
			ServerID:  communityHub.ID,
			CreatedAt: now.Add(-15 * time.Minute).Unix(),
			Reactions: []models.MessageReaction{
				{Emoji: "🔥", UserIDs: []string{demoUser.ID, alice.ID}, Count: 2},
			},
			Mentions: []string{},
		},
	}

	s.serverMembers = []models.ServerMember{
		{UserID: demoUser.ID, ServerID: communityHub.ID, Role: models.UserRoleAdmin, JoinedAt: now.Unix()},
		{UserID: alice.ID, ServerID: communityHub.ID, Role: models.UserRoleMember, JoinedAt: now.Unix()},
		{UserID: bob.ID, ServerID: communityHub.ID, Role: models.UserRoleModerator, JoinedAt: now.Unix()},
		{UserID: demoUser.ID, ServerID: gamingSquad.ID, Role: models.UserRoleAdmin, JoinedAt: now.Unix()},
		{UserID: alice.ID, ServerID: gamingSquad.ID, Role: models.UserRoleMember, JoinedAt: now.Unix()},
	}
}
