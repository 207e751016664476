package models

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleMember    UserRole = "member"
)

type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusAway    UserStatus = "away"
	UserStatusOffline UserStatus = "offline"
)

// User represents a user account. Users are never structurally deleted;
// profile updates mutate them in place.
type User struct {
	ID        string     `json:"id" msgpack:"id"`
	Username  string     `json:"username" msgpack:"username"`
	Avatar    string     `json:"avatar" msgpack:"avatar"`
	Status    UserStatus `json:"status" msgpack:"status"`
	Role      UserRole   `json:"role" msgpack:"role"`
	CreatedAt int64      `json:"createdAt" msgpack:"createdAt"` // Unix timestamp (seconds)
}

// Server is a community server. MemberIDs is a denormalized projection of the
// ServerMember rows for this server and is kept in sync by the store.
type Server struct {
	ID          string   `json:"id" msgpack:"id"`
	Name        string   `json:"name" msgpack:"name"`
	Icon        string   `json:"icon" msgpack:"icon"`
	OwnerID     string   `json:"ownerId" msgpack:"ownerId"`
	Description string   `json:"description,omitempty" msgpack:"description"`
	MemberIDs   []string `json:"memberIds" msgpack:"memberIds"`
	CreatedAt   int64    `json:"createdAt" msgpack:"createdAt"`
}

// ChannelCategory groups channels inside a server. Categories carry no
// creation timestamp.
type ChannelCategory struct {
	ID        string `json:"id" msgpack:"id"`
	Name      string `json:"name" msgpack:"name"`
	ServerID  string `json:"serverId" msgpack:"serverId"`
	Collapsed bool   `json:"collapsed" msgpack:"collapsed"`
	Position  int    `json:"position" msgpack:"position"`
}

type ChannelType string

const (
	ChannelTypeText  ChannelType = "text"
	ChannelTypeVoice ChannelType = "voice"
)

// Channel belongs to a server and optionally to a category. An empty
// CategoryID means the channel is uncategorized.
type Channel struct {
	ID          string      `json:"id" msgpack:"id"`
	Name        string      `json:"name" msgpack:"name"`
	ServerID    string      `json:"serverId" msgpack:"serverId"`
	CategoryID  string      `json:"categoryId,omitempty" msgpack:"categoryId"`
	Type        ChannelType `json:"type" msgpack:"type"`
	Description string      `json:"description,omitempty" msgpack:"description"`
	Position    int         `json:"position" msgpack:"position"`
	CreatedAt   int64       `json:"createdAt" msgpack:"createdAt"`
}

// Message is a single channel message. ServerID is denormalized so server
// deletion can cascade without resolving channels first.
type Message struct {
	ID          string              `json:"id" msgpack:"id"`
	Content     string              `json:"content" msgpack:"content"`
	AuthorID    string              `json:"authorId" msgpack:"authorId"`
	ChannelID   string              `json:"channelId" msgpack:"channelId"`
	ServerID    string              `json:"serverId" msgpack:"serverId"`
	CreatedAt   int64               `json:"createdAt" msgpack:"createdAt"`
	EditedAt    int64               `json:"editedAt,omitempty" msgpack:"editedAt"` // zero until first update
	Reactions   []MessageReaction   `json:"reactions" msgpack:"reactions"`
	Mentions    []string            `json:"mentions" msgpack:"mentions"` // raw usernames, not resolved ids
	Attachments []MessageAttachment `json:"attachments,omitempty" msgpack:"attachments"`
	ReplyToID   string              `json:"replyToId,omitempty" msgpack:"replyToId"`
}

// MessageReaction aggregates one emoji on one message. Count is a derived
// cache and must always equal len(UserIDs); entries with no users are removed.
type MessageReaction struct {
	Emoji   string   `json:"emoji" msgpack:"emoji"`
	UserIDs []string `json:"userIds" msgpack:"userIds"`
	Count   int      `json:"count" msgpack:"count"`
}

type AttachmentType string

const (
	AttachmentTypeImage AttachmentType = "image"
	AttachmentTypeFile  AttachmentType = "file"
)

type MessageAttachment struct {
	ID   string         `json:"id" msgpack:"id"`
	Name string         `json:"name" msgpack:"name"`
	URL  string         `json:"url" msgpack:"url"`
	Type AttachmentType `json:"type" msgpack:"type"`
	Size int64          `json:"size" msgpack:"size"`
}

// ServerMember is one user's membership in one server, keyed by
// (ServerID, UserID). The matching Server.MemberIDs entry is maintained
// together with this row by the store's membership operations.
type ServerMember struct {
	UserID   string   `json:"userId" msgpack:"userId"`
	ServerID string   `json:"serverId" msgpack:"serverId"`
	Role     UserRole `json:"role" msgpack:"role"`
	JoinedAt int64    `json:"joinedAt" msgpack:"joinedAt"`
	Nickname string   `json:"nickname,omitempty" msgpack:"nickname"`
}
