package store

import "palaver/internal/models"

// Patch types carry partial updates. A nil field leaves the existing value
// untouched; a set field overwrites it. The apply methods are the only merge
// path, so the semantics stay explicit.

type UserPatch struct {
	Username *string
	Avatar   *string
	Status   *models.UserStatus
	Role     *models.UserRole
}

func (p UserPatch) apply(u *models.User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

type ServerPatch struct {
	Name        *string
	Icon        *string
	OwnerID     *string
	Description *string
	MemberIDs   []string
}

func (p ServerPatch) apply(srv *models.Server) {
	if p.Name != nil {
		srv.Name = *p.Name
	}
	if p.Icon != nil {
		srv.Icon = *p.Icon
	}
	if p.OwnerID != nil {
		srv.OwnerID = *p.OwnerID
	}
	if p.Description != nil {
		srv.Description = *p.Description
	}
	if p.MemberIDs != nil {
		srv.MemberIDs = append([]string(nil), p.MemberIDs...)
	}
}

type ChannelPatch struct {
	Name        *string
	CategoryID  *string
	Type        *models.ChannelType
	Description *string
	Position    *int
}

func (p ChannelPatch) apply(ch *models.Channel) {
	if p.Name != nil {
		ch.Name = *p.Name
	}
	if p.CategoryID != nil {
		ch.CategoryID = *p.CategoryID
	}
	if p.Type != nil {
		ch.Type = *p.Type
	}
	if p.Description != nil {
		ch.Description = *p.Description
	}
	if p.Position != nil {
		ch.Position = *p.Position
	}
}

type CategoryPatch struct {
	Name      *string
	Collapsed *bool
	Position  *int
}

func (p CategoryPatch) apply(cat *models.ChannelCategory) {
	if p.Name != nil {
		cat.Name = *p.Name
	}
	if p.Collapsed != nil {
		cat.Collapsed = *p.Collapsed
	}
	if p.Position != nil {
		cat.Position = *p.Position
	}
}

type MessagePatch struct {
	Content     *string
	Mentions    []string
	Attachments []models.MessageAttachment
	ReplyToID   *string
}

func (p MessagePatch) apply(m *models.Message) {
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Mentions != nil {
		m.Mentions = append([]string(nil), p.Mentions...)
	}
	if p.Attachments != nil {
		m.Attachments = append([]models.MessageAttachment(nil), p.Attachments...)
	}
	if p.ReplyToID != nil {
		m.ReplyToID = *p.ReplyToID
	}
}

type MemberPatch struct {
	Role     *models.UserRole
	Nickname *string
}

func (p MemberPatch) apply(m *models.ServerMember) {
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Nickname != nil {
		m.Nickname = *p.Nickname
	}
}
