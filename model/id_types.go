package model

import "strconv"

/*
The identifier families. Every type here shares the snowflake base but
is nominally distinct, so a ChannelID can never be passed where a UserID
is expected. The constructors are the trusted path for in-process
constants and panic on zero; wire data goes through UnmarshalJSON or
UnmarshalText, which surface errors instead.
*/

////////////////////////////////////////////////////////////////////////////////

// AttachmentID is an identifier for an attachment.
type AttachmentID struct{ snowflake }

// NewAttachmentID constructs an AttachmentID. It panics if id is zero.
func NewAttachmentID(id uint64) AttachmentID { return AttachmentID{newSnowflake("AttachmentID", id)} }

// ApplicationID is an identifier for an application.
type ApplicationID struct{ snowflake }

// NewApplicationID constructs an ApplicationID. It panics if id is zero.
func NewApplicationID(id uint64) ApplicationID {
	return ApplicationID{newSnowflake("ApplicationID", id)}
}

// ChannelID is an identifier for a channel.
type ChannelID struct{ snowflake }

// NewChannelID constructs a ChannelID. It panics if id is zero.
func NewChannelID(id uint64) ChannelID { return ChannelID{newSnowflake("ChannelID", id)} }

// EmojiID is an identifier for an emoji.
type EmojiID struct{ snowflake }

// NewEmojiID constructs an EmojiID. It panics if id is zero.
func NewEmojiID(id uint64) EmojiID { return EmojiID{newSnowflake("EmojiID", id)} }

// GenericID is an identifier for an unspecific entity.
type GenericID struct{ snowflake }

// NewGenericID constructs a GenericID. It panics if id is zero.
func NewGenericID(id uint64) GenericID { return GenericID{newSnowflake("GenericID", id)} }

// GuildID is an identifier for a guild.
type GuildID struct{ snowflake }

// NewGuildID constructs a GuildID. It panics if id is zero.
func NewGuildID(id uint64) GuildID { return GuildID{newSnowflake("GuildID", id)} }

// IntegrationID is an identifier for an integration.
type IntegrationID struct{ snowflake }

// NewIntegrationID constructs an IntegrationID. It panics if id is zero.
func NewIntegrationID(id uint64) IntegrationID {
	return IntegrationID{newSnowflake("IntegrationID", id)}
}

// MessageID is an identifier for a message.
type MessageID struct{ snowflake }

// NewMessageID constructs a MessageID. It panics if id is zero.
func NewMessageID(id uint64) MessageID { return MessageID{newSnowflake("MessageID", id)} }

// RoleID is an identifier for a role.
type RoleID struct{ snowflake }

// NewRoleID constructs a RoleID. It panics if id is zero.
func NewRoleID(id uint64) RoleID { return RoleID{newSnowflake("RoleID", id)} }

// ScheduledEventID is an identifier for a scheduled event.
type ScheduledEventID struct{ snowflake }

// NewScheduledEventID constructs a ScheduledEventID. It panics if id is zero.
func NewScheduledEventID(id uint64) ScheduledEventID {
	return ScheduledEventID{newSnowflake("ScheduledEventID", id)}
}

// StickerID is an identifier for a sticker.
type StickerID struct{ snowflake }

// NewStickerID constructs a StickerID. It panics if id is zero.
func NewStickerID(id uint64) StickerID { return StickerID{newSnowflake("StickerID", id)} }

// StickerPackID is an identifier for a sticker pack.
type StickerPackID struct{ snowflake }

// NewStickerPackID constructs a StickerPackID. It panics if id is zero.
func NewStickerPackID(id uint64) StickerPackID {
	return StickerPackID{newSnowflake("StickerPackID", id)}
}

// StickerPackBannerID is an identifier for a sticker pack banner.
type StickerPackBannerID struct{ snowflake }

// NewStickerPackBannerID constructs a StickerPackBannerID. It panics if id is zero.
func NewStickerPackBannerID(id uint64) StickerPackBannerID {
	return StickerPackBannerID{newSnowflake("StickerPackBannerID", id)}
}

// SkuID is an identifier for a SKU.
type SkuID struct{ snowflake }

// NewSkuID constructs a SkuID. It panics if id is zero.
func NewSkuID(id uint64) SkuID { return SkuID{newSnowflake("SkuID", id)} }

// UserID is an identifier for a user.
type UserID struct{ snowflake }

// NewUserID constructs a UserID. It panics if id is zero.
func NewUserID(id uint64) UserID { return UserID{newSnowflake("UserID", id)} }

// WebhookID is an identifier for a webhook.
type WebhookID struct{ snowflake }

// NewWebhookID constructs a WebhookID. It panics if id is zero.
func NewWebhookID(id uint64) WebhookID { return WebhookID{newSnowflake("WebhookID", id)} }

// AuditLogEntryID is an identifier for an audit log entry.
type AuditLogEntryID struct{ snowflake }

// NewAuditLogEntryID constructs an AuditLogEntryID. It panics if id is zero.
func NewAuditLogEntryID(id uint64) AuditLogEntryID {
	return AuditLogEntryID{newSnowflake("AuditLogEntryID", id)}
}

// InteractionID is an identifier for an interaction.
type InteractionID struct{ snowflake }

// NewInteractionID constructs an InteractionID. It panics if id is zero.
func NewInteractionID(id uint64) InteractionID {
	return InteractionID{newSnowflake("InteractionID", id)}
}

// CommandID is an identifier for a slash command.
type CommandID struct{ snowflake }

// NewCommandID constructs a CommandID. It panics if id is zero.
func NewCommandID(id uint64) CommandID { return CommandID{newSnowflake("CommandID", id)} }

// CommandPermissionID is an identifier for a slash command permission.
type CommandPermissionID struct{ snowflake }

// NewCommandPermissionID constructs a CommandPermissionID. It panics if id is zero.
func NewCommandPermissionID(id uint64) CommandPermissionID {
	return CommandPermissionID{newSnowflake("CommandPermissionID", id)}
}

// CommandVersionID is an identifier for a slash command version.
type CommandVersionID struct{ snowflake }

// NewCommandVersionID constructs a CommandVersionID. It panics if id is zero.
func NewCommandVersionID(id uint64) CommandVersionID {
	return CommandVersionID{newSnowflake("CommandVersionID", id)}
}

// TargetID is an identifier for a slash command target.
type TargetID struct{ snowflake }

// NewTargetID constructs a TargetID. It panics if id is zero.
func NewTargetID(id uint64) TargetID { return TargetID{newSnowflake("TargetID", id)} }

// StageInstanceID is an identifier for a stage channel instance.
type StageInstanceID struct{ snowflake }

// NewStageInstanceID constructs a StageInstanceID. It panics if id is zero.
func NewStageInstanceID(id uint64) StageInstanceID {
	return StageInstanceID{newSnowflake("StageInstanceID", id)}
}

// RuleID is an identifier for an auto moderation rule.
type RuleID struct{ snowflake }

// NewRuleID constructs a RuleID. It panics if id is zero.
func NewRuleID(id uint64) RuleID { return RuleID{newSnowflake("RuleID", id)} }

// ForumTagID is an identifier for a forum tag.
type ForumTagID struct{ snowflake }

// NewForumTagID constructs a ForumTagID. It panics if id is zero.
func NewForumTagID(id uint64) ForumTagID { return ForumTagID{newSnowflake("ForumTagID", id)} }

// EntitlementID is an identifier for an entitlement.
type EntitlementID struct{ snowflake }

// NewEntitlementID constructs an EntitlementID. It panics if id is zero.
func NewEntitlementID(id uint64) EntitlementID {
	return EntitlementID{newSnowflake("EntitlementID", id)}
}

////////////////////////////////////////////////////////////////////////////////

// ShardID is an identifier for a gateway shard. It models internal IDs
// for type safety only: it is not a snowflake, has no creation time,
// and has no wire representation.
type ShardID uint32

// Get returns the value as a uint32.
func (s ShardID) Get() uint32 {
	return uint32(s)
}

// String returns the value as a decimal string.
func (s ShardID) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// AnswerID is an identifier for a poll answer. It is not a snowflake:
// values are currently sequential indexes and the scheme is subject to
// change. Serialized as a plain JSON number.
type AnswerID uint8

// Get returns the value as a uint64. Not a snowflake; there is no
// embedded timestamp to extract.
func (a AnswerID) Get() uint64 {
	return uint64(a)
}

// String returns the value as a decimal string.
func (a AnswerID) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
