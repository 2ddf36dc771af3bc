package model

import (
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

/*
Permissions is a 64-bit bit-vector of named flags, assignable to users
and roles directly or through channel permission overwrites. A single
static table declares every flag with its display name; the table drives
enumeration, rendering, and the valid-bit mask used by truncating
construction. Two entries may share a bit (a canonical flag and its
deprecated predecessor), in which case only the canonical entry
participates in enumeration so one physical bit is never reported twice.

Construction from raw bits always truncates: flags introduced by a
future protocol revision are dropped rather than rejected.
*/

////////////////////////////////////////////////////////////////////////////////

// Permissions is an immutable set of permission flags.
type Permissions uint64

const (
	// PermissionCreateInstantInvite allows creating invites.
	PermissionCreateInstantInvite Permissions = 1 << 0
	// PermissionKickMembers allows kicking guild members.
	PermissionKickMembers Permissions = 1 << 1
	// PermissionBanMembers allows banning guild members.
	PermissionBanMembers Permissions = 1 << 2
	// PermissionAdministrator allows all permissions, bypassing channel
	// permission overwrites.
	PermissionAdministrator Permissions = 1 << 3
	// PermissionManageChannels allows management and editing of guild
	// channels.
	PermissionManageChannels Permissions = 1 << 4
	// PermissionManageGuild allows management and editing of the guild.
	PermissionManageGuild Permissions = 1 << 5
	// PermissionAddReactions allows adding new reactions to messages.
	// Members can still react with existing reactions without it.
	PermissionAddReactions Permissions = 1 << 6
	// PermissionViewAuditLog allows viewing the guild's audit logs.
	PermissionViewAuditLog Permissions = 1 << 7
	// PermissionPrioritySpeaker allows priority speaking in voice
	// channels.
	PermissionPrioritySpeaker Permissions = 1 << 8
	// PermissionStream allows the user to go live.
	PermissionStream Permissions = 1 << 9
	// PermissionViewChannel allows viewing a channel, which includes
	// reading messages in text channels and joining voice channels.
	PermissionViewChannel Permissions = 1 << 10
	// PermissionSendMessages allows sending messages in a guild channel.
	PermissionSendMessages Permissions = 1 << 11
	// PermissionSendTTSMessages allows sending text-to-speech messages.
	PermissionSendTTSMessages Permissions = 1 << 12
	// PermissionManageMessages allows deleting other members' messages.
	// It does not allow editing them.
	PermissionManageMessages Permissions = 1 << 13
	// PermissionEmbedLinks allows links to be embedded with thumbnail,
	// description, and page name.
	PermissionEmbedLinks Permissions = 1 << 14
	// PermissionAttachFiles allows uploading files.
	PermissionAttachFiles Permissions = 1 << 15
	// PermissionReadMessageHistory allows reading a channel's message
	// history.
	PermissionReadMessageHistory Permissions = 1 << 16
	// PermissionMentionEveryone allows the @everyone and @here mentions.
	PermissionMentionEveryone Permissions = 1 << 17
	// PermissionUseExternalEmojis allows custom emojis from other guilds.
	PermissionUseExternalEmojis Permissions = 1 << 18
	// PermissionViewGuildInsights allows viewing guild insights.
	PermissionViewGuildInsights Permissions = 1 << 19
	// PermissionConnect allows joining a voice channel.
	PermissionConnect Permissions = 1 << 20
	// PermissionSpeak allows speaking in a voice channel.
	PermissionSpeak Permissions = 1 << 21
	// PermissionMuteMembers allows muting members in voice channels.
	PermissionMuteMembers Permissions = 1 << 22
	// PermissionDeafenMembers allows deafening members in voice channels.
	PermissionDeafenMembers Permissions = 1 << 23
	// PermissionMoveMembers allows moving members between voice channels.
	PermissionMoveMembers Permissions = 1 << 24
	// PermissionUseVAD allows voice-activity-detection in voice
	// channels; without it members must use push-to-talk.
	PermissionUseVAD Permissions = 1 << 25
	// PermissionChangeNickname allows members to change their own
	// nickname.
	PermissionChangeNickname Permissions = 1 << 26
	// PermissionManageNicknames allows changing other members' nicknames.
	PermissionManageNicknames Permissions = 1 << 27
	// PermissionManageRoles allows management and editing of roles below
	// the member's own.
	PermissionManageRoles Permissions = 1 << 28
	// PermissionManageWebhooks allows management of webhooks.
	PermissionManageWebhooks Permissions = 1 << 29
	// PermissionManageGuildExpressions allows editing and deleting
	// emojis, stickers, and soundboard sounds created by any user.
	PermissionManageGuildExpressions Permissions = 1 << 30
	// PermissionManageEmojisAndStickers shares a bit with
	// PermissionManageGuildExpressions.
	//
	// Deprecated: use PermissionManageGuildExpressions instead.
	PermissionManageEmojisAndStickers Permissions = 1 << 30
	// PermissionUseApplicationCommands allows using application
	// commands, including slash and context menu commands.
	PermissionUseApplicationCommands Permissions = 1 << 31
	// PermissionRequestToSpeak allows requesting to speak in stage
	// channels.
	PermissionRequestToSpeak Permissions = 1 << 32
	// PermissionManageEvents allows editing and deleting scheduled
	// events created by any user.
	PermissionManageEvents Permissions = 1 << 33
	// PermissionManageThreads allows deleting and archiving threads and
	// viewing all private threads.
	PermissionManageThreads Permissions = 1 << 34
	// PermissionCreatePublicThreads allows creating threads.
	PermissionCreatePublicThreads Permissions = 1 << 35
	// PermissionCreatePrivateThreads allows creating private threads.
	PermissionCreatePrivateThreads Permissions = 1 << 36
	// PermissionUseExternalStickers allows custom stickers from other
	// guilds.
	PermissionUseExternalStickers Permissions = 1 << 37
	// PermissionSendMessagesInThreads allows sending messages in threads.
	PermissionSendMessagesInThreads Permissions = 1 << 38
	// PermissionUseEmbeddedActivities allows launching activities in a
	// voice channel.
	PermissionUseEmbeddedActivities Permissions = 1 << 39
	// PermissionModerateMembers allows timing out users.
	PermissionModerateMembers Permissions = 1 << 40
	// PermissionViewCreatorMonetizationAnalytics allows viewing role
	// subscription insights.
	PermissionViewCreatorMonetizationAnalytics Permissions = 1 << 41
	// PermissionUseSoundboard allows using the soundboard in a voice
	// channel.
	PermissionUseSoundboard Permissions = 1 << 42
	// PermissionCreateGuildExpressions allows creating emojis, stickers,
	// and soundboard sounds, and editing and deleting one's own.
	PermissionCreateGuildExpressions Permissions = 1 << 43
	// PermissionCreateEvents allows creating scheduled events and
	// editing and deleting one's own.
	PermissionCreateEvents Permissions = 1 << 44
	// PermissionUseExternalSounds allows custom soundboard sounds from
	// other guilds.
	PermissionUseExternalSounds Permissions = 1 << 45
	// PermissionSendVoiceMessages allows sending voice messages.
	PermissionSendVoiceMessages Permissions = 1 << 46

	// Bit 47 is unassigned.

	// PermissionSetVoiceChannelStatus allows setting the status of a
	// voice channel.
	PermissionSetVoiceChannelStatus Permissions = 1 << 48
	// PermissionSendPolls allows attaching polls to messages.
	PermissionSendPolls Permissions = 1 << 49
	// PermissionUseExternalApps allows user-installed apps to send
	// public responses.
	PermissionUseExternalApps Permissions = 1 << 50
)

// permissionEntry is one row of the flag declaration table.
type permissionEntry struct {
	flag       Permissions
	name       string
	deprecated bool
}

// permissionTable declares every flag ordered by display name, so
// enumeration and rendering read alphabetically. Deprecated entries are
// skipped during enumeration.
var permissionTable = []permissionEntry{
	{PermissionAddReactions, "Add Reactions", false},
	{PermissionAdministrator, "Administrator", false},
	{PermissionAttachFiles, "Attach Files", false},
	{PermissionBanMembers, "Ban Members", false},
	{PermissionChangeNickname, "Change Nickname", false},
	{PermissionConnect, "Connect", false},
	{PermissionCreateEvents, "Create Events", false},
	{PermissionCreateGuildExpressions, "Create Guild Expressions", false},
	{PermissionCreateInstantInvite, "Create Invites", false},
	{PermissionCreatePrivateThreads, "Create Private Threads", false},
	{PermissionCreatePublicThreads, "Create Public Threads", false},
	{PermissionDeafenMembers, "Deafen Members", false},
	{PermissionEmbedLinks, "Embed Links", false},
	{PermissionKickMembers, "Kick Members", false},
	{PermissionManageChannels, "Manage Channels", false},
	{PermissionManageEmojisAndStickers, "Manage Emojis and Stickers", true},
	{PermissionManageEvents, "Manage Events", false},
	{PermissionManageGuild, "Manage Guild", false},
	{PermissionManageGuildExpressions, "Manage Guild Expressions", false},
	{PermissionManageMessages, "Manage Messages", false},
	{PermissionManageNicknames, "Manage Nicknames", false},
	{PermissionManageRoles, "Manage Roles", false},
	{PermissionManageThreads, "Manage Threads", false},
	{PermissionManageWebhooks, "Manage Webhooks", false},
	{PermissionMentionEveryone, "Mention @everyone, @here, and All Roles", false},
	{PermissionModerateMembers, "Moderate Members", false},
	{PermissionMoveMembers, "Move Members", false},
	{PermissionMuteMembers, "Mute Members", false},
	{PermissionPrioritySpeaker, "Priority Speaker", false},
	{PermissionReadMessageHistory, "Read Message History", false},
	{PermissionRequestToSpeak, "Request to Speak", false},
	{PermissionSendMessages, "Send Messages", false},
	{PermissionSendMessagesInThreads, "Send Messages in Threads", false},
	{PermissionSendPolls, "Send Polls", false},
	{PermissionSendTTSMessages, "Send TTS Messages", false},
	{PermissionSendVoiceMessages, "Send Voice Messages", false},
	{PermissionSetVoiceChannelStatus, "Set Voice Channel status", false},
	{PermissionSpeak, "Speak", false},
	{PermissionStream, "Stream", false},
	{PermissionUseApplicationCommands, "Use Application Commands", false},
	{PermissionUseEmbeddedActivities, "Use Embedded Activities", false},
	{PermissionUseExternalApps, "Use External Apps", false},
	{PermissionUseExternalEmojis, "Use External Emojis", false},
	{PermissionUseExternalSounds, "Use External Sounds", false},
	{PermissionUseExternalStickers, "Use External Stickers", false},
	{PermissionUseSoundboard, "Use Soundboard", false},
	{PermissionUseVAD, "Use Voice Activity", false},
	{PermissionViewAuditLog, "View Audit Log", false},
	{PermissionViewChannel, "View Channel", false},
	{PermissionViewCreatorMonetizationAnalytics, "View Creator Monetization Analytics", false},
	{PermissionViewGuildInsights, "View Guild Insights", false},
}

// validPermissions is the union of every declared bit.
var validPermissions = func() Permissions {
	var all Permissions
	for _, e := range permissionTable {
		all |= e.flag
	}
	return all
}()

////////////////////////////////////////////////////////////////////////////////

// PermissionsFromBitsTruncate builds a Permissions value from a raw
// bit-vector, silently dropping any bit not in the declared table. Bits
// introduced by a future protocol revision never cause construction to
// fail.
func PermissionsFromBitsTruncate(raw uint64) Permissions {
	return Permissions(raw) & validPermissions
}

// Bits returns the raw 64-bit flag vector.
func (p Permissions) Bits() uint64 {
	return uint64(p)
}

// Contains reports whether every flag in other is set in p.
func (p Permissions) Contains(other Permissions) bool {
	return p&other == other
}

// Union returns the flags set in either p or other.
func (p Permissions) Union(other Permissions) Permissions {
	return (p | other) & validPermissions
}

// Intersect returns the flags set in both p and other.
func (p Permissions) Intersect(other Permissions) Permissions {
	return p & other & validPermissions
}

// Difference returns the flags set in p but not in other.
func (p Permissions) Difference(other Permissions) Permissions {
	return (p &^ other) & validPermissions
}

// Toggle flips the flags named by other and returns the result.
func (p Permissions) Toggle(other Permissions) Permissions {
	return (p ^ other) & validPermissions
}

// Names returns the display names of the canonical flags currently set,
// in table order. A deprecated entry that aliases a canonical bit is
// never listed, even though its predicate still reports true.
func (p Permissions) Names() []string {
	names := make([]string, 0, len(permissionTable))
	for _, e := range permissionTable {
		if !e.deprecated && p.Contains(e.flag) {
			names = append(names, e.name)
		}
	}
	return names
}

// String renders the set as a human-readable list: names joined with
// ", ", with " and " before the final name when there is more than one.
// The empty set renders as an empty string.
func (p Permissions) String() string {
	names := p.Names()
	var b strings.Builder
	total := len(names)
	for i, name := range names {
		if i > 0 && i != total-1 {
			b.WriteString(", ")
		}
		if total > 1 && i == total-1 {
			b.WriteString(" and ")
		}
		b.WriteString(name)
	}
	return b.String()
}

////////////////////////////////////////////////////////////////////////////////

// MarshalJSON encodes the bit-vector as a quoted decimal string.
func (p Permissions) MarshalJSON() ([]byte, error) {
	return appendQuotedUint(make([]byte, 0, 22), uint64(p)), nil
}

// UnmarshalJSON decodes a quoted decimal string or a raw integer (audit
// log change records send permissions as integers) and truncate-constructs
// the set. Only non-numeric shapes fail.
func (p *Permissions) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	v, err := parseWireUint(data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal permissions: %w", err)
	}
	*p = PermissionsFromBitsTruncate(v)
	return nil
}

// MarshalText encodes the bit-vector as decimal text.
func (p Permissions) MarshalText() ([]byte, error) {
	return appendUint(make([]byte, 0, 20), uint64(p)), nil
}

// UnmarshalText decodes decimal text, truncating undeclared bits.
func (p *Permissions) UnmarshalText(data []byte) error {
	v, err := parseUint(string(data))
	if err != nil {
		return fmt.Errorf("failed to unmarshal permissions: %w", err)
	}
	*p = PermissionsFromBitsTruncate(v)
	return nil
}

// EncodeMsgpack encodes the bit-vector as a decimal string, matching the
// JSON wire contract.
func (p Permissions) EncodeMsgpack(enc *msgpack.Encoder) error {
	buf := appendUint(make([]byte, 0, 20), uint64(p))
	return enc.EncodeString(string(buf))
}

// DecodeMsgpack accepts a string or integer and truncate-constructs the
// set.
func (p *Permissions) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := decodeMsgpackUint(dec)
	if err != nil {
		return fmt.Errorf("failed to decode permissions: %w", err)
	}
	*p = PermissionsFromBitsTruncate(v)
	return nil
}
