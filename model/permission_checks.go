package model

/*
Single-flag predicates, one per declared flag. These are shorthand for
Contains with the corresponding constant.
*/

// CreateInstantInvite reports whether the set contains Create Invites.
func (p Permissions) CreateInstantInvite() bool { return p.Contains(PermissionCreateInstantInvite) }

// KickMembers reports whether the set contains Kick Members.
func (p Permissions) KickMembers() bool { return p.Contains(PermissionKickMembers) }

// BanMembers reports whether the set contains Ban Members.
func (p Permissions) BanMembers() bool { return p.Contains(PermissionBanMembers) }

// Administrator reports whether the set contains Administrator.
func (p Permissions) Administrator() bool { return p.Contains(PermissionAdministrator) }

// ManageChannels reports whether the set contains Manage Channels.
func (p Permissions) ManageChannels() bool { return p.Contains(PermissionManageChannels) }

// ManageGuild reports whether the set contains Manage Guild.
func (p Permissions) ManageGuild() bool { return p.Contains(PermissionManageGuild) }

// AddReactions reports whether the set contains Add Reactions.
func (p Permissions) AddReactions() bool { return p.Contains(PermissionAddReactions) }

// ViewAuditLog reports whether the set contains View Audit Log.
func (p Permissions) ViewAuditLog() bool { return p.Contains(PermissionViewAuditLog) }

// PrioritySpeaker reports whether the set contains Priority Speaker.
func (p Permissions) PrioritySpeaker() bool { return p.Contains(PermissionPrioritySpeaker) }

// Stream reports whether the set contains Stream.
func (p Permissions) Stream() bool { return p.Contains(PermissionStream) }

// ViewChannel reports whether the set contains View Channel.
func (p Permissions) ViewChannel() bool { return p.Contains(PermissionViewChannel) }

// SendMessages reports whether the set contains Send Messages.
func (p Permissions) SendMessages() bool { return p.Contains(PermissionSendMessages) }

// SendTTSMessages reports whether the set contains Send TTS Messages.
func (p Permissions) SendTTSMessages() bool { return p.Contains(PermissionSendTTSMessages) }

// ManageMessages reports whether the set contains Manage Messages.
func (p Permissions) ManageMessages() bool { return p.Contains(PermissionManageMessages) }

// EmbedLinks reports whether the set contains Embed Links.
func (p Permissions) EmbedLinks() bool { return p.Contains(PermissionEmbedLinks) }

// AttachFiles reports whether the set contains Attach Files.
func (p Permissions) AttachFiles() bool { return p.Contains(PermissionAttachFiles) }

// ReadMessageHistory reports whether the set contains Read Message History.
func (p Permissions) ReadMessageHistory() bool { return p.Contains(PermissionReadMessageHistory) }

// MentionEveryone reports whether the set contains the @everyone mention
// permission.
func (p Permissions) MentionEveryone() bool { return p.Contains(PermissionMentionEveryone) }

// UseExternalEmojis reports whether the set contains Use External Emojis.
func (p Permissions) UseExternalEmojis() bool { return p.Contains(PermissionUseExternalEmojis) }

// ViewGuildInsights reports whether the set contains View Guild Insights.
func (p Permissions) ViewGuildInsights() bool { return p.Contains(PermissionViewGuildInsights) }

// Connect reports whether the set contains Connect.
func (p Permissions) Connect() bool { return p.Contains(PermissionConnect) }

// Speak reports whether the set contains Speak.
func (p Permissions) Speak() bool { return p.Contains(PermissionSpeak) }

// MuteMembers reports whether the set contains Mute Members.
func (p Permissions) MuteMembers() bool { return p.Contains(PermissionMuteMembers) }

// DeafenMembers reports whether the set contains Deafen Members.
func (p Permissions) DeafenMembers() bool { return p.Contains(PermissionDeafenMembers) }

// MoveMembers reports whether the set contains Move Members.
func (p Permissions) MoveMembers() bool { return p.Contains(PermissionMoveMembers) }

// UseVAD reports whether the set contains Use Voice Activity.
func (p Permissions) UseVAD() bool { return p.Contains(PermissionUseVAD) }

// ChangeNickname reports whether the set contains Change Nickname.
func (p Permissions) ChangeNickname() bool { return p.Contains(PermissionChangeNickname) }

// ManageNicknames reports whether the set contains Manage Nicknames.
func (p Permissions) ManageNicknames() bool { return p.Contains(PermissionManageNicknames) }

// ManageRoles reports whether the set contains Manage Roles.
func (p Permissions) ManageRoles() bool { return p.Contains(PermissionManageRoles) }

// ManageWebhooks reports whether the set contains Manage Webhooks.
func (p Permissions) ManageWebhooks() bool { return p.Contains(PermissionManageWebhooks) }

// ManageGuildExpressions reports whether the set contains Manage Guild
// Expressions.
func (p Permissions) ManageGuildExpressions() bool {
	return p.Contains(PermissionManageGuildExpressions)
}

// ManageEmojisAndStickers reports whether the set contains the bit shared
// with Manage Guild Expressions.
//
// Deprecated: use ManageGuildExpressions instead.
func (p Permissions) ManageEmojisAndStickers() bool {
	return p.Contains(PermissionManageEmojisAndStickers)
}

// UseApplicationCommands reports whether the set contains Use Application
// Commands.
func (p Permissions) UseApplicationCommands() bool {
	return p.Contains(PermissionUseApplicationCommands)
}

// RequestToSpeak reports whether the set contains Request to Speak.
func (p Permissions) RequestToSpeak() bool { return p.Contains(PermissionRequestToSpeak) }

// ManageEvents reports whether the set contains Manage Events.
func (p Permissions) ManageEvents() bool { return p.Contains(PermissionManageEvents) }

// ManageThreads reports whether the set contains Manage Threads.
func (p Permissions) ManageThreads() bool { return p.Contains(PermissionManageThreads) }

// CreatePublicThreads reports whether the set contains Create Public Threads.
func (p Permissions) CreatePublicThreads() bool { return p.Contains(PermissionCreatePublicThreads) }

// CreatePrivateThreads reports whether the set contains Create Private Threads.
func (p Permissions) CreatePrivateThreads() bool { return p.Contains(PermissionCreatePrivateThreads) }

// UseExternalStickers reports whether the set contains Use External Stickers.
func (p Permissions) UseExternalStickers() bool { return p.Contains(PermissionUseExternalStickers) }

// SendMessagesInThreads reports whether the set contains Send Messages in
// Threads.
func (p Permissions) SendMessagesInThreads() bool {
	return p.Contains(PermissionSendMessagesInThreads)
}

// UseEmbeddedActivities reports whether the set contains Use Embedded
// Activities.
func (p Permissions) UseEmbeddedActivities() bool {
	return p.Contains(PermissionUseEmbeddedActivities)
}

// ModerateMembers reports whether the set contains Moderate Members.
func (p Permissions) ModerateMembers() bool { return p.Contains(PermissionModerateMembers) }

// ViewCreatorMonetizationAnalytics reports whether the set contains View
// Creator Monetization Analytics.
func (p Permissions) ViewCreatorMonetizationAnalytics() bool {
	return p.Contains(PermissionViewCreatorMonetizationAnalytics)
}

// UseSoundboard reports whether the set contains Use Soundboard.
func (p Permissions) UseSoundboard() bool { return p.Contains(PermissionUseSoundboard) }

// CreateGuildExpressions reports whether the set contains Create Guild
// Expressions.
func (p Permissions) CreateGuildExpressions() bool {
	return p.Contains(PermissionCreateGuildExpressions)
}

// CreateEvents reports whether the set contains Create Events.
func (p Permissions) CreateEvents() bool { return p.Contains(PermissionCreateEvents) }

// UseExternalSounds reports whether the set contains Use External Sounds.
func (p Permissions) UseExternalSounds() bool { return p.Contains(PermissionUseExternalSounds) }

// SendVoiceMessages reports whether the set contains Send Voice Messages.
func (p Permissions) SendVoiceMessages() bool { return p.Contains(PermissionSendVoiceMessages) }

// SetVoiceChannelStatus reports whether the set contains Set Voice Channel
// status.
func (p Permissions) SetVoiceChannelStatus() bool {
	return p.Contains(PermissionSetVoiceChannelStatus)
}

// SendPolls reports whether the set contains Send Polls.
func (p Permissions) SendPolls() bool { return p.Contains(PermissionSendPolls) }

// UseExternalApps reports whether the set contains Use External Apps.
func (p Permissions) UseExternalApps() bool { return p.Contains(PermissionUseExternalApps) }
