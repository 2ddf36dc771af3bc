package model

/*
Presets mirror the official client's @everyone role defaults. They are
fixed unions of declared flags, not derived at runtime.
*/

const (
	// PresetGeneral is the default @everyone grant. Note that it
	// includes Send TTS Messages; toggle it off with
	// PresetGeneral.Toggle(PermissionSendTTSMessages) if unwanted.
	PresetGeneral = PermissionAddReactions |
		PermissionAttachFiles |
		PermissionChangeNickname |
		PermissionConnect |
		PermissionCreateInstantInvite |
		PermissionEmbedLinks |
		PermissionMentionEveryone |
		PermissionReadMessageHistory |
		PermissionViewChannel |
		PermissionSendMessages |
		PermissionSendTTSMessages |
		PermissionSpeak |
		PermissionUseExternalEmojis |
		PermissionUseVAD

	// PresetText is the text-channel subset of PresetGeneral.
	PresetText = PermissionAddReactions |
		PermissionAttachFiles |
		PermissionChangeNickname |
		PermissionCreateInstantInvite |
		PermissionEmbedLinks |
		PermissionMentionEveryone |
		PermissionReadMessageHistory |
		PermissionViewChannel |
		PermissionSendMessages |
		PermissionSendTTSMessages |
		PermissionUseExternalEmojis

	// PresetVoice is the voice-channel subset of PresetGeneral.
	PresetVoice = PermissionConnect |
		PermissionSpeak |
		PermissionUseVAD
)

// DMPermissions returns the set of permissions every user has in direct
// message channels.
func DMPermissions() Permissions {
	return PermissionAddReactions |
		PermissionStream |
		PermissionViewChannel |
		PermissionSendMessages |
		PermissionSendTTSMessages |
		PermissionEmbedLinks |
		PermissionAttachFiles |
		PermissionReadMessageHistory |
		PermissionMentionEveryone |
		PermissionUseExternalEmojis |
		PermissionConnect |
		PermissionSpeak |
		PermissionUseVAD |
		PermissionUseApplicationCommands |
		PermissionUseExternalStickers |
		PermissionSendVoiceMessages |
		PermissionSendPolls |
		PermissionUseExternalApps
}
