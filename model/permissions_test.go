package model_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/scopeclient/serenity/model"
)

func TestPermissionsFromBitsTruncate(t *testing.T) {
	cases := []struct {
		assertion string
		raw       uint64
		want      model.Permissions
	}{
		{"declared bits survive", 0b101, model.PermissionCreateInstantInvite | model.PermissionBanMembers},
		{"unassigned bit 47 dropped", 1 << 47, 0},
		{"undeclared high bits dropped", 1<<63 | uint64(model.PermissionSpeak), model.PermissionSpeak},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			got := model.PermissionsFromBitsTruncate(c.raw)
			require.Equal(t, c.want, got)
			require.Equal(t, got, model.PermissionsFromBitsTruncate(got.Bits()))
		})
	}
}

func TestPermissionsFromBitsTruncateAllOnes(t *testing.T) {
	allDeclared := model.PermissionCreateInstantInvite |
		model.PermissionKickMembers |
		model.PermissionBanMembers |
		model.PermissionAdministrator |
		model.PermissionManageChannels |
		model.PermissionManageGuild |
		model.PermissionAddReactions |
		model.PermissionViewAuditLog |
		model.PermissionPrioritySpeaker |
		model.PermissionStream |
		model.PermissionViewChannel |
		model.PermissionSendMessages |
		model.PermissionSendTTSMessages |
		model.PermissionManageMessages |
		model.PermissionEmbedLinks |
		model.PermissionAttachFiles |
		model.PermissionReadMessageHistory |
		model.PermissionMentionEveryone |
		model.PermissionUseExternalEmojis |
		model.PermissionViewGuildInsights |
		model.PermissionConnect |
		model.PermissionSpeak |
		model.PermissionMuteMembers |
		model.PermissionDeafenMembers |
		model.PermissionMoveMembers |
		model.PermissionUseVAD |
		model.PermissionChangeNickname |
		model.PermissionManageNicknames |
		model.PermissionManageRoles |
		model.PermissionManageWebhooks |
		model.PermissionManageGuildExpressions |
		model.PermissionUseApplicationCommands |
		model.PermissionRequestToSpeak |
		model.PermissionManageEvents |
		model.PermissionManageThreads |
		model.PermissionCreatePublicThreads |
		model.PermissionCreatePrivateThreads |
		model.PermissionUseExternalStickers |
		model.PermissionSendMessagesInThreads |
		model.PermissionUseEmbeddedActivities |
		model.PermissionModerateMembers |
		model.PermissionViewCreatorMonetizationAnalytics |
		model.PermissionUseSoundboard |
		model.PermissionCreateGuildExpressions |
		model.PermissionCreateEvents |
		model.PermissionUseExternalSounds |
		model.PermissionSendVoiceMessages |
		model.PermissionSetVoiceChannelStatus |
		model.PermissionSendPolls |
		model.PermissionUseExternalApps

	got := model.PermissionsFromBitsTruncate(1<<64 - 1)
	require.Equal(t, allDeclared, got)
	require.Zero(t, got.Bits()&(1<<47))
}

func TestPermissionsContains(t *testing.T) {
	p := model.PermissionManageGuild | model.PermissionManageRoles
	require.True(t, p.Contains(model.PermissionManageGuild))
	require.True(t, p.Contains(p))
	require.True(t, p.Contains(0))
	require.False(t, p.Contains(model.PermissionAdministrator))
	require.False(t, p.Contains(p|model.PermissionSpeak))
}

func TestPermissionsAlgebra(t *testing.T) {
	a := model.PermissionSendMessages | model.PermissionEmbedLinks
	b := model.PermissionEmbedLinks | model.PermissionAttachFiles

	require.Equal(t, a|b, a.Union(b))
	require.Equal(t, model.PermissionEmbedLinks, a.Intersect(b))
	require.Equal(t, model.PermissionSendMessages, a.Difference(b))
	require.Equal(t, model.PermissionSendMessages|model.PermissionAttachFiles, a.Toggle(b))
	require.Equal(t, a, a.Toggle(b).Toggle(b))
}

func TestPermissionsNames(t *testing.T) {
	p := model.PermissionAddReactions | model.PermissionAttachFiles | model.PermissionStream
	require.Equal(t, []string{"Add Reactions", "Attach Files", "Stream"}, p.Names())
	require.Empty(t, model.Permissions(0).Names())
}

func TestPermissionsNamesSkipDeprecatedAlias(t *testing.T) {
	// Bit 30 carries two declared flags; only the canonical name is
	// reported.
	p := model.PermissionManageEmojisAndStickers
	require.Equal(t, []string{"Manage Guild Expressions"}, p.Names())
	require.True(t, p.ManageGuildExpressions())
	require.True(t, p.ManageEmojisAndStickers())
}

func TestPermissionsString(t *testing.T) {
	cases := []struct {
		assertion string
		p         model.Permissions
		want      string
	}{
		{"empty set", 0, ""},
		{"single flag", model.PermissionAdministrator, "Administrator"},
		{"two flags", model.PermissionKickMembers | model.PermissionBanMembers, "Ban Members and Kick Members"},
		{
			"three flags",
			model.PermissionAddReactions | model.PermissionAttachFiles | model.PermissionStream,
			"Add Reactions, Attach Files and Stream",
		},
		{"mention flag display name", model.PermissionMentionEveryone, "Mention @everyone, @here, and All Roles"},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.want, c.p.String())
		})
	}
}

func TestPermissionsMarshalJSON(t *testing.T) {
	p := model.PermissionManageGuild | model.PermissionManageRoles
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `"268435488"`, string(data))

	data, err = json.Marshal(model.Permissions(0))
	require.NoError(t, err)
	require.Equal(t, `"0"`, string(data))
}

func TestPermissionsUnmarshalJSON(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
		want      model.Permissions
		wantErr   bool
	}{
		{"quoted decimal string", `"268435488"`, model.PermissionManageGuild | model.PermissionManageRoles, false},
		{"raw integer", `268435488`, model.PermissionManageGuild | model.PermissionManageRoles, false},
		{"zero is the empty set", `"0"`, 0, false},
		{"undeclared bits truncated", `140737488355328`, 0, false},
		{"negative integer", `-8`, 0, true},
		{"non-numeral string", `"admin"`, 0, true},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			var p model.Permissions
			err := json.Unmarshal([]byte(c.input), &p)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, p)
		})
	}
}

func TestPermissionsJSONRoundTrip(t *testing.T) {
	type role struct {
		ID          model.RoleID      `json:"id"`
		Permissions model.Permissions `json:"permissions"`
	}
	in := role{
		ID:          model.NewRoleID(175928847299117063),
		Permissions: model.PresetText,
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out role
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestPermissionsText(t *testing.T) {
	p := model.PermissionManageGuild | model.PermissionManageRoles
	text, err := p.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "268435488", string(text))

	var parsed model.Permissions
	require.NoError(t, parsed.UnmarshalText(text))
	require.Equal(t, p, parsed)

	require.Error(t, parsed.UnmarshalText([]byte("everything")))
}

func TestPermissionsMsgpack(t *testing.T) {
	p := model.PresetVoice
	data, err := msgpack.Marshal(p)
	require.NoError(t, err)

	var out model.Permissions
	require.NoError(t, msgpack.Unmarshal(data, &out))
	require.Equal(t, p, out)

	// Integer encodings are accepted and truncated like JSON integers.
	data, err = msgpack.Marshal(uint64(1<<47 | uint64(model.PermissionSpeak)))
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(data, &out))
	require.Equal(t, model.PermissionSpeak, out)
}

func TestPermissionPresets(t *testing.T) {
	require.True(t, model.PresetGeneral.Contains(model.PermissionCreateInstantInvite))
	require.True(t, model.PresetGeneral.Contains(model.PermissionViewChannel))
	require.False(t, model.PresetGeneral.Contains(model.PermissionManageGuild))
	require.False(t, model.PresetGeneral.Contains(model.PermissionAdministrator))

	require.True(t, model.PresetText.Contains(model.PermissionSendMessages))
	require.True(t, model.PresetText.Contains(model.PermissionReadMessageHistory))
	require.False(t, model.PresetText.Contains(model.PermissionConnect))

	require.Equal(t, model.PermissionConnect|model.PermissionSpeak|model.PermissionUseVAD, model.PresetVoice)

	dm := model.DMPermissions()
	require.True(t, dm.Contains(model.PermissionSendMessages))
	require.True(t, dm.Contains(model.PermissionConnect))
	require.False(t, dm.Contains(model.PermissionKickMembers))
}

func TestPermissionPredicates(t *testing.T) {
	p := model.PermissionAdministrator | model.PermissionBanMembers
	require.True(t, p.Administrator())
	require.True(t, p.BanMembers())
	require.False(t, p.KickMembers())
	require.False(t, model.Permissions(0).Administrator())
}
