package model_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/scopeclient/serenity/model"
)

func TestNewIDRoundTrip(t *testing.T) {
	cases := []uint64{1, 42, 175928847299117063, 1<<64 - 1}
	for _, c := range cases {
		require.Equal(t, c, model.NewGuildID(c).Get())
	}
}

func TestNewIDZeroPanics(t *testing.T) {
	require.Panics(t, func() { model.NewChannelID(0) })
	require.Panics(t, func() { model.NewUserID(0) })
}

func TestIDIsZero(t *testing.T) {
	var id model.MessageID
	require.True(t, id.IsZero())
	require.False(t, model.NewMessageID(7).IsZero())
}

func TestCreatedAt(t *testing.T) {
	// The id is from the platform's snowflake documentation.
	id := model.NewGuildID(175928847299117063)
	require.Equal(t, int64(1462015105), id.CreatedAt().Unix())
	require.Equal(t, "2016-04-30T11:18:25.796Z", id.CreatedAt().String())
}

func TestIDMarshalJSON(t *testing.T) {
	id := model.NewGuildID(175928847299117063)
	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"175928847299117063"`, string(data))
}

func TestIDMarshalJSONZero(t *testing.T) {
	var id model.GuildID
	_, err := json.Marshal(id)
	require.Error(t, err)
}

func TestIDUnmarshalJSON(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
		want      uint64
		wantErr   bool
	}{
		{"quoted decimal string", `"175928847299117063"`, 175928847299117063, false},
		{"raw unsigned integer", `175928847299117063`, 175928847299117063, false},
		{"unsigned integer above int64 range", `18446744073709551615`, 1<<64 - 1, false},
		{"small positive integer", `7`, 7, false},
		{"negative integer", `-1`, 0, true},
		{"zero string", `"0"`, 0, true},
		{"zero integer", `0`, 0, true},
		{"non-numeral string", `"abc"`, 0, true},
		{"float", `1.5`, 0, true},
		{"object", `{}`, 0, true},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			var id model.GuildID
			err := json.Unmarshal([]byte(c.input), &id)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, id.Get())
		})
	}
}

func TestIDUnmarshalJSONZeroIsErrZeroID(t *testing.T) {
	var id model.GuildID
	err := json.Unmarshal([]byte(`"0"`), &id)
	require.ErrorIs(t, err, model.ErrZeroID)
}

func TestIDUnmarshalJSONNullIsNoOp(t *testing.T) {
	id := model.NewGuildID(175928847299117063)
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	require.Equal(t, uint64(175928847299117063), id.Get())
}

func TestIDJSONRoundTrip(t *testing.T) {
	type message struct {
		ID      model.MessageID  `json:"id"`
		Channel *model.ChannelID `json:"channel_id,omitempty"`
	}
	channel := model.NewChannelID(81384788765712384)
	in := message{ID: model.NewMessageID(175928847299117063), Channel: &channel}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"id": "175928847299117063", "channel_id": "81384788765712384"}`, string(data))

	var out message
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestIDJSONOmitsNilPointer(t *testing.T) {
	type message struct {
		Channel *model.ChannelID `json:"channel_id,omitempty"`
	}
	data, err := json.Marshal(message{})
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestIDText(t *testing.T) {
	id := model.NewRoleID(175928847299117063)
	text, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "175928847299117063", string(text))

	var parsed model.RoleID
	require.NoError(t, parsed.UnmarshalText(text))
	require.Equal(t, id, parsed)

	require.Error(t, parsed.UnmarshalText([]byte("zero")))
	require.ErrorIs(t, parsed.UnmarshalText([]byte("0")), model.ErrZeroID)
}

func TestIDString(t *testing.T) {
	require.Equal(t, "175928847299117063", model.NewUserID(175928847299117063).String())
}

func TestCompareIDs(t *testing.T) {
	older := model.NewMessageID(175928847299117063)
	newer := model.NewMessageID(881555664799187004)
	require.Negative(t, model.CompareIDs(older, newer))
	require.Positive(t, model.CompareIDs(newer, older))
	require.Zero(t, model.CompareIDs(older, older))
}

func TestIDMsgpack(t *testing.T) {
	id := model.NewGuildID(175928847299117063)
	data, err := msgpack.Marshal(id)
	require.NoError(t, err)

	var out model.GuildID
	require.NoError(t, msgpack.Unmarshal(data, &out))
	require.Equal(t, id, out)
}

func TestIDMsgpackAcceptsInteger(t *testing.T) {
	data, err := msgpack.Marshal(uint64(175928847299117063))
	require.NoError(t, err)

	var out model.GuildID
	require.NoError(t, msgpack.Unmarshal(data, &out))
	require.Equal(t, uint64(175928847299117063), out.Get())
}

func TestIDMsgpackRejectsZero(t *testing.T) {
	data, err := msgpack.Marshal(uint64(0))
	require.NoError(t, err)

	var out model.GuildID
	require.ErrorIs(t, msgpack.Unmarshal(data, &out), model.ErrZeroID)

	var zero model.GuildID
	_, err = msgpack.Marshal(zero)
	require.Error(t, err)
}

func TestShardID(t *testing.T) {
	shard := model.ShardID(3)
	require.Equal(t, uint32(3), shard.Get())
	require.Equal(t, "3", shard.String())
}

func TestAnswerID(t *testing.T) {
	answer := model.AnswerID(2)
	require.Equal(t, uint64(2), answer.Get())
	require.Equal(t, "2", answer.String())

	// Not a snowflake: serialized as a plain JSON number.
	data, err := json.Marshal(answer)
	require.NoError(t, err)
	require.Equal(t, "2", string(data))

	var out model.AnswerID
	require.NoError(t, json.Unmarshal([]byte("2"), &out))
	require.Equal(t, answer, out)

	// Zero is a legal answer index, unlike the snowflake families.
	data, err = json.Marshal(model.AnswerID(0))
	require.NoError(t, err)
	require.Equal(t, "0", string(data))
}
