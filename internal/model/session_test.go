package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSession_Defaults(t *testing.T) {
	now := time.Now()
	s := NewSession(uuid.New(), now)

	assert.Nil(t, s.Pending)
	assert.Equal(t, ModeWordToEntry, s.Mode)
	assert.False(t, s.Edit.Loaded)
	assert.False(t, s.RevealAll)
	assert.NotNil(t, s.Revealed)
	assert.Equal(t, now, s.CreatedAt)
}

func TestSession_ToggleReveal(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())
	key := RevealKey(RevealMeaning, 3)
	assert.Equal(t, "meaning:3", key)

	s.ToggleReveal(key)
	assert.True(t, s.Revealed[key])

	s.ToggleReveal(key)
	assert.False(t, s.Revealed[key])
}

func TestSession_TakeOnce(t *testing.T) {
	s := NewSession(uuid.New(), time.Now())
	s.AddNotice(NoticeInfo, "saved")
	s.Playback = &Playback{Text: "hello", MIMEType: "audio/mpeg", Base64: "AAAA"}

	notices := s.TakeNotices()
	assert.Len(t, notices, 1)
	assert.Empty(t, s.TakeNotices())

	p := s.TakePlayback()
	assert.Equal(t, "data:audio/mpeg;base64,AAAA", p.DataURI())
	assert.Nil(t, s.TakePlayback())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"AppError はメッセージをそのまま", NewAppError("X", "独自メッセージ", "", ErrInvalidInput), "独自メッセージ"},
		{"保留中の項目なし", ErrNoPendingEntry, "保存する単語がありません。"},
		{"見つからない", fmt.Errorf("wrap: %w", ErrNotFound), "対象の単語が見つかりません。"},
		{"その他", errors.New("boom"), "エラー: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
