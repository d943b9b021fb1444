package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_speechService_Speak(t *testing.T) {
	ctx := context.Background()
	audio := []byte("ID3-fake-mp3")

	tests := []struct {
		name      string
		text      string
		setupMock func(s *mocks.Synthesizer)
		want      *model.Playback
		wantErr   error
	}{
		{
			name: "正常系: 英語で合成して base64 にする",
			text: "Hello world",
			setupMock: func(s *mocks.Synthesizer) {
				s.On("Synthesize", ctx, "Hello world", "en").Return(audio, nil).Once()
			},
			want: &model.Playback{
				Text:     "Hello world",
				MIMEType: "audio/mpeg",
				Base64:   base64.StdEncoding.EncodeToString(audio),
			},
		},
		{
			name:      "正常系: 空文字は何もしない",
			text:      "",
			setupMock: func(s *mocks.Synthesizer) {},
			want:      nil,
		},
		{
			name:      "正常系: 空白のみも何もしない",
			text:      "  \n ",
			setupMock: func(s *mocks.Synthesizer) {},
			want:      nil,
		},
		{
			name: "異常系: 合成失敗は ErrSynthesis",
			text: "apple",
			setupMock: func(s *mocks.Synthesizer) {
				s.On("Synthesize", ctx, "apple", "en").Return(nil, errors.New("permission denied")).Once()
			},
			wantErr: model.ErrSynthesis,
		},
		{
			name: "異常系: 空の音声は ErrSynthesis",
			text: "apple",
			setupMock: func(s *mocks.Synthesizer) {
				s.On("Synthesize", ctx, "apple", "en").Return([]byte{}, nil).Once()
			},
			wantErr: model.ErrSynthesis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := mocks.NewSynthesizer(t)
			tt.setupMock(synth)

			svc := NewSpeechService(synth, "en")
			got, err := svc.Speak(ctx, tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_speechService_Disabled(t *testing.T) {
	svc := NewSpeechService(nil, "")

	got, err := svc.Speak(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Speak(context.Background(), "hello")
	assert.ErrorIs(t, err, model.ErrFeatureDisabled)
}
