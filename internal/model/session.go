package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session は1ユーザーセッション分の一時的な状態です。
// スプレッドシートが唯一の正であり、ここに置くものは保存・遷移で破棄される。
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	CreatedAt time.Time
	LastSeen  time.Time

	// 生成直後で未保存の項目 (nil = なし)
	Pending *Entry
	// 生成フォームで最後に選んだモード
	Mode GenerationMode

	Edit EditSession

	// 一覧の表示状態
	RevealAll bool
	Revealed  map[string]bool

	// 次の描画で1回だけ再生/表示するもの
	Playback *Playback
	Notices  []Notice
}

// NewSession は初期状態のセッションを作成します。
func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
		Mode:      ModeWordToEntry,
		Revealed:  make(map[string]bool),
	}
}

// Lock/Unlock は同一セッションのリクエストを直列化します。
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// EditSession は既存単語編集の状態です。
type EditSession struct {
	// 最後に選択した単語。"" なら未選択 (Selecting)
	Target string
	Fields EntryForm
	Loaded bool
}

// Reset は編集状態をSelectingに戻します。
func (e *EditSession) Reset() {
	*e = EditSession{}
}

// Playback はクライアントで自動再生する音声です。
type Playback struct {
	Text     string `json:"text"`
	MIMEType string `json:"mime_type"`
	Base64   string `json:"audio_base64"`
}

// DataURI は <audio src> に埋め込む形式を返します。
func (p *Playback) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + p.Base64
}

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice は画面に1回だけ表示するメッセージです。
type Notice struct {
	Level   NoticeLevel
	Message string
}

func (s *Session) AddNotice(level NoticeLevel, msg string) {
	s.Notices = append(s.Notices, Notice{Level: level, Message: msg})
}

// TakeNotices は表示待ちのメッセージを取り出して空にします。
func (s *Session) TakeNotices() []Notice {
	n := s.Notices
	s.Notices = nil
	return n
}

// TakePlayback は再生待ちの音声を取り出して空にします。
func (s *Session) TakePlayback() *Playback {
	p := s.Playback
	s.Playback = nil
	return p
}

// ToggleReveal は行ごとの表示切替を反転します。
func (s *Session) ToggleReveal(key string) {
	if s.Revealed == nil {
		s.Revealed = make(map[string]bool)
	}
	if s.Revealed[key] {
		delete(s.Revealed, key)
		return
	}
	s.Revealed[key] = true
}
