// internal/handlers/page_handler.go
package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/service"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageOptions は画面の表示設定です。
type PageOptions struct {
	Title          string
	SpreadsheetURL string
	RichEntries    bool
	AudioEnabled   bool
}

// PageHandler は単語帳の画面 (GET /) とフォーム送信 (POST -> リダイレクト) を扱います。
// 状態はすべてセッションに置き、POST の後は必ず / に戻す。
type PageHandler struct {
	draft   service.DraftService
	edit    service.EditService
	review  service.ReviewService
	speech  service.SpeechService
	options PageOptions
	tmpl    *template.Template
	logger  *slog.Logger
}

func NewPageHandler(
	draft service.DraftService,
	edit service.EditService,
	review service.ReviewService,
	speech service.SpeechService,
	options PageOptions,
	logger *slog.Logger,
) (*PageHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		draft:   draft,
		edit:    edit,
		review:  review,
		speech:  speech,
		options: options,
		tmpl:    tmpl,
		logger:  logger,
	}, nil
}

// Register は画面のルートを登録します。SessionMiddleware の内側で使うこと。
func (h *PageHandler) Register(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/generate", h.Generate)
	r.Post("/pending/confirm", h.ConfirmPending)
	r.Post("/pending/cancel", h.CancelPending)
	r.Post("/edit/select", h.SelectEdit)
	r.Post("/edit/regenerate", h.RegenerateEdit)
	r.Post("/edit/save", h.SaveEdit)
	r.Post("/review/reveal-all", h.ToggleRevealAll)
	r.Post("/review/toggle", h.ToggleReveal)
	r.Post("/speak", h.Speak)
}

type modeOption struct {
	Value   model.GenerationMode
	Label   string
	Checked bool
}

type pageView struct {
	PageOptions

	Modes       []modeOption
	Notices     []model.Notice
	Playback    *model.Playback
	PlaybackSrc template.URL

	Pending *model.EntryForm

	Words []string
	Edit  model.EditSession

	Query     string
	RevealAll bool
	Rows      []model.ReviewRow
}

// Index は画面全体を描画します。通知と音声はここで1回だけ取り出す。
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Index"))
	ctx := r.Context()

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	view := pageView{
		PageOptions: h.options,
		Query:       strings.TrimSpace(r.URL.Query().Get("q")),
		RevealAll:   sess.RevealAll,
		Edit:        sess.Edit,
	}
	for _, m := range []model.GenerationMode{model.ModeWordToEntry, model.ModePhraseToEntry} {
		view.Modes = append(view.Modes, modeOption{Value: m, Label: m.Label(), Checked: sess.Mode == m})
	}
	if form, ok := h.draft.PendingForm(sess); ok {
		view.Pending = &form
	}

	loadFailed := false
	words, err := h.edit.Words(ctx)
	if err != nil {
		logger.Error("Failed to load words", slog.Any("error", err))
		sess.AddNotice(model.NoticeError, model.UserMessage(err))
		loadFailed = true
	}
	view.Words = words

	rows, err := h.review.Render(ctx, model.ReviewQuery{
		Search:    view.Query,
		RevealAll: sess.RevealAll,
		Revealed:  sess.Revealed,
	})
	if err != nil {
		logger.Error("Failed to render review list", slog.Any("error", err))
		// 同じ読み込みエラーを2回出さない
		if !loadFailed {
			sess.AddNotice(model.NoticeError, model.UserMessage(err))
		}
	}
	view.Rows = rows

	view.Notices = sess.TakeNotices()
	if p := sess.TakePlayback(); p != nil {
		view.Playback = p
		// data: URI はそのままだと html/template に無害化される
		view.PlaybackSrc = template.URL(p.DataURI())
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", view); err != nil {
		logger.Error("Failed to execute template", slog.Any("error", err))
		http.Error(w, "画面の描画に失敗しました。", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// Generate は生成フォームの送信です。
func (h *PageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Generate"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	mode, ok := model.ParseGenerationMode(r.PostFormValue("mode"))
	if !ok {
		mode = model.ModeWordToEntry
	}
	sess.Mode = mode
	seed := strings.TrimSpace(r.PostFormValue("text"))
	if seed == "" {
		sess.AddNotice(model.NoticeError, "単語を入力してください。")
		h.redirect(w, r)
		return
	}

	if err := h.draft.Generate(r.Context(), sess, mode, seed); err != nil {
		h.notifyError(sess, logger, "Generation failed", err)
	} else {
		logger.Info("Pending entry generated", slog.String("mode", string(mode)))
	}
	h.redirect(w, r)
}

// ConfirmPending は保留中の項目をフォームの値で追加します。
func (h *PageHandler) ConfirmPending(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ConfirmPending"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	entry, err := h.draft.Confirm(r.Context(), sess, entryFormFromRequest(r))
	if err != nil {
		h.notifyError(sess, logger, "Failed to confirm pending entry", err)
	} else {
		logger.Info("Entry appended", slog.String("word", entry.Word))
		sess.AddNotice(model.NoticeInfo, "「"+entry.Word+"」を追加しました。")
	}
	h.redirect(w, r)
}

func (h *PageHandler) CancelPending(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CancelPending"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	h.draft.Cancel(sess)
	h.redirect(w, r)
}

func (h *PageHandler) SelectEdit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectEdit"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	if err := h.edit.Select(r.Context(), sess, r.PostFormValue("word")); err != nil {
		h.notifyError(sess, logger, "Failed to select entry", err)
	}
	h.redirect(w, r)
}

// RegenerateEdit は入力中の値を残したうえで、word 以外を再生成します。
func (h *PageHandler) RegenerateEdit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RegenerateEdit"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	prev := sess.Edit.Fields
	if sess.Edit.Loaded {
		sess.Edit.Fields = h.editedForm(r, prev)
	}
	if err := h.edit.Regenerate(r.Context(), sess); err != nil {
		h.notifyError(sess, logger, "Regeneration failed", err)
	}
	if sess.Edit.Loaded && !h.options.RichEntries {
		sess.Edit.Fields = sess.Edit.Fields.KeepRichFields(prev)
	}
	h.redirect(w, r)
}

func (h *PageHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveEdit"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	target := sess.Edit.Target
	updated, err := h.edit.Save(r.Context(), sess, h.editedForm(r, sess.Edit.Fields))
	if err != nil {
		h.notifyError(sess, logger, "Failed to save entry", err)
	} else {
		logger.Info("Entry updated", slog.String("target", target), slog.String("word", updated.Word))
		sess.AddNotice(model.NoticeInfo, "「"+target+"」を更新しました。")
	}
	h.redirect(w, r)
}

func (h *PageHandler) ToggleRevealAll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleRevealAll"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	sess.RevealAll = !sess.RevealAll
	h.redirect(w, r)
}

func (h *PageHandler) ToggleReveal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleReveal"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	if key := r.PostFormValue("key"); key != "" {
		sess.ToggleReveal(key)
	}
	h.redirect(w, r)
}

// Speak は音声を合成し、次の描画で自動再生させます。
func (h *PageHandler) Speak(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Speak"))
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	playback, err := h.speech.Speak(r.Context(), r.PostFormValue("text"))
	if err != nil {
		h.notifyError(sess, logger, "Speech synthesis failed", err)
	} else if playback != nil {
		sess.Playback = playback
	}
	h.redirect(w, r)
}

func (h *PageHandler) session(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*model.Session, bool) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		logger.Error("Session not found in context")
		http.Error(w, "セッションが見つかりません。", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

func (h *PageHandler) notifyError(sess *model.Session, logger *slog.Logger, msg string, err error) {
	if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrNoPendingEntry) || errors.Is(err, model.ErrNotFound) {
		logger.Warn(msg, slog.Any("error", err))
	} else {
		logger.Error(msg, slog.Any("error", err))
	}
	sess.AddNotice(model.NoticeError, model.UserMessage(err))
}

// redirect は検索条件 (q) を保ったまま / に戻します。
func (h *PageHandler) redirect(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if q := strings.TrimSpace(r.FormValue("q")); q != "" {
		target += "?" + url.Values{"q": {q}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// editedForm は編集フォームの送信値を読みます。
// RichEntries が無効なら phonetic と synonyms はフォームにないので prev の値を使う。
func (h *PageHandler) editedForm(r *http.Request, prev model.EntryForm) model.EntryForm {
	form := entryFormFromRequest(r)
	if !h.options.RichEntries {
		form = form.KeepRichFields(prev)
	}
	return form
}

func entryFormFromRequest(r *http.Request) model.EntryForm {
	return model.EntryForm{
		Word:      strings.TrimSpace(r.PostFormValue(model.ColumnWord)),
		Meaning:   strings.TrimSpace(r.PostFormValue(model.ColumnMeaning)),
		Phonetic:  strings.TrimSpace(r.PostFormValue(model.ColumnPhonetic)),
		ExampleEN: strings.TrimSpace(r.PostFormValue(model.ColumnExampleEN)),
		ExampleJA: strings.TrimSpace(r.PostFormValue(model.ColumnExampleJA)),
		Synonyms:  strings.TrimSpace(r.PostFormValue(model.ColumnSynonyms)),
	}
}
