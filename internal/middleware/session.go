package middleware

import (
	"context"
	"net/http"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/model"
	"go_5_vocab_flash/internal/session"

	"github.com/google/uuid"
)

type sessionCtxKey struct{}

// SessionMiddleware は cookie からセッションを取り出し (なければ作成し)、コンテキストに格納します。
// 同じセッションのリクエストは1つずつ処理する。
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *model.Session
			if c, err := r.Cookie(config.SessionCookieName); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					sess, _ = store.Get(id)
				}
			}
			if sess == nil {
				sess = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     config.SessionCookieName,
					Value:    sess.ID.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				GetLogger(r.Context()).Debug("Session created", "session_id", sess.ID.String())
			}

			sess.Lock()
			defer sess.Unlock()

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession はコンテキストからセッションを取得します。
func GetSession(ctx context.Context) (*model.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*model.Session)
	return sess, ok
}
