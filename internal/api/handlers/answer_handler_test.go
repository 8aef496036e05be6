package handlers

import (
	"context"
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/askbedrock/internal/utils"
	"github.com/yoockh/askbedrock/web"
)

type fakeAnswerService struct {
	questions []string
	answer    string
	err       error
}

func (f *fakeAnswerService) GetAnswer(ctx context.Context, question string) (string, error) {
	f.questions = append(f.questions, question)
	return f.answer, f.err
}

func newTestRouter(svc *fakeAnswerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	h := NewAnswerHandler(svc)
	r.GET("/", h.Index)
	r.POST("/", h.Index)
	return r
}

func postForm(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// renderedAnswer extracts the answer block from the page; ok is false when none was rendered.
func renderedAnswer(body string) (string, bool) {
	const open, closing = `<pre id="answer">`, `</pre>`
	i := strings.Index(body, open)
	if i < 0 {
		return "", false
	}
	rest := body[i+len(open):]
	j := strings.Index(rest, closing)
	if j < 0 {
		return "", false
	}
	return html.UnescapeString(rest[:j]), true
}

func TestIndexGetRendersEmptyForm(t *testing.T) {
	svc := &fakeAnswerService{answer: "unused"}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="question"`) {
		t.Error("expected the question form in the page")
	}
	if _, ok := renderedAnswer(w.Body.String()); ok {
		t.Error("GET should render without an answer")
	}
	if len(svc.questions) != 0 {
		t.Errorf("service called %d times on GET", len(svc.questions))
	}
}

func TestIndexPostRendersAnswer(t *testing.T) {
	svc := &fakeAnswerService{answer: "Paris"}
	r := newTestRouter(svc)

	w := postForm(r, url.Values{"question": {"What is the capital of France?"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(svc.questions) != 1 || svc.questions[0] != "What is the capital of France?" {
		t.Fatalf("service calls = %q", svc.questions)
	}
	if got, _ := renderedAnswer(w.Body.String()); got != "Paris" {
		t.Errorf("answer = %q, want Paris", got)
	}
	if !strings.Contains(w.Body.String(), "What is the capital of France?") {
		t.Error("expected the question to be echoed back into the form")
	}
}

func TestIndexPostWithoutQuestion(t *testing.T) {
	for name, form := range map[string]url.Values{
		"empty":   {"question": {""}},
		"missing": {},
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeAnswerService{answer: "unused"}
			w := postForm(newTestRouter(svc), form)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if len(svc.questions) != 0 {
				t.Errorf("service should not be called, got %d calls", len(svc.questions))
			}
			if _, ok := renderedAnswer(w.Body.String()); ok {
				t.Error("expected no answer")
			}
		})
	}
}

func TestIndexPostRendersErrorWithOK(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", utils.E(utils.CodeTransport, "Op", "invoke model", errors.New("connection refused")), "Error: connection refused"},
		{"provider", utils.E(utils.CodeProvider, "Op", "invoke model", errors.New("ValidationException: bad model")), "Error: ValidationException: bad model"},
		{"malformed", utils.E(utils.CodeMalformedResponse, "Op", "decode response", errors.New("no completion")), "Error: no completion"},
		{"plain", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAnswerService{err: tt.err}
			w := postForm(newTestRouter(svc), url.Values{"question": {"hi"}})

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if got, _ := renderedAnswer(w.Body.String()); got != tt.want {
				t.Errorf("answer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIndexPostSameQuestionTwice(t *testing.T) {
	svc := &fakeAnswerService{answer: "42"}
	r := newTestRouter(svc)

	postForm(r, url.Values{"question": {"meaning of life"}})
	postForm(r, url.Values{"question": {"meaning of life"}})

	if len(svc.questions) != 2 {
		t.Errorf("expected 2 independent calls, got %d", len(svc.questions))
	}
}
