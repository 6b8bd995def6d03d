package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/minerva"
	minervahttp "github.com/aretw0/minerva/pkg/adapters/http"
	"github.com/aretw0/minerva/pkg/catalog"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEngine struct{}

func (failingEngine) Reply(context.Context, string, string) (domain.Reply, error) {
	return domain.Reply{}, errors.New("connection refused")
}

func (failingEngine) Inspect() []domain.Node { return nil }

type fakeMetrics struct {
	routes []string
}

func (f *fakeMetrics) ObserveRequest(route string, _ int, _ time.Duration) {
	f.routes = append(f.routes, route)
}

func (f *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("minerva_transitions_total 0\n"))
	})
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	header http.Header
}

func (b *brokenWriter) Header() http.Header { return b.header }
func (b *brokenWriter) WriteHeader(int) {}
func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func newHandler(t *testing.T, engine minervahttp.Engine, opts ...minervahttp.Option) http.Handler {
	t.Helper()
	h, err := minervahttp.NewServer(engine, opts...).Handler()
	require.NoError(t, err)
	return h
}

func newBot(t *testing.T) *minerva.Bot {
	t.Helper()
	bot, err := minerva.New()
	require.NoError(t, err)
	return bot
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestChatbot_Conversation(t *testing.T) {
	bot := newBot(t)
	h := newHandler(t, bot)

	rr := post(h, `{"usuario":"ana","mensaje":"hola"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	out := decode(t, rr)
	assert.Equal(t, catalog.StartNodeID, out["estado"])
	start, _ := bot.Graph().MessageFor(catalog.StartNodeID)
	assert.Equal(t, start+"\nPor favor elige una de las opciones válidas.", out["respuesta"])

	rr = post(h, `{"usuario":"ana","mensaje":" 5 "}`)
	require.Equal(t, http.StatusOK, rr.Code)
	out = decode(t, rr)
	assert.Equal(t, "general", out["estado"])
	general, _ := bot.Graph().MessageFor("general")
	assert.Equal(t, general, out["respuesta"])

	rr = post(h, `{"usuario":"ana","mensaje":"NO"}`)
	out = decode(t, rr)
	assert.Equal(t, catalog.TerminalNodeID, out["estado"])
}

func TestChatbot_RejectsMalformedRequests(t *testing.T) {
	h := newHandler(t, newBot(t))

	tests := map[string]string{
		"invalid json":    `{"usuario":`,
		"missing mensaje": `{"usuario":"ana"}`,
		"missing usuario": `{"mensaje":"1"}`,
		"wrong type":      `{"usuario":"ana","mensaje":1}`,
		"empty body":      ``,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rr := post(h, body)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.NotEmpty(t, decode(t, rr)["detail"])
		})
	}
}

func TestChatbot_ControlCharactersDoNotMatch(t *testing.T) {
	bot := newBot(t)
	h := newHandler(t, bot)

	rr := post(h, `{"usuario":"u3","mensaje":"1\u0000"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	out := decode(t, rr)
	assert.Equal(t, catalog.StartNodeID, out["estado"])
	start, _ := bot.Graph().MessageFor(catalog.StartNodeID)
	assert.Equal(t, start+"\nPor favor elige una de las opciones válidas.", out["respuesta"])
}

func TestChatbot_MissingContentTypeDefaultsToJSON(t *testing.T) {
	h := newHandler(t, newBot(t))

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"usuario":"u","mensaje":"1"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sociosanitario", decode(t, rr)["estado"])
}

func TestChatbot_Oversized(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		h := newHandler(t, newBot(t), minervahttp.WithMaxInputSize(8))
		rr := post(h, `{"usuario":"ana","mensaje":"123456789"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("Body", func(t *testing.T) {
		h := newHandler(t, newBot(t), minervahttp.WithMaxBody(16))
		rr := post(h, `{"usuario":"ana","mensaje":"1"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestChatbot_StoreFailure(t *testing.T) {
	h := newHandler(t, failingEngine{})

	rr := post(h, `{"usuario":"ana","mensaje":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal error", decode(t, rr)["detail"])
}

func TestChatbot_MethodNotAllowed(t *testing.T) {
	h := newHandler(t, newBot(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/chatbot", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestIntrospection(t *testing.T) {
	h := newHandler(t, newBot(t))

	get := func(path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr
	}

	t.Run("Health", func(t *testing.T) {
		rr := get("/health")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", decode(t, rr)["status"])
	})

	t.Run("Info", func(t *testing.T) {
		rr := get("/info")
		require.Equal(t, http.StatusOK, rr.Code)
		out := decode(t, rr)
		assert.Equal(t, minervahttp.AppName, out["app"])
		assert.Equal(t, strings.TrimSpace(minerva.Version), out["version"])
		assert.Equal(t, "1.0.0", out["api_version"])
	})

	t.Run("Graph", func(t *testing.T) {
		rr := get("/graph")
		require.Equal(t, http.StatusOK, rr.Code)
		var nodes []domain.Node
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nodes))
		require.Len(t, nodes, len(catalog.Nodes()))
		assert.Equal(t, catalog.StartNodeID, nodes[0].ID)
	})

	t.Run("OpenAPI", func(t *testing.T) {
		rr := get("/openapi.yaml")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, string(minervahttp.OpenAPIDocument()), rr.Body.String())
		assert.Contains(t, rr.Body.String(), "MinervaBot API")
	})

	t.Run("Metrics Disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("/metrics").Code)
	})
}

func TestOpenAPI_WriteFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	h := newHandler(t, newBot(t), minervahttp.WithLogger(logger))

	h.ServeHTTP(&brokenWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Contains(t, logs.String(), "openapi document write failed")
	assert.Contains(t, logs.String(), "broken pipe")
}

func TestMetrics(t *testing.T) {
	m := &fakeMetrics{}
	h := newHandler(t, newBot(t), minervahttp.WithMetrics(m))

	post(h, `{"usuario":"ana","mensaje":"1"}`)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "minerva_transitions_total")
	assert.Contains(t, m.routes, "/chatbot")
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := minervahttp.LoadOpenAPI(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/chatbot"))
}
