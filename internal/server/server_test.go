package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-builder/internal/fieldparse"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/llm/llmtest"
	"github.com/jonathan/resume-builder/internal/types"
)

const sampleText = `张三
电话：13800138000 | 邮箱：zhangsan@example.com

【个人简介】
五年后端开发经验，熟悉分布式系统。

【教育背景】
北京大学 | 计算机科学 | 本科 | 2012-2016

【工作经历】
Acme科技 | 高级工程师 | 2016-2021
- 主导订单系统重构，延迟降低40%

【专业技能】
Go、Kafka、PostgreSQL`

func newTestServer(t *testing.T, client llm.Client, cfg Config) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "")
	s := New(cfg, client, nil, zap.NewNop())
	t.Cleanup(s.Close)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["model"])
}

func TestParseAndSerialize(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/parse", TextRequest{Text: sampleText})
	require.Equal(t, http.StatusOK, w.Code)
	parsed := decode[RecordResponse](t, w)
	assert.Equal(t, "张三", parsed.Record.Name)
	assert.Equal(t, "zhangsan@example.com", parsed.Record.Email)
	require.Len(t, parsed.Record.Experience, 1)
	assert.Equal(t, []string{"Go", "Kafka", "PostgreSQL"}, parsed.Record.Skills)

	w = doJSON(t, s, http.MethodPost, "/resume/serialize", RecordRequest{Record: parsed.Record})
	require.Equal(t, http.StatusOK, w.Code)
	serialized := decode[RecordResponse](t, w)
	assert.Contains(t, serialized.Text, "【工作经历】")
	assert.Contains(t, serialized.Text, "- 主导订单系统重构，延迟降低40%")
}

func TestRepairEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/repair", RepairRequest{
		Content: "```json\n{\"name\": \"张三\", \"phone\": \"13800138000\",}\n```",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "repaired", resp["strategy"])
	assert.Equal(t, "张三", resp["record"].(map[string]any)["name"])

	w = doJSON(t, s, http.MethodPost, "/resume/repair", RepairRequest{Content: "no json here"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, s, http.MethodPost, "/resume/repair", RepairRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkdownEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/markdown", DiagnoseRequest{Text: sampleText})

	require.Equal(t, http.StatusOK, w.Code)
	md := decode[map[string]string](t, w)["markdown"]
	assert.True(t, strings.HasPrefix(md, "# 我的简历"))
	assert.Contains(t, md, "## 工作经历")
}

func TestTranslateEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/translate", DiagnoseRequest{Text: sampleText})
	require.Equal(t, http.StatusOK, w.Code)
	text := decode[map[string]string](t, w)["text"]
	assert.Contains(t, text, "Phone: 13800138000 | Email: zhangsan@example.com")
	assert.Contains(t, text, "[Work Experience]")
	assert.NotContains(t, text, "【")

	rec := types.NewResumeRecord()
	rec.Name = "张三"
	rec.Skills = []string{"Go"}
	w = doJSON(t, s, http.MethodPost, "/resume/translate", DiagnoseRequest{Record: &rec})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "张三\n\n[Skills]\nGo\n", decode[map[string]string](t, w)["text"])
}

func TestDiagnoseEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/diagnose", DiagnoseRequest{
		Text:     sampleText,
		Keywords: []string{"Go", "Kubernetes"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[types.DiagnosisResult](t, w)
	assert.NotEmpty(t, result.Grade)
	assert.NotEmpty(t, result.Dimensions)

	w = doJSON(t, s, http.MethodPost, "/resume/diagnose", DiagnoseRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreAndMatchEndpoints(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/score", DiagnoseRequest{Text: sampleText})
	require.Equal(t, http.StatusOK, w.Code)
	score := decode[types.ResumeScore](t, w)
	assert.NotEmpty(t, score.Dimensions)

	w = doJSON(t, s, http.MethodPost, "/resume/match", DiagnoseRequest{
		Text:     sampleText,
		Keywords: []string{"Go", "Kubernetes"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	match := decode[types.JobMatchResult](t, w)
	assert.Equal(t, 50, match.MatchScore)
	assert.Equal(t, []string{"Kubernetes"}, match.MissingSkills)

	w = doJSON(t, s, http.MethodPost, "/resume/match", DiagnoseRequest{Text: sampleText})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/resume/score", DiagnoseRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/edit", map[string]any{
		"record": types.NewResumeRecord(),
		"ops": []map[string]any{
			{"op": "set", "section": "name", "value": "李四"},
			{"op": "add", "section": "skills", "value": "Rust"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[RecordResponse](t, w)
	assert.Equal(t, "李四", resp.Record.Name)
	assert.Equal(t, []string{"Rust"}, resp.Record.Skills)

	w = doJSON(t, s, http.MethodPost, "/resume/edit", map[string]any{
		"record": types.NewResumeRecord(),
		"ops":    []map[string]any{{"op": "remove", "section": "education", "index": 3}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})
	body := strings.Repeat("负责后端服务开发与维护，", 10)

	w := doJSON(t, s, http.MethodPost, "/resume/upload", UploadRequest{
		Content: "<html><body><nav>菜单</nav><p>" + body + "</p></body></html>",
		Format:  "html",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.NotContains(t, resp["text"], "菜单")
	assert.NotEmpty(t, resp["hash"])

	w = doJSON(t, s, http.MethodPost, "/resume/upload", UploadRequest{Content: "太短"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/resume/upload", UploadRequest{Content: body, Format: "pdf"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestModelEndpoints_NoClient(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/auto-parse", TextRequest{Text: sampleText})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, s, http.MethodPost, "/chat", ChatRequest{
		Messages: []types.ChatMessage{{Role: types.RoleUser, Content: "你好"}},
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAutoParseEndpoint(t *testing.T) {
	client := &llmtest.MockClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"name": "张三", "email": "zhangsan@example.com", "skills": ["golang"]}`, nil
		},
	}
	s := newTestServer(t, client, Config{})

	w := doJSON(t, s, http.MethodPost, "/resume/auto-parse", TextRequest{Text: sampleText})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "strict", resp["strategy"])
	assert.Contains(t, resp["text"], "张三")

	w = doJSON(t, s, http.MethodPost, "/resume/auto-parse", TextRequest{Text: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/resume/auto-parse", TextRequest{Text: "张三\n技能：Go"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, client.Prompts(), 1)
}

func TestChatEndpoint(t *testing.T) {
	client := &llmtest.MockClient{
		GenerateChatFunc: func(_ context.Context, _ string, _ []types.ChatMessage, _ llm.ModelTier) (string, error) {
			return "已更新。\n---简历开始---\n张三\n电话：13800138000\n---简历结束---", nil
		},
	}
	s := newTestServer(t, client, Config{})

	w := doJSON(t, s, http.MethodPost, "/chat", ChatRequest{
		Messages: []types.ChatMessage{{Role: types.RoleUser, Content: "我叫张三"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, true, resp["updated"])
	assert.Equal(t, "张三", resp["record"].(map[string]any)["name"])

	w = doJSON(t, s, http.MethodPost, "/chat", ChatRequest{
		Messages: []types.ChatMessage{{Role: types.RoleAssistant, Content: "你好"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/chat", ChatRequest{
		Messages: []types.ChatMessage{{Role: "robot", Content: "你好"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatBlocksEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	message := "---简历开始---\n张三\n---简历结束---\n" +
		"---面试反馈开始---\n{\"overallScore\": 80, \"strengths\": [\"表达清晰\"]}\n---面试反馈结束---"
	w := doJSON(t, s, http.MethodPost, "/chat/blocks", ChatBlocksRequest{Message: message})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ChatBlocksResponse](t, w)
	assert.True(t, resp.HasResume)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "张三", resp.Record.Name)
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, 80, resp.Feedback.OverallScore)

	w = doJSON(t, s, http.MethodPost, "/chat/blocks", ChatBlocksRequest{Message: "普通回复"})
	resp = decode[ChatBlocksResponse](t, w)
	assert.False(t, resp.HasResume)
	assert.Nil(t, resp.Feedback)
}

func TestGreetingEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodGet, "/chat/greeting", nil)

	require.Equal(t, http.StatusOK, w.Code)
	msg := decode[types.ChatMessage](t, w)
	assert.Equal(t, types.RoleAssistant, msg.Role)
	assert.NotEmpty(t, msg.Content)
}

func constantClient(answer string) *llmtest.MockClient {
	return &llmtest.MockClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return answer, nil
		},
	}
}

func TestFieldSessionLifecycle(t *testing.T) {
	s := newTestServer(t, constantClient("张三"), Config{})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: sampleText})
	require.Equal(t, http.StatusCreated, w.Code)
	snap := decode[fieldparse.Snapshot](t, w)
	require.NotEmpty(t, snap.ID)
	base := "/field-sessions/" + snap.ID

	w = doJSON(t, s, http.MethodPost, base+"/accept", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "nothing to accept yet")

	w = doJSON(t, s, http.MethodPost, base+"/extract", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[fieldparse.Snapshot](t, w)
	assert.Equal(t, fieldparse.StateReviewing, snap.State)
	assert.Equal(t, "张三", snap.Proposal)
	assert.Empty(t, snap.Record.Name)

	w = doJSON(t, s, http.MethodPost, base+"/accept", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[fieldparse.Snapshot](t, w)
	assert.Equal(t, "张三", snap.Record.Name)
	assert.Equal(t, 1, snap.Step)

	w = doJSON(t, s, http.MethodPost, base+"/edit", EditFieldRequest{Value: "13800138000"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, base+"/skip", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[fieldparse.Snapshot](t, w)
	assert.Equal(t, 2, snap.Step)

	w = doJSON(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode[fieldparse.Snapshot](t, w)
	assert.Equal(t, "13800138000", snap.Record.Phone)

	w = doJSON(t, s, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFieldSessionBadEdit(t *testing.T) {
	s := newTestServer(t, constantClient("张三"), Config{})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: sampleText})
	base := "/field-sessions/" + decode[fieldparse.Snapshot](t, w).ID
	for i := 0; i < 4; i++ {
		require.Equal(t, http.StatusOK, doJSON(t, s, http.MethodPost, base+"/skip", nil).Code)
	}

	w = doJSON(t, s, http.MethodPost, base+"/edit", EditFieldRequest{Value: "not a list"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Contains(t, resp["error"], "education")
	assert.EqualValues(t, 4, resp["session"].(map[string]any)["step"])
}

func TestFieldSessionFailedExtract(t *testing.T) {
	s := newTestServer(t, constantClient("张三"), Config{})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: sampleText})
	base := "/field-sessions/" + decode[fieldparse.Snapshot](t, w).ID
	for i := 0; i < 4; i++ {
		doJSON(t, s, http.MethodPost, base+"/skip", nil)
	}

	w = doJSON(t, s, http.MethodPost, base+"/extract", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	snap := decode[map[string]any](t, w)["session"].(map[string]any)
	assert.Equal(t, string(fieldparse.StateAwaiting), snap["state"])
}

func TestFieldSessionCreateRequiresText(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: " "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFieldSessionIdleExpiry(t *testing.T) {
	s := newTestServer(t, constantClient("张三"), Config{SessionIdle: 20 * time.Millisecond})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: sampleText})
	require.Equal(t, http.StatusCreated, w.Code)
	snap := decode[fieldparse.Snapshot](t, w)

	assert.Eventually(t, func() bool { return s.sessions.Len() == 0 }, 2*time.Second, 5*time.Millisecond)

	w = doJSON(t, s, http.MethodGet, "/field-sessions/"+snap.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFieldSessionStream(t *testing.T) {
	s := newTestServer(t, constantClient("张三"), Config{})

	w := doJSON(t, s, http.MethodPost, "/field-sessions", CreateSessionRequest{Text: sampleText})
	id := decode[fieldparse.Snapshot](t, w).ID

	w = doJSON(t, s, http.MethodPost, "/field-sessions/"+id+"/stream", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Equal(t, len(fieldparse.Fields), strings.Count(body, "event: field\n"))
	assert.Equal(t, 4, strings.Count(body, "event: error\n"), "list fields cannot decode a plain answer")
	require.Contains(t, body, "event: complete\n")

	completeData := body[strings.Index(body, "event: complete\n"):]
	assert.Contains(t, completeData, `"name":"张三"`)
}

func TestShareEndpoints(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	w := doJSON(t, s, http.MethodPost, "/shares", ShareRequest{Source: "cv", Title: "张三", Content: sampleText, TTLHours: 24})
	require.Equal(t, http.StatusCreated, w.Code)
	share := decode[types.SharedResume](t, w)
	require.Len(t, share.Code, 8)
	require.NotNil(t, share.ExpiresAt)

	w = doJSON(t, s, http.MethodPost, "/shares", ShareRequest{Source: "cv", Content: "另一份"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, share.Code, decode[types.SharedResume](t, w).Code)

	w = doJSON(t, s, http.MethodGet, "/shares/"+share.Code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[types.SharedResume](t, w)
	assert.Equal(t, sampleText, got.Content)
	assert.Equal(t, 1, got.ViewCount)

	w = doJSON(t, s, http.MethodDelete, "/shares/"+share.Code, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, s, http.MethodGet, "/shares/"+share.Code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, s, http.MethodDelete, "/shares/"+share.Code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShareEndpoints_Validation(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	rec := types.NewResumeRecord()
	rec.Name = "张三"
	w := doJSON(t, s, http.MethodPost, "/shares", ShareRequest{Record: &rec})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "张三\n", decode[types.SharedResume](t, w).Content)

	tests := []struct {
		name string
		req  ShareRequest
	}{
		{"no content", ShareRequest{Source: "cv"}},
		{"blank content", ShareRequest{Content: "  "}},
		{"negative ttl", ShareRequest{Content: "张三", TTLHours: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/shares", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDraftEndpoints(t *testing.T) {
	s := newTestServer(t, nil, Config{})
	path := "/drafts/resume-ai-autosave"

	w := doJSON(t, s, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodPut, path, types.Draft{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[map[string]bool](t, w)["saved"])

	w = doJSON(t, s, http.MethodPut, path, types.Draft{
		Resume:   sampleText,
		Messages: []types.ChatMessage{{Role: "robot", Content: "hi"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPut, path, types.Draft{Resume: sampleText, TargetJob: "后端工程师"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[map[string]bool](t, w)["saved"])

	w = doJSON(t, s, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	draft := decode[types.Draft](t, w)
	assert.Equal(t, "后端工程师", draft.TargetJob)
	assert.NotZero(t, draft.Timestamp)

	w = doJSON(t, s, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordEndpoints(t *testing.T) {
	s := newTestServer(t, nil, Config{})
	rec := types.NewResumeRecord()
	rec.Name = "张三"
	rec.Skills = []string{"Go"}

	w := doJSON(t, s, http.MethodPut, "/records/main", RecordRequest{Record: rec})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/records/main", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[RecordResponse](t, w)
	assert.Equal(t, "张三", resp.Record.Name)
	assert.Contains(t, resp.Text, "【专业技能】")
}

func TestInvalidBody(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	req := httptest.NewRequest(http.MethodPost, "/resume/parse", strings.NewReader("{"))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, nil, Config{CORSOrigin: "https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, nil, Config{RateLimit: 1, RateBurst: 1})

	w := doJSON(t, s, http.MethodPost, "/resume/parse", TextRequest{Text: sampleText})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = doJSON(t, s, http.MethodPost, "/resume/parse", TextRequest{Text: sampleText})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	t.Setenv("RATE_LIMIT_ENABLED", "")
	s := New(Config{}, nil, nil, zap.New(core))
	t.Cleanup(s.Close)

	doJSON(t, s, http.MethodGet, "/health", nil)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
