package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edirooss/pmx-registry/internal/config"
	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/http/dto"
	"github.com/edirooss/pmx-registry/internal/infrastructure/snapqueue"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() { gin.SetMode(gin.TestMode) }

type fixture struct {
	r       *gin.Engine
	inputs  *snapqueue.Queue[[]mixer.Input]
	outputs *snapqueue.Queue[[]mixer.Output]
	logs    *observer.ObservedLogs
}

func setup(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		inputs:  snapqueue.New[[]mixer.Input](),
		outputs: snapqueue.New[[]mixer.Output](),
	}
	reg, err := registry.New(zap.NewNop(), config.DefaultInputs(), config.DefaultOutputs(), f.inputs, f.outputs)
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	f.logs = logs

	f.r = gin.New()
	RegisterRoutes(f.r, zap.New(core), reg)
	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPing(t *testing.T) {
	w := setup(t).do(http.MethodGet, "/api/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestInputs_List(t *testing.T) {
	w := setup(t).do(http.MethodGet, "/api/inputs", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "9", w.Header().Get("X-Total-Count"))

	got := decode[[]dto.Input](t, w)
	require.Len(t, got, 9)
	require.Equal(t, "DSMPL", got[0].Name)
	require.Equal(t, dto.InputTypeNone, got[0].InputType)
}

func TestInputs_GetOne(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/inputs/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "SE02", decode[dto.Input](t, w).Name)

	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/inputs/99", "").Code)
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/inputs/x", "").Code)
}

func TestInputs_Rename(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPut, "/api/inputs/1/name", `{"name":"Kick"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Kick", decode[dto.Input](t, w).Name)

	snap, _, ok := f.inputs.DrainLatest()
	require.True(t, ok)
	require.Equal(t, "Kick", snap[0].Name)

	require.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/inputs/42/name", `{"name":"x"}`).Code)
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/inputs/1/name", `{}`).Code)
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/inputs/1/name", `{"name":"x","extra":1}`).Code)
	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/inputs/1/name", ``).Code)
}

func TestInputs_Ports(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPut, "/api/inputs/2/ports", `{"input_type":2,"left_port_path":"l","right_port_path":"r"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.Input](t, w)
	require.Equal(t, dto.InputTypeStereo, got.InputType)
	require.Equal(t, "l", *got.LeftPortPath)
	require.Equal(t, "r", *got.RightPortPath)

	w = f.do(http.MethodPut, "/api/inputs/2/ports", `{"input_type":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode[dto.Input](t, w).LeftPortPath)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"stereo missing right", "/api/inputs/2/ports", `{"input_type":2,"left_port_path":"l"}`, http.StatusBadRequest},
		{"mono missing left", "/api/inputs/2/ports", `{"input_type":1}`, http.StatusBadRequest},
		{"unknown type", "/api/inputs/2/ports", `{"input_type":3}`, http.StatusBadRequest},
		{"invalid before not found", "/api/inputs/77/ports", `{"input_type":1}`, http.StatusBadRequest},
		{"not found", "/api/inputs/77/ports", `{"input_type":1,"left_port_path":"p"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.status, f.do(http.MethodPut, tt.path, tt.body).Code)
		})
	}

	// Two successful updates, two snapshots; failures publish nothing.
	require.EqualValues(t, 2, f.inputs.Pushed())
}

func TestOutputs(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/outputs", "")
	require.Equal(t, "3", w.Header().Get("X-Total-Count"))
	outs := decode[[]dto.Output](t, w)
	require.Equal(t, dto.OutputTypeCue, outs[1].OutputType)

	w = f.do(http.MethodPut, "/api/outputs/2/ports", `{"right_port_path":"cue:r"}`)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[dto.Output](t, w)
	require.Equal(t, "cue:r", *out.LeftPortPath)
	require.Equal(t, "cue:r", *out.RightPortPath)

	snap, _, ok := f.outputs.DrainLatest()
	require.True(t, ok)
	require.Equal(t, mixer.Mono("cue:r"), snap[1].Ports)

	w = f.do(http.MethodPut, "/api/outputs/2/ports", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode[dto.Output](t, w).LeftPortPath)

	require.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/outputs/9/ports", `{}`).Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/outputs/9", "").Code)
}

func TestPlugins(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/plugins", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0", w.Header().Get("X-Total-Count"))
	require.JSONEq(t, `[]`, w.Body.String())

	body := `{"id":1,"mod_host_id":100,"name":"comp","plugin_uri":"http://calf.sourceforge.net/plugins/Compressor","plugin_type":0}`
	w = f.do(http.MethodPost, "/api/plugins", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, body, w.Body.String())

	w = f.do(http.MethodGet, "/api/plugins/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, body, w.Body.String())

	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/plugins", `{"plugin_type":4}`).Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/plugins/2", "").Code)
}

func TestChannelStrips(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/channel-strips", `{"id":1,"name":"Drums","channel_strip_type":1,"cross_fader_plugin_id":9,
		"saturator_plugin_id":1,"compressor_plugin_id":2,"equalizer_plugin_id":3,"gain_plugin_id":4}`)
	require.Equal(t, http.StatusCreated, w.Code)
	cs := decode[dto.ChannelStrip](t, w)
	require.Equal(t, dto.ChannelStripTypeCrossFaded, cs.ChannelStripType)
	require.EqualValues(t, 9, *cs.CrossFaderPluginID)

	w = f.do(http.MethodPost, "/api/channel-strips", `{"id":2,"name":"Bass","channel_strip_type":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/channel-strips", "")
	require.Equal(t, "1", w.Header().Get("X-Total-Count"))

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/channel-strips/1", "").Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/channel-strips/2", "").Code)
}

func TestLoopers(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/loopers", `{"loop_number":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":3,"name":"loop_3","loop_number":3}`, w.Body.String())

	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/loopers", `{}`).Code)

	w = f.do(http.MethodGet, "/api/loopers/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "loop_3", decode[dto.Looper](t, w).Name)
}

func TestOutputStages(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/output-stages", `{"name":"Main","left_channel_strip_id":1,"right_channel_strip_id":2,"cross_fader_plugin_id":7}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.EqualValues(t, 0, decode[dto.OutputStage](t, w).ID)

	w = f.do(http.MethodGet, "/api/output-stages", "")
	require.Equal(t, "1", w.Header().Get("X-Total-Count"))
	stages := decode[[]dto.OutputStage](t, w)
	require.Equal(t, "Main", stages[0].Name)

	w = f.do(http.MethodGet, "/api/output-stages/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 7, decode[dto.OutputStage](t, w).CrossFaderPluginID)

	require.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/output-stages/9", "").Code)
}

func TestFailedRequestsAreLogged(t *testing.T) {
	f := setup(t)

	require.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/inputs/99/name", `{"name":"x"}`).Code)
	entries := f.logs.FilterMessage("request rejected: not found").All()
	require.Len(t, entries, 1)
	require.Equal(t, "inputs", entries[0].LoggerName)
	require.Equal(t, zap.DebugLevel, entries[0].Level)
	require.Equal(t, "/api/inputs/:id/name", entries[0].ContextMap()["route"])

	require.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/inputs/2/ports", `{"input_type":2,"left_port_path":"l"}`).Code)
	require.Equal(t, 1, f.logs.FilterMessage("request rejected: invalid argument").Len())
}

func TestRegistrations_NeverPublish(t *testing.T) {
	f := setup(t)
	f.do(http.MethodPost, "/api/plugins", `{"id":1}`)
	f.do(http.MethodPost, "/api/loopers", `{"loop_number":1}`)
	f.do(http.MethodPost, "/api/output-stages", `{"id":1}`)

	require.Zero(t, f.inputs.Pushed())
	require.Zero(t, f.outputs.Pushed())
}
