package pmxclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edirooss/pmx-registry/internal/http/dto"
	"github.com/edirooss/pmx-registry/pkg/jsonx"
)

// ---------- Inputs ----------

func (c *Client) ListInputs(ctx context.Context) ([]dto.Input, error) {
	return get[[]dto.Input](ctx, c, "/api/inputs")
}

func (c *Client) GetInput(ctx context.Context, id uint32) (dto.Input, error) {
	return get[dto.Input](ctx, c, fmt.Sprintf("/api/inputs/%d", id))
}

func (c *Client) UpdateInputName(ctx context.Context, id uint32, name string) (dto.Input, error) {
	return send[dto.Input](ctx, c, http.MethodPut, fmt.Sprintf("/api/inputs/%d/name", id), dto.InputNameUpdate{Name: jsonx.Set(name)})
}

func (c *Client) UpdateInputPorts(ctx context.Context, id uint32, req dto.InputPortsUpdate) (dto.Input, error) {
	return send[dto.Input](ctx, c, http.MethodPut, fmt.Sprintf("/api/inputs/%d/ports", id), req)
}

func (c *Client) AssignMonoPort(ctx context.Context, id uint32, path string) (dto.Input, error) {
	return c.UpdateInputPorts(ctx, id, dto.InputPortsUpdate{InputType: dto.InputTypeMono, LeftPortPath: &path})
}

func (c *Client) AssignStereoPort(ctx context.Context, id uint32, left, right string) (dto.Input, error) {
	return c.UpdateInputPorts(ctx, id, dto.InputPortsUpdate{InputType: dto.InputTypeStereo, LeftPortPath: &left, RightPortPath: &right})
}

func (c *Client) RemovePort(ctx context.Context, id uint32) (dto.Input, error) {
	return c.UpdateInputPorts(ctx, id, dto.InputPortsUpdate{InputType: dto.InputTypeNone})
}

// ---------- Outputs ----------

func (c *Client) ListOutputs(ctx context.Context) ([]dto.Output, error) {
	return get[[]dto.Output](ctx, c, "/api/outputs")
}

func (c *Client) GetOutput(ctx context.Context, id uint32) (dto.Output, error) {
	return get[dto.Output](ctx, c, fmt.Sprintf("/api/outputs/%d", id))
}

// AssignOutputPort binds an output. nil paths are omitted: none unbinds,
// one binds mono, both bind stereo.
func (c *Client) AssignOutputPort(ctx context.Context, id uint32, left, right *string) (dto.Output, error) {
	req := dto.OutputPortsUpdate{LeftPortPath: left, RightPortPath: right}
	return send[dto.Output](ctx, c, http.MethodPut, fmt.Sprintf("/api/outputs/%d/ports", id), req)
}

// ---------- Registrations ----------

func (c *Client) ListPlugins(ctx context.Context) ([]dto.Plugin, error) {
	return get[[]dto.Plugin](ctx, c, "/api/plugins")
}

func (c *Client) RegisterPlugin(ctx context.Context, p dto.Plugin) (dto.Plugin, error) {
	return send[dto.Plugin](ctx, c, http.MethodPost, "/api/plugins", p)
}

func (c *Client) ListChannelStrips(ctx context.Context) ([]dto.ChannelStrip, error) {
	return get[[]dto.ChannelStrip](ctx, c, "/api/channel-strips")
}

func (c *Client) RegisterChannelStrip(ctx context.Context, cs dto.ChannelStrip) (dto.ChannelStrip, error) {
	return send[dto.ChannelStrip](ctx, c, http.MethodPost, "/api/channel-strips", cs)
}

func (c *Client) ListLoopers(ctx context.Context) ([]dto.Looper, error) {
	return get[[]dto.Looper](ctx, c, "/api/loopers")
}

func (c *Client) RegisterLooper(ctx context.Context, loopNumber uint32) (dto.Looper, error) {
	return send[dto.Looper](ctx, c, http.MethodPost, "/api/loopers", dto.LooperCreate{LoopNumber: jsonx.Set(loopNumber)})
}

func (c *Client) ListOutputStages(ctx context.Context) ([]dto.OutputStage, error) {
	return get[[]dto.OutputStage](ctx, c, "/api/output-stages")
}

func (c *Client) GetOutputStage(ctx context.Context, id uint32) (dto.OutputStage, error) {
	return get[dto.OutputStage](ctx, c, fmt.Sprintf("/api/output-stages/%d", id))
}

func (c *Client) RegisterOutputStage(ctx context.Context, st dto.OutputStage) (dto.OutputStage, error) {
	return send[dto.OutputStage](ctx, c, http.MethodPost, "/api/output-stages", st)
}
