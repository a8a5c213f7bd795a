package flow

import (
	"context"
	"testing"

	"github.com/hupe1980/blogmesh/core"
	"github.com/hupe1980/blogmesh/internal/testutil"
	"github.com/hupe1980/blogmesh/model"
	"github.com/hupe1980/blogmesh/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorNames(t *testing.T) {
	assert.Equal(t, "instructions", NewInstructionsProcessor().Name())
	assert.Equal(t, "contents", NewContentsProcessor().Name())
	assert.Equal(t, "tools", NewToolsProcessor().Name())
	assert.Equal(t, "usage", NewUsageProcessor().Name())
}

func TestInstructionsProcessor_SendsInstructionVerbatim(t *testing.T) {
	sess := testutil.NewSessionBuilder("s1").State("launches", "três lançamentos").Build()
	runCtx, _ := testutil.NewRunContext(context.Background(), sess, "")
	agent := &mockFlowAgent{name: "a", instruction: "Use {{.launches}} e {{ chaves }} literalmente"}

	req := &model.Request{}
	require.NoError(t, NewInstructionsProcessor().ProcessRequest(runCtx, req, agent))
	assert.Equal(t, "Use {{.launches}} e {{ chaves }} literalmente", req.Instructions)
}

func TestContentsProcessor_HistoryLimit(t *testing.T) {
	sess := testutil.NewSessionBuilder("s1").Events(
		testutil.NewEventBuilder().Author("user").UserText("one").Build(),
		testutil.NewEventBuilder().AssistantText("two").Build(),
		testutil.NewEventBuilder().Author("user").UserText("three").Build(),
		testutil.NewEventBuilder().AssistantText("partial").Partial(true).Build(),
	).Build()
	runCtx, _ := testutil.NewRunContext(context.Background(), sess, "")

	req := &model.Request{}
	require.NoError(t, NewContentsProcessor().ProcessRequest(runCtx, req, &mockFlowAgent{maxHistory: 2}))

	require.Len(t, req.Contents, 2)
	assert.Equal(t, "two", req.Contents[0].Text())
	assert.Equal(t, "three", req.Contents[1].Text())
}

func TestContentsProcessor_FallsBackToUserContent(t *testing.T) {
	runCtx, _ := testutil.NewRunContext(context.Background(), core.NewSession("s1"), "")
	runCtx.UserContent = core.NewTextContent("user", "prompt")

	req := &model.Request{}
	require.NoError(t, NewContentsProcessor().ProcessRequest(runCtx, req, &mockFlowAgent{}))
	require.Len(t, req.Contents, 1)
	assert.Equal(t, "prompt", req.Contents[0].Text())
}

func TestContentsProcessor_Empty(t *testing.T) {
	runCtx, _ := testutil.NewRunContext(context.Background(), core.NewSession("s1"), "")

	err := NewContentsProcessor().ProcessRequest(runCtx, &model.Request{}, &mockFlowAgent{})
	assert.Error(t, err)
}

type noSearchModel struct{ *model.MockModel }

func (noSearchModel) Info() model.Info { return model.Info{Name: "plain"} }

func TestToolsProcessor_RejectsUnsupportedSearch(t *testing.T) {
	runCtx, _ := testutil.NewRunContext(context.Background(), core.NewSession("s1"), "")
	agent := &mockFlowAgent{llm: noSearchModel{model.NewMockModel("plain")}, tools: []tool.Tool{tool.GoogleSearch}}

	err := NewToolsProcessor().ProcessRequest(runCtx, &model.Request{}, agent)
	assert.ErrorContains(t, err, "does not support web search")
}
