package output_test

import (
	"strings"
	"testing"

	"github.com/datban/datban-cli/internal/service/output"
)

func TestBuildEnvelope(t *testing.T) {
	env := output.BuildEnvelope(output.SourceAPI, map[string]any{"ok": true}, nil, nil)
	if env.Meta["source"] != output.SourceAPI {
		t.Fatalf("expected source api, got %v", env.Meta["source"])
	}
	requestID, _ := env.Meta["request_id"].(string)
	if !strings.HasPrefix(requestID, "req_") {
		t.Fatalf("expected request_id prefix req_, got %q", requestID)
	}
	generatedAt, _ := env.Meta["generated_at"].(string)
	if !strings.HasSuffix(generatedAt, "Z") {
		t.Fatalf("expected generated_at to end with Z, got %q", generatedAt)
	}
	if len(env.Warnings) != 0 {
		t.Fatalf("expected empty warnings, got %v", env.Warnings)
	}
}

func TestRenderPayload(t *testing.T) {
	env := output.BuildEnvelope(output.SourceMock, map[string]any{"ok": true}, []string{"warn"}, nil)

	jsonPayload, err := output.RenderPayload(env, output.FormatJSON)
	if err != nil {
		t.Fatalf("render json failed: %v", err)
	}
	if !strings.Contains(jsonPayload, "\"ok\": true") {
		t.Fatalf("expected json payload to include data, got %s", jsonPayload)
	}

	yamlPayload, err := output.RenderPayload(env, output.FormatYAML)
	if err != nil {
		t.Fatalf("render yaml failed: %v", err)
	}
	if !strings.Contains(yamlPayload, "source: mock") {
		t.Fatalf("expected yaml payload to include source, got %s", yamlPayload)
	}
}

func TestParseFormat(t *testing.T) {
	format, err := output.ParseFormat("")
	if err != nil || format != output.FormatTable {
		t.Fatalf("expected empty value to default to table, got %v %v", format, err)
	}
	if _, err := output.ParseFormat("xml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
