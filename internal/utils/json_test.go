package utils

import (
	"testing"
)

// TestToJSON 验证序列化结果
func TestToJSON(t *testing.T) {
	out := ToJSON(map[string]any{"entity": "patient", "id": 7})
	if out != `{"entity":"patient","id":7}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

// TestToJSONUnserializable 序列化失败时返回空串
func TestToJSONUnserializable(t *testing.T) {
	if out := ToJSON(make(chan int)); out != "" {
		t.Fatalf("expected empty string, got %s", out)
	}
}
