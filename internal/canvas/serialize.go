package canvas

import (
	"encoding/json"
	"strings"
)

// Serialize 将对象序列为 JSON 快照
// 数组顺序就是 z 序编码，反序列化必须按同一顺序还原；
// 字段原样输出，不做校验（对象由 Canvas 自己构造，可信）
func Serialize(objects []*CanvasObject) ([]byte, error) {
	if objects == nil {
		objects = []*CanvasObject{}
	}
	return json.Marshal(objects)
}

// Deserialize 从 JSON 快照还原对象，保持原数组顺序
func Deserialize(data []byte) ([]*CanvasObject, error) {
	var objects []*CanvasObject
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

// ExtractPlaceholders 提取快照实际引用的占位符定义，按 z 序扫描首次出现的顺序去重
// 单趟扫描 + seen 集合，同一画布状态下结果确定
//
// 目录中解析不到的 placeholderId（如自定义占位符的定义在另一会话中丢失）不丢弃，
// 用对象自身元数据重建一个最小定义，保证保存产物仍然完整
func ExtractPlaceholders(objects []*CanvasObject, reg *Registry) []PlaceholderDefinition {
	result := []PlaceholderDefinition{}
	seen := make(map[string]bool)

	for _, obj := range objects {
		if !obj.IsPlaceholder() {
			continue
		}
		id := obj.Metadata.PlaceholderID
		if seen[id] {
			continue
		}
		seen[id] = true

		if reg != nil {
			if def, ok := reg.Resolve(id); ok {
				result = append(result, def)
				continue
			}
		}
		result = append(result, reconstructDefinition(obj))
	}

	return result
}

// reconstructDefinition 用对象自身携带的元数据重建最小占位符定义
// 名称从 {{Name}} 文本还原，文本异常时退回用 ID
func reconstructDefinition(obj *CanvasObject) PlaceholderDefinition {
	name := strings.TrimSuffix(strings.TrimPrefix(obj.Text, "{{"), "}}")
	if name == "" || name == obj.Text {
		name = obj.Metadata.PlaceholderID
	}
	pType := obj.Metadata.PlaceholderType
	if pType == "" {
		pType = TypeText
	}
	return PlaceholderDefinition{
		ID:   obj.Metadata.PlaceholderID,
		Name: name,
		Type: pType,
	}
}
