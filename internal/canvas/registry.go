package canvas

import (
	"github.com/google/uuid"
)

// PlaceholderType 占位符取值类型
type PlaceholderType string

const (
	TypeText    PlaceholderType = "text"
	TypeDate    PlaceholderType = "date"
	TypeNumber  PlaceholderType = "number"
	TypeBoolean PlaceholderType = "boolean"
	TypeSelect  PlaceholderType = "select"
)

// 自定义占位符 ID 前缀，与内置 ID 天然隔离
const customIDPrefix = "custom-"

// PlaceholderDefinition 可复用的字段模板
type PlaceholderDefinition struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	DefaultValue string          `json:"defaultValue,omitempty"`
	Type         PlaceholderType `json:"type"`
	Options      []string        `json:"options,omitempty"`
}

// 内置占位符，声明顺序即选择器中的展示顺序，跨会话保持稳定
var builtins = []PlaceholderDefinition{
	{ID: "name", Name: "Full Name", Description: "Requester full legal name", Type: TypeText},
	{ID: "date", Name: "Date", Description: "Date of attestation", Type: TypeDate},
	{ID: "patientName", Name: "Patient Name", Type: TypeText},
	{ID: "patientDOB", Name: "Patient Date of Birth", Type: TypeDate},
	{ID: "providerName", Name: "Provider Name", Type: TypeText},
	{ID: "caseNumber", Name: "Case Number", Type: TypeText},
	{ID: "recordCount", Name: "Record Count", DefaultValue: "0", Type: TypeNumber},
	{ID: "isCertified", Name: "Certified Copy", DefaultValue: "false", Type: TypeBoolean},
	{ID: "documentType", Name: "Document Type", Type: TypeSelect,
		Options: []string{"Medical Records", "Billing Records", "Radiology Films"}},
}

// Builtins 内置占位符列表，返回拷贝
func Builtins() []PlaceholderDefinition {
	out := make([]PlaceholderDefinition, len(builtins))
	copy(out, builtins)
	return out
}

// Registry 一次编辑会话内的占位符目录（内置 + 自定义）
// 自定义项仅存活于会话内，除非随模板一并保存
type Registry struct {
	customs []PlaceholderDefinition
}

// NewRegistry 创建目录
func NewRegistry() *Registry {
	return &Registry{}
}

// NewRegistryWith 从已保存模板的占位符列表恢复目录，内置项不重复收录
func NewRegistryWith(defs []PlaceholderDefinition) *Registry {
	r := &Registry{}
	for _, def := range defs {
		if _, ok := r.Resolve(def.ID); ok {
			continue
		}
		r.customs = append(r.customs, def)
	}
	return r
}

// CreateCustom 创建自定义占位符并收录
// 名称不做唯一性约束，身份只看 ID；类型缺省为 text
func (r *Registry) CreateCustom(name string, pType PlaceholderType) PlaceholderDefinition {
	if pType == "" {
		pType = TypeText
	}
	def := PlaceholderDefinition{
		ID:   customIDPrefix + uuid.NewString(),
		Name: name,
		Type: pType,
	}
	r.customs = append(r.customs, def)
	return def
}

// Customs 会话内创建的自定义占位符
func (r *Registry) Customs() []PlaceholderDefinition {
	out := make([]PlaceholderDefinition, len(r.customs))
	copy(out, r.customs)
	return out
}

// Resolve 按 ID 解析定义，先查内置再查自定义
func (r *Registry) Resolve(id string) (PlaceholderDefinition, bool) {
	for _, def := range builtins {
		if def.ID == id {
			return def, true
		}
	}
	for _, def := range r.customs {
		if def.ID == id {
			return def, true
		}
	}
	return PlaceholderDefinition{}, false
}

// Instantiate 将定义实例化为占位符文本对象
// 文本为 {{Name}} 字面形式，样式用醒目配色与普通文本区分
func (r *Registry) Instantiate(def PlaceholderDefinition) *CanvasObject {
	return &CanvasObject{
		ID:   uuid.NewString(),
		Kind: KindPlaceholderText,
		Geometry: Geometry{
			Width:  160,
			Height: 28,
		},
		Style: Style{
			Fill:        "#eef2ff",
			Stroke:      "#6366f1",
			StrokeWidth: 1,
			FontSize:    14,
			FontFamily:  "Arial",
		},
		Text: "{{" + def.Name + "}}",
		Metadata: Metadata{
			IsPlaceholder:   true,
			PlaceholderID:   def.ID,
			PlaceholderType: def.Type,
		},
	}
}
