package canvas

// Kind 画布对象类型
type Kind string

const (
	KindText            Kind = "text"
	KindRectangle       Kind = "rectangle"
	KindCircle          Kind = "circle"
	KindLine            Kind = "line"
	KindImage           Kind = "image"
	KindPlaceholderText Kind = "placeholder-text"
)

// Geometry 位置与尺寸，按 Kind 取用相应字段
// rectangle/image/text 用 Width/Height，circle 用 Radius，line 用 X2/Y2
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
}

// Style 外观样式
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
	FontFamily  string  `json:"fontFamily,omitempty"`
	FontStyle   string  `json:"fontStyle,omitempty"`
}

// Metadata 对象元数据
// 占位符对象固定携带 isPlaceholder/placeholderId/placeholderType 三个字段，
// 用固定结构而不是 map，保证各 Kind 能携带的内容在编译期可见
type Metadata struct {
	IsPlaceholder   bool            `json:"isPlaceholder,omitempty"`
	PlaceholderID   string          `json:"placeholderId,omitempty"`
	PlaceholderType PlaceholderType `json:"placeholderType,omitempty"`
}

// CanvasObject 画布上的一个可绘制对象
// ID 在对象生命周期内稳定且画布内唯一；z 序由所在数组位置隐式表达，不单独存储
type CanvasObject struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"kind"`
	Geometry Geometry `json:"geometry"`
	Style    Style    `json:"style"`
	Text     string   `json:"text,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// IsPlaceholder 是否为占位符对象
func (o *CanvasObject) IsPlaceholder() bool {
	return o.Metadata.IsPlaceholder && o.Metadata.PlaceholderID != ""
}

// Clone 深拷贝，ID 一并复制，调用方负责重新分配
func (o *CanvasObject) Clone() *CanvasObject {
	dup := *o
	return &dup
}
